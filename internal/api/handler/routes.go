package handler

import (
	"net/http"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/api/handler/router"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/authenticating"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Dataset retorna as rotas de inspeção do dataset carregado
func Dataset(service insighting.DatasetInsighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/preview",
			Method:  http.MethodGet,
			Handler: GetDatasetPreview(service),
		},
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(service),
		},
		{
			Path:    "/v1/observations",
			Method:  http.MethodGet,
			Handler: ListObservations(service),
		},
	}
}

// Insights retorna as rotas de agregação e comparação das plataformas
func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/summary",
			Method:  http.MethodGet,
			Handler: GetPlatformSummary(service),
		},
		{
			Path:    "/v1/insights/key",
			Method:  http.MethodGet,
			Handler: GetKeyInsights(service),
		},
		{
			Path:    "/v1/insights/timeseries",
			Method:  http.MethodGet,
			Handler: GetMetricTimeSeries(service),
		},
		{
			Path:    "/v1/insights/compare",
			Method:  http.MethodGet,
			Handler: CompareMetric(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
