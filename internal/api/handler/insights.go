package handler

import (
	"net/http"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/insighting"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/apiErrors"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/log"
)

// GetPlatformSummary agrega o recorte por plataforma
func GetPlatformSummary(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		summary, err := service.GetPlatformSummary(filters)
		if err != nil {
			logger.WithError(err).Error("insights: failed to summarize platforms")
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("insights: failed to encode summary response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetKeyInsights devolve os veredictos das métricas acompanhadas e a melhor
// plataforma do recorte
func GetKeyInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		insights, err := service.GetKeyInsights(filters)
		if err != nil {
			logger.WithError(err).Error("insights: failed to build key insights")
			writeInsightError(w, err)
			return
		}

		logger.WithField("best_platform", insights.BestPlatform).Info("insights: key insights built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithError(err).Error("insights: failed to encode key insights response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetMetricTimeSeries devolve as séries diárias de uma métrica por plataforma
func GetMetricTimeSeries(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawMetric := r.URL.Query().Get("metric")
		if rawMetric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro metric não fornecido", nil)
			return
		}

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		series, err := service.GetMetricTimeSeries(domain.Metric(rawMetric), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"metric": rawMetric,
				"error":  err.Error(),
			}).Error("insights: failed to build metric time series")

			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("insights: failed to encode time series response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// CompareMetric compara as duas plataformas em uma métrica do recorte
func CompareMetric(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawMetric := r.URL.Query().Get("metric")
		if rawMetric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro metric não fornecido", nil)
			return
		}

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		verdict, err := service.CompareMetric(domain.Metric(rawMetric), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"metric": rawMetric,
				"error":  err.Error(),
			}).Error("insights: failed to compare platforms")

			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(verdict); err != nil {
			logger.WithError(err).Error("insights: failed to encode comparison response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
