package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/insighting"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/apiErrors"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/log"
)

// writeInsightError converte os erros dos usecases de insights na resposta
// HTTP padronizada
func writeInsightError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, insighting.ErrDatasetNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dataset ainda não carregado", nil)

	case errors.Is(err, insighting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, insighting.ErrUnknownMetric):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, insighting.ErrNoComparisonPolicy):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar insights", nil)
	}
}

// GetDatasetPreview devolve as primeiras linhas do dataset nos dois formatos
func GetDatasetPreview(service insighting.DatasetInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, err := parseIntParam(r, "limit", 0)
		if err != nil {
			logger.WithField("limit", r.URL.Query().Get("limit")).Warn("dataset: invalid limit parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		preview, err := service.GetDatasetPreview(limit)
		if err != nil {
			logger.WithError(err).Error("dataset: failed to build preview")
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(preview); err != nil {
			logger.WithError(err).Error("dataset: failed to encode preview response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetDatasetStatus descreve o snapshot atual do dataset
func GetDatasetStatus(service insighting.DatasetInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status, err := service.GetDatasetStatus()
		if err != nil {
			logger.WithError(err).Error("dataset: failed to read snapshot status")
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("dataset: failed to encode status response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ListObservations devolve uma página do formato longo após o recorte
func ListObservations(service insighting.DatasetInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		limit, err := parseIntParam(r, "limit", 0)
		if err != nil {
			logger.WithField("limit", r.URL.Query().Get("limit")).Warn("observations: invalid limit parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		offset, err := parseIntParam(r, "offset", 0)
		if err != nil {
			logger.WithField("offset", r.URL.Query().Get("offset")).Warn("observations: invalid offset parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro offset inválido", nil)
			return
		}

		page, err := service.GetObservations(filters, limit, offset)
		if err != nil {
			logger.WithError(err).Error("observations: failed to list observations")
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			logger.WithError(err).Error("observations: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
