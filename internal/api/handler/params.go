package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/apiErrors"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/log"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/utils"
)

// parseFilters monta os filtros de recorte a partir dos parâmetros de
// consulta. Quando algum parâmetro é inválido, escreve a resposta de erro
// e devolve false.
func parseFilters(w http.ResponseWriter, r *http.Request) (*domain.InsightFilters, bool) {
	logger := log.ForContext(r.Context())

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("insights: invalid start_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("insights: invalid end_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	platforms, err := parsePlatforms(r.URL.Query().Get("platforms"))
	if err != nil {
		logger.WithFields(log.Fields{
			"platforms": r.URL.Query().Get("platforms"),
			"error":     err.Error(),
		}).Warn("insights: invalid platforms parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, false
	}

	return &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
		Platforms: platforms,
	}, true
}

// parsePlatforms aceita uma lista separada por vírgulas; vazio significa
// todas as plataformas
func parsePlatforms(raw string) ([]domain.Platform, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	platforms := make([]domain.Platform, 0, len(parts))
	for _, part := range parts {
		platform, known := domain.ParsePlatform(strings.TrimSpace(part))
		if !known {
			return nil, fmt.Errorf("plataforma desconhecida: %q", part)
		}
		platforms = append(platforms, platform)
	}

	return platforms, nil
}

// parseIntParam lê um parâmetro inteiro opcional da query string
func parseIntParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
