package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/apiErrors"
)

func TestGetDatasetPreview(t *testing.T) {
	t.Run("Prévia com o limite padrão", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/dataset/preview", nil)

		GetDatasetPreview(seededInsightService(t)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var preview domain.DatasetPreview
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&preview))
		assert.Equal(t, domain.DatasetColumns(), preview.Columns)
		assert.Len(t, preview.Records, 3)
		assert.Len(t, preview.Observations, 5)
		assert.Equal(t, 3, preview.TotalRecords)
		assert.Equal(t, 6, preview.TotalObservations)
	})

	t.Run("Limite explícito restringe a prévia", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/dataset/preview?limit=2", nil)

		GetDatasetPreview(seededInsightService(t)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var preview domain.DatasetPreview
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&preview))
		assert.Len(t, preview.Records, 2)
		assert.Len(t, preview.Observations, 2)
	})

	t.Run("Limite mal formatado é rejeitado", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/dataset/preview?limit=abc", nil)

		GetDatasetPreview(seededInsightService(t)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, recorder).Code)
	})

	t.Run("Sem snapshot carregado responde indisponível", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/dataset/preview", nil)

		GetDatasetPreview(emptyInsightService()).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Equal(t, apiErrors.ErrDatasetUnavailable, decodeAPIError(t, recorder).Code)
	})
}

func TestGetDatasetStatus(t *testing.T) {
	t.Run("Status do snapshot carregado", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/dataset/status", nil)

		GetDatasetStatus(seededInsightService(t)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var status domain.DatasetStatus
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&status))
		assert.Equal(t, "snap0001", status.SnapshotID)
		assert.Equal(t, "testdata/ab_testing.csv", status.SourcePath)
		assert.Equal(t, 3, status.TotalRecords)
		assert.Equal(t, 6, status.TotalObservations)
		assert.Equal(t, jan1, *status.FirstCampaignDate)
		assert.Equal(t, jan3, *status.LastCampaignDate)
	})
}

func TestListObservations(t *testing.T) {
	t.Run("Paginação do formato longo", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/observations?limit=4&offset=4", nil)

		ListObservations(seededInsightService(t)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var page domain.ObservationPage
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&page))
		assert.Len(t, page.Observations, 2)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 4, page.Limit)
		assert.Equal(t, 4, page.Offset)
	})

	t.Run("Filtro de plataforma restringe a listagem", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/observations?platforms=AdWords", nil)

		ListObservations(seededInsightService(t)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var page domain.ObservationPage
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&page))
		assert.Equal(t, 3, page.Total)
		for _, observation := range page.Observations {
			assert.Equal(t, domain.PlatformAdWords, observation.Platform)
		}
	})

	t.Run("Offset mal formatado é rejeitado", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/observations?offset=x", nil)

		ListObservations(seededInsightService(t)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, recorder).Code)
	})
}
