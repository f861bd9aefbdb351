package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/XarpitX/Facebook-vs-Adwords/infrastructure/dataset"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/reshaping"
)

func wideRecord(date time.Time, facebookViews int64, facebookRate float64, adwordsViews int64, adwordsRate float64) *domain.CampaignRecord {
	return &domain.CampaignRecord{
		Date: date,
		Facebook: domain.PlatformMetrics{
			AdViews:        int64Ptr(facebookViews),
			ConversionRate: float64Ptr(facebookRate),
		},
		AdWords: domain.PlatformMetrics{
			AdViews:        int64Ptr(adwordsViews),
			ConversionRate: float64Ptr(adwordsRate),
		},
	}
}

// seedStore publica um snapshot de três dias de campanha usando o mesmo
// pipeline de remodelagem da aplicação
func seedStore(t *testing.T, store dataset.SnapshotStore) *dataset.Snapshot {
	t.Helper()

	campaignDataset := &domain.CampaignDataset{
		Columns: domain.DatasetColumns(),
		Records: []*domain.CampaignRecord{
			wideRecord(jan1, 100, 5.0, 80, 3.0),
			wideRecord(jan2, 200, 6.0, 160, 4.0),
			wideRecord(jan3, 300, 7.0, 240, 5.0),
		},
	}

	observations, err := reshaping.NewService().Reshape(campaignDataset)
	assert.NoError(t, err)

	snapshot := &dataset.Snapshot{
		ID:           "snap0001",
		SourcePath:   "testdata/ab_testing.csv",
		LoadedAt:     time.Date(2021, 2, 1, 6, 0, 0, 0, time.UTC),
		Dataset:      campaignDataset,
		Observations: observations,
	}

	store.Replace(snapshot)
	return snapshot
}

func TestService_SemSnapshot(t *testing.T) {
	service := NewService(dataset.NewSnapshotStore())

	_, err := service.GetDatasetPreview(0)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	_, err = service.GetDatasetStatus()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	_, err = service.GetObservations(nil, 0, 0)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	_, err = service.GetPlatformSummary(nil)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	_, err = service.GetKeyInsights(nil)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	_, err = service.GetMetricTimeSeries(domain.MetricViews, nil)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	_, err = service.CompareMetric(domain.MetricViews, nil)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
}

func TestService_PeriodoInvertido(t *testing.T) {
	store := dataset.NewSnapshotStore()
	seedStore(t, store)
	service := NewService(store)

	filters := &domain.InsightFilters{StartDate: &jan3, EndDate: &jan1}

	_, err := service.GetObservations(filters, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.GetPlatformSummary(filters)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.GetKeyInsights(filters)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.GetMetricTimeSeries(domain.MetricViews, filters)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.CompareMetric(domain.MetricViews, filters)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_GetDatasetPreview(t *testing.T) {
	store := dataset.NewSnapshotStore()
	seedStore(t, store)
	service := NewService(store)

	t.Run("Limite padrão cobre os registros e corta as observações", func(t *testing.T) {
		preview, err := service.GetDatasetPreview(0)

		assert.NoError(t, err)
		assert.Equal(t, domain.DatasetColumns(), preview.Columns)
		assert.Len(t, preview.Records, 3)
		assert.Len(t, preview.Observations, 5)
		assert.Equal(t, 3, preview.TotalRecords)
		assert.Equal(t, 6, preview.TotalObservations)
	})

	t.Run("Limite explícito corta os dois formatos", func(t *testing.T) {
		preview, err := service.GetDatasetPreview(2)

		assert.NoError(t, err)
		assert.Len(t, preview.Records, 2)
		assert.Len(t, preview.Observations, 2)
	})
}

func TestService_GetDatasetStatus(t *testing.T) {
	store := dataset.NewSnapshotStore()
	snapshot := seedStore(t, store)
	service := NewService(store)

	status, err := service.GetDatasetStatus()

	assert.NoError(t, err)
	assert.Equal(t, snapshot.ID, status.SnapshotID)
	assert.Equal(t, snapshot.SourcePath, status.SourcePath)
	assert.Equal(t, snapshot.LoadedAt, status.LoadedAt)
	assert.Equal(t, 3, status.TotalRecords)
	assert.Equal(t, 6, status.TotalObservations)
	assert.Equal(t, jan1, *status.FirstCampaignDate)
	assert.Equal(t, jan3, *status.LastCampaignDate)
}

func TestService_GetObservations(t *testing.T) {
	store := dataset.NewSnapshotStore()
	seedStore(t, store)
	service := NewService(store)

	t.Run("Paginação respeita limite e deslocamento", func(t *testing.T) {
		page, err := service.GetObservations(nil, 4, 0)

		assert.NoError(t, err)
		assert.Len(t, page.Observations, 4)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 4, page.Limit)
		assert.Equal(t, 0, page.Offset)

		rest, err := service.GetObservations(nil, 4, 4)
		assert.NoError(t, err)
		assert.Len(t, rest.Observations, 2)
	})

	t.Run("Deslocamento além do total devolve página vazia", func(t *testing.T) {
		page, err := service.GetObservations(nil, 4, 10)

		assert.NoError(t, err)
		assert.Empty(t, page.Observations)
		assert.Equal(t, 6, page.Total)
	})

	t.Run("Filtro de plataforma reduz o total", func(t *testing.T) {
		page, err := service.GetObservations(&domain.InsightFilters{
			Platforms: []domain.Platform{domain.PlatformAdWords},
		}, 0, 0)

		assert.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		for _, observation := range page.Observations {
			assert.Equal(t, domain.PlatformAdWords, observation.Platform)
		}
	})
}

func TestService_GetKeyInsights(t *testing.T) {
	store := dataset.NewSnapshotStore()
	seedStore(t, store)
	service := NewService(store)

	insights, err := service.GetKeyInsights(nil)

	assert.NoError(t, err)
	assert.Len(t, insights.Metrics, 6)
	assert.Equal(t, domain.PlatformFacebook, insights.BestPlatform)
	assert.Equal(t, "Overall, **Facebook** is performing better in conversions.", insights.Summary)
	assert.Equal(t, 6, insights.MatchedObservations)
}

func TestService_CompareMetric(t *testing.T) {
	store := dataset.NewSnapshotStore()
	seedStore(t, store)
	service := NewService(store)

	verdict, err := service.CompareMetric(domain.MetricViews, nil)

	assert.NoError(t, err)
	assert.Equal(t, domain.PlatformFacebook, verdict.Best)
	assert.Equal(t, 600.0, verdict.Facebook)
	assert.Equal(t, 480.0, verdict.AdWords)
}

func TestService_GetMetricTimeSeries(t *testing.T) {
	store := dataset.NewSnapshotStore()
	seedStore(t, store)
	service := NewService(store)

	series, err := service.GetMetricTimeSeries(domain.MetricViews, &domain.InsightFilters{
		Platforms: []domain.Platform{domain.PlatformFacebook},
	})

	assert.NoError(t, err)
	assert.Len(t, series, 1)
	assert.Len(t, series[domain.PlatformFacebook], 3)
	assert.Equal(t, 100.0, series[domain.PlatformFacebook][0].Value)
	assert.Equal(t, 300.0, series[domain.PlatformFacebook][2].Value)
}
