package insighting

import (
	"github.com/sirupsen/logrus"

	"github.com/XarpitX/Facebook-vs-Adwords/infrastructure/dataset"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
)

const (
	defaultPreviewLimit = 5
	defaultPageLimit    = 100
	maxPageLimit        = 1000
)

// Service implementa Insighter sobre o snapshot atual do dataset
type Service struct {
	store dataset.SnapshotStore
}

// NewService cria o serviço de insights
func NewService(store dataset.SnapshotStore) Insighter {
	return &Service{store: store}
}

// snapshot devolve o snapshot atual, ou ErrDatasetNotLoaded antes da
// primeira carga bem sucedida
func (s *Service) snapshot() (*dataset.Snapshot, error) {
	snapshot := s.store.Current()
	if snapshot == nil {
		return nil, ErrDatasetNotLoaded
	}
	return snapshot, nil
}

// validateFilters rejeita períodos invertidos antes de qualquer recorte
func validateFilters(filters *domain.InsightFilters) error {
	if filters == nil {
		return nil
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return ErrInvalidPeriod
	}
	return nil
}

// GetDatasetPreview devolve as primeiras linhas nos formatos largo e longo,
// junto com os totais do snapshot
func (s *Service) GetDatasetPreview(limit int) (*domain.DatasetPreview, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultPreviewLimit
	}

	records := snapshot.Dataset.Records
	if limit < len(records) {
		records = records[:limit]
	}

	observations := snapshot.Observations
	if limit < len(observations) {
		observations = observations[:limit]
	}

	return &domain.DatasetPreview{
		Columns:           snapshot.Dataset.Columns,
		Records:           records,
		Observations:      observations,
		TotalRecords:      len(snapshot.Dataset.Records),
		TotalObservations: len(snapshot.Observations),
	}, nil
}

// GetDatasetStatus descreve o snapshot atual e o intervalo de datas coberto
// pelas campanhas carregadas
func (s *Service) GetDatasetStatus() (*domain.DatasetStatus, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	status := &domain.DatasetStatus{
		SnapshotID:        snapshot.ID,
		SourcePath:        snapshot.SourcePath,
		LoadedAt:          snapshot.LoadedAt,
		TotalRecords:      len(snapshot.Dataset.Records),
		TotalObservations: len(snapshot.Observations),
	}

	for _, record := range snapshot.Dataset.Records {
		date := record.Date
		if status.FirstCampaignDate == nil || date.Before(*status.FirstCampaignDate) {
			first := date
			status.FirstCampaignDate = &first
		}
		if status.LastCampaignDate == nil || date.After(*status.LastCampaignDate) {
			last := date
			status.LastCampaignDate = &last
		}
	}

	return status, nil
}

// GetObservations devolve uma página do formato longo após o recorte
func (s *Service) GetObservations(filters *domain.InsightFilters, limit, offset int) (*domain.ObservationPage, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	filtered := FilterObservations(snapshot.Observations, filters)
	total := len(filtered)

	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return &domain.ObservationPage{
		Observations: filtered[offset:end],
		Total:        total,
		Limit:        limit,
		Offset:       offset,
		Filters:      filters,
	}, nil
}

// GetPlatformSummary agrega as observações do recorte por plataforma
func (s *Service) GetPlatformSummary(filters *domain.InsightFilters) (domain.PlatformSummary, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	return Summarize(snapshot.Observations, filters), nil
}

// GetKeyInsights monta os veredictos das seis métricas acompanhadas e a
// melhor plataforma do recorte
func (s *Service) GetKeyInsights(filters *domain.InsightFilters) (*domain.KeyInsights, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	matched := FilterObservations(snapshot.Observations, filters)
	summary := Summarize(matched, nil)

	logrus.WithFields(logrus.Fields{
		"matched_observations": len(matched),
	}).Debug("Insights calculados para o recorte")

	return buildKeyInsights(summary, len(matched), filters), nil
}

// GetMetricTimeSeries monta as séries diárias de uma métrica por plataforma
func (s *Service) GetMetricTimeSeries(metric domain.Metric, filters *domain.InsightFilters) (map[domain.Platform][]*domain.TimeSeriesPoint, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	return TimeSeries(snapshot.Observations, metric, filters)
}

// CompareMetric compara as duas plataformas em uma métrica do recorte
func (s *Service) CompareMetric(metric domain.Metric, filters *domain.InsightFilters) (*domain.ComparisonVerdict, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	return Compare(Summarize(snapshot.Observations, filters), metric)
}
