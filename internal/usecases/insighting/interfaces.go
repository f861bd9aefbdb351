package insighting

import (
	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
)

// DatasetInsighter expõe o dataset carregado para a camada HTTP
type DatasetInsighter interface {
	// GetDatasetPreview devolve as primeiras linhas nos formatos largo e longo
	GetDatasetPreview(limit int) (*domain.DatasetPreview, error)

	// GetDatasetStatus descreve o snapshot atual do dataset
	GetDatasetStatus() (*domain.DatasetStatus, error)

	// GetObservations devolve uma página do formato longo filtrado
	GetObservations(filters *domain.InsightFilters, limit, offset int) (*domain.ObservationPage, error)
}

// Insighter agrega e compara as plataformas sobre o snapshot atual
type Insighter interface {
	DatasetInsighter

	// GetPlatformSummary agrega as observações do recorte por plataforma
	GetPlatformSummary(filters *domain.InsightFilters) (domain.PlatformSummary, error)

	// GetKeyInsights monta os veredictos das seis métricas acompanhadas
	GetKeyInsights(filters *domain.InsightFilters) (*domain.KeyInsights, error)

	// GetMetricTimeSeries monta as séries diárias de uma métrica por plataforma
	GetMetricTimeSeries(metric domain.Metric, filters *domain.InsightFilters) (map[domain.Platform][]*domain.TimeSeriesPoint, error)

	// CompareMetric compara as duas plataformas em uma métrica
	CompareMetric(metric domain.Metric, filters *domain.InsightFilters) (*domain.ComparisonVerdict, error)
}
