package reshaping

import (
	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
)

// Reshaper converte o dataset largo de campanhas para o formato longo,
// com uma observação por plataforma por data
type Reshaper interface {
	Reshape(dataset *domain.CampaignDataset) ([]*domain.Observation, error)
}

type Service struct{}

func NewService() Reshaper {
	return &Service{}
}

// Reshape valida o schema do dataset e emite exatamente duas observações
// por registro: todas as do Facebook primeiro, depois todas as do AdWords,
// cada bloco na ordem dos registros de entrada. A ordem reproduz uma
// concatenação e não carrega significado para as agregações.
//
// Células nil passam adiante como nil e ficam de fora de somas e médias.
// Função pura: não modifica o dataset recebido.
func (s *Service) Reshape(dataset *domain.CampaignDataset) ([]*domain.Observation, error) {
	if dataset == nil {
		return []*domain.Observation{}, nil
	}

	if err := validateSchema(dataset.Columns); err != nil {
		return nil, err
	}

	observations := make([]*domain.Observation, 0, 2*len(dataset.Records))

	for _, record := range dataset.Records {
		observations = append(observations, newObservation(record, domain.PlatformFacebook, record.Facebook))
	}

	for _, record := range dataset.Records {
		observations = append(observations, newObservation(record, domain.PlatformAdWords, record.AdWords))
	}

	return observations, nil
}

// validateSchema confere se todas as colunas canônicas estão presentes no
// cabeçalho carregado da fonte
func validateSchema(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, column := range columns {
		present[column] = true
	}

	for _, column := range domain.DatasetColumns() {
		if !present[column] {
			return NewSchemaError(column)
		}
	}

	return nil
}

// newObservation renomeia as métricas de uma plataforma para o schema
// compartilhado do formato longo, preservando a data do registro
func newObservation(record *domain.CampaignRecord, platform domain.Platform, metrics domain.PlatformMetrics) *domain.Observation {
	return &domain.Observation{
		Date:           record.Date,
		Platform:       platform,
		Views:          metrics.AdViews,
		Clicks:         metrics.AdClicks,
		Conversions:    metrics.AdConversions,
		CostPerAd:      metrics.CostPerAd,
		CTR:            metrics.CTR,
		ConversionRate: metrics.ConversionRate,
		CostPerClick:   metrics.CostPerClick,
	}
}
