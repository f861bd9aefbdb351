package insighting

import "errors"

// Erros de agregação e comparação
var (
	ErrDatasetNotLoaded   = errors.New("dataset ainda não carregado")
	ErrInvalidPeriod      = errors.New("a data de início não pode ser posterior à data de fim")
	ErrUnknownMetric      = errors.New("métrica desconhecida")
	ErrNoComparisonPolicy = errors.New("métrica sem política de comparação")
)
