package domain

// ComparisonVerdict compara as duas plataformas em uma métrica. Best fica
// vazio em empate exato: nenhuma plataforma é marcada como melhor.
type ComparisonVerdict struct {
	Metric          Metric   `json:"metric"`
	Facebook        float64  `json:"facebook"`
	AdWords         float64  `json:"adwords"`
	FacebookDisplay string   `json:"facebook_display"`
	AdWordsDisplay  string   `json:"adwords_display"`
	Best            Platform `json:"best,omitempty"`
	Highlight       string   `json:"highlight"`
}

// KeyInsights reúne os veredictos das seis métricas acompanhadas pelo
// dashboard, a plataforma com melhor taxa de conversão e a frase de resumo
type KeyInsights struct {
	Metrics             []*ComparisonVerdict `json:"metrics"`
	BestPlatform        Platform             `json:"best_platform"`
	Summary             string               `json:"summary"`
	MatchedObservations int                  `json:"matched_observations"`
	Filters             *InsightFilters      `json:"filters,omitempty"`
}
