package domain

import (
	"time"
)

// Observation representa uma linha do formato longo: as métricas de uma
// única plataforma em uma única data. Ponteiros nil são células ausentes,
// ignoradas pelas somas e médias.
type Observation struct {
	Date           time.Time `json:"date"`
	Platform       Platform  `json:"platform"`
	Views          *int64    `json:"views"`
	Clicks         *int64    `json:"clicks"`
	Conversions    *int64    `json:"conversions"`
	CostPerAd      *float64  `json:"cost_per_ad"`
	CTR            *float64  `json:"ctr"`
	ConversionRate *float64  `json:"conversion_rate"`
	CostPerClick   *float64  `json:"cost_per_click"`
}

// Metric identifica uma métrica no formato longo
type Metric string

const (
	MetricViews          Metric = "views"
	MetricClicks         Metric = "clicks"
	MetricConversions    Metric = "conversions"
	MetricCostPerAd      Metric = "cost_per_ad"
	MetricCTR            Metric = "ctr"
	MetricConversionRate Metric = "conversion_rate"
	MetricCostPerClick   Metric = "cost_per_click"
)

// AllMetrics lista as métricas do formato longo na ordem do dataset
func AllMetrics() []Metric {
	return []Metric{
		MetricViews,
		MetricClicks,
		MetricConversions,
		MetricCostPerAd,
		MetricCTR,
		MetricConversionRate,
		MetricCostPerClick,
	}
}

// ParseMetric valida o nome de uma métrica vindo de parâmetros da API
func ParseMetric(name string) (Metric, bool) {
	for _, metric := range AllMetrics() {
		if Metric(name) == metric {
			return metric, true
		}
	}
	return "", false
}

// InsightFilters restringe observações por período (inclusivo nas duas
// pontas) e por conjunto de plataformas. Datas nil não limitam o período;
// Platforms nil aceita todas as plataformas, enquanto uma lista vazia não
// seleciona nenhuma.
type InsightFilters struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Platforms []Platform `json:"platforms,omitempty"`
}

// TimeSeriesPoint é um ponto das séries diárias consumidas pelos gráficos
// de linha do dashboard
type TimeSeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
