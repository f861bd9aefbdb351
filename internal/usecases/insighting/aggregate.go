package insighting

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/utils"
)

// metricPolicy indica a direção em que uma métrica é melhor
type metricPolicy int

const (
	higherIsBetter metricPolicy = iota
	lowerIsBetter
)

// comparisonPolicies é a tabela fixa de políticas por métrica. cost_per_ad
// é agregada no resumo mas não participa de comparações.
var comparisonPolicies = map[domain.Metric]metricPolicy{
	domain.MetricViews:          higherIsBetter,
	domain.MetricClicks:         higherIsBetter,
	domain.MetricConversions:    higherIsBetter,
	domain.MetricCTR:            higherIsBetter,
	domain.MetricConversionRate: higherIsBetter,
	domain.MetricCostPerClick:   lowerIsBetter,
}

// trackedMetrics são as seis métricas exibidas nos Key Insights, na ordem
// das duas fileiras do dashboard
var trackedMetrics = []domain.Metric{
	domain.MetricViews,
	domain.MetricClicks,
	domain.MetricConversions,
	domain.MetricCTR,
	domain.MetricConversionRate,
	domain.MetricCostPerClick,
}

// FilterObservations aplica o recorte de período (inclusivo nas duas
// pontas) e de plataformas. Platforms nil aceita todas as plataformas;
// uma lista vazia não aceita nenhuma.
func FilterObservations(observations []*domain.Observation, filters *domain.InsightFilters) []*domain.Observation {
	if filters == nil {
		return observations
	}

	filtered := make([]*domain.Observation, 0, len(observations))
	for _, observation := range observations {
		if !matchesPeriod(observation.Date, filters) {
			continue
		}
		if !matchesPlatform(observation.Platform, filters) {
			continue
		}
		filtered = append(filtered, observation)
	}

	return filtered
}

func matchesPeriod(date time.Time, filters *domain.InsightFilters) bool {
	if filters.StartDate != nil && date.Before(*filters.StartDate) {
		return false
	}
	if filters.EndDate != nil && date.After(*filters.EndDate) {
		return false
	}
	return true
}

func matchesPlatform(platform domain.Platform, filters *domain.InsightFilters) bool {
	if filters.Platforms == nil {
		return true
	}
	for _, candidate := range filters.Platforms {
		if candidate == platform {
			return true
		}
	}
	return false
}

// metricAccumulator acumula soma e contagem de uma métrica, ignorando
// células nil. A contagem é o denominador da média: valores ausentes não
// diluem o resultado.
type metricAccumulator struct {
	sum   float64
	count int
}

func (a *metricAccumulator) addInt(value *int64) {
	if value == nil {
		return
	}
	a.sum += float64(*value)
	a.count++
}

func (a *metricAccumulator) addFloat(value *float64) {
	if value == nil {
		return
	}
	a.sum += *value
	a.count++
}

func (a *metricAccumulator) total() int64 {
	return int64(a.sum)
}

// mean é 0 quando nenhum valor esteve presente no recorte
func (a *metricAccumulator) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(a.sum / float64(a.count))
}

// summaryAccumulator acumula as sete métricas de uma plataforma
type summaryAccumulator struct {
	views          metricAccumulator
	clicks         metricAccumulator
	conversions    metricAccumulator
	costPerAd      metricAccumulator
	ctr            metricAccumulator
	conversionRate metricAccumulator
	costPerClick   metricAccumulator
}

func (a *summaryAccumulator) add(observation *domain.Observation) {
	a.views.addInt(observation.Views)
	a.clicks.addInt(observation.Clicks)
	a.conversions.addInt(observation.Conversions)
	a.costPerAd.addFloat(observation.CostPerAd)
	a.ctr.addFloat(observation.CTR)
	a.conversionRate.addFloat(observation.ConversionRate)
	a.costPerClick.addFloat(observation.CostPerClick)
}

func (a *summaryAccumulator) row() *domain.SummaryRow {
	return &domain.SummaryRow{
		ViewsSum:           a.views.total(),
		ViewsMean:          a.views.mean(),
		ClicksSum:          a.clicks.total(),
		ClicksMean:         a.clicks.mean(),
		ConversionsSum:     a.conversions.total(),
		ConversionsMean:    a.conversions.mean(),
		CostPerAdMean:      a.costPerAd.mean(),
		CTRMean:            a.ctr.mean(),
		ConversionRateMean: a.conversionRate.mean(),
		CostPerClickMean:   a.costPerClick.mean(),
	}
}

// Summarize agrupa o recorte por plataforma: soma e média para contagens,
// média para custos e taxas, com arredondamento half-to-even em duas casas.
// Plataformas sem observações no recorte ficam ausentes do mapa, sem linha
// zerada. Função pura: chamadas idênticas produzem linhas idênticas.
func Summarize(observations []*domain.Observation, filters *domain.InsightFilters) domain.PlatformSummary {
	accumulators := make(map[domain.Platform]*summaryAccumulator)

	for _, observation := range FilterObservations(observations, filters) {
		accumulator, exists := accumulators[observation.Platform]
		if !exists {
			accumulator = &summaryAccumulator{}
			accumulators[observation.Platform] = accumulator
		}
		accumulator.add(observation)
	}

	summary := make(domain.PlatformSummary, len(accumulators))
	for platform, accumulator := range accumulators {
		summary[platform] = accumulator.row()
	}

	return summary
}

// statForMetric escolhe o valor comparado de uma métrica: soma para
// contagens, média para taxas e custos. Uma plataforma ausente do resumo
// contribui com o padrão de exibição 0.
func statForMetric(summary domain.PlatformSummary, platform domain.Platform, metric domain.Metric) float64 {
	row, exists := summary[platform]
	if !exists {
		return 0
	}

	switch metric {
	case domain.MetricViews:
		return float64(row.ViewsSum)
	case domain.MetricClicks:
		return float64(row.ClicksSum)
	case domain.MetricConversions:
		return float64(row.ConversionsSum)
	case domain.MetricCostPerAd:
		return row.CostPerAdMean
	case domain.MetricCTR:
		return row.CTRMean
	case domain.MetricConversionRate:
		return row.ConversionRateMean
	case domain.MetricCostPerClick:
		return row.CostPerClickMean
	}

	return 0
}

// Compare monta o veredicto de uma métrica entre as duas plataformas. Em
// empate exato nenhuma é marcada como melhor: comparar dois floats iguais
// não produz "maior" nem "menor".
func Compare(summary domain.PlatformSummary, metric domain.Metric) (*domain.ComparisonVerdict, error) {
	if _, known := domain.ParseMetric(string(metric)); !known {
		return nil, ErrUnknownMetric
	}

	policy, exists := comparisonPolicies[metric]
	if !exists {
		return nil, ErrNoComparisonPolicy
	}

	facebook := statForMetric(summary, domain.PlatformFacebook, metric)
	adwords := statForMetric(summary, domain.PlatformAdWords, metric)

	var best domain.Platform
	switch policy {
	case higherIsBetter:
		if facebook > adwords {
			best = domain.PlatformFacebook
		} else if adwords > facebook {
			best = domain.PlatformAdWords
		}
	case lowerIsBetter:
		if facebook < adwords {
			best = domain.PlatformFacebook
		} else if adwords < facebook {
			best = domain.PlatformAdWords
		}
	}

	facebookDisplay := displayValue(metric, facebook)
	adwordsDisplay := displayValue(metric, adwords)

	return &domain.ComparisonVerdict{
		Metric:          metric,
		Facebook:        facebook,
		AdWords:         adwords,
		FacebookDisplay: facebookDisplay,
		AdWordsDisplay:  adwordsDisplay,
		Best:            best,
		Highlight:       highlight(facebookDisplay, adwordsDisplay, best),
	}, nil
}

// BestPlatform devolve a plataforma com a maior média de taxa de conversão
// no resumo. Em empate exato prevalece o Facebook, a primeira plataforma da
// ordem canônica.
func BestPlatform(summary domain.PlatformSummary) domain.Platform {
	facebook := statForMetric(summary, domain.PlatformFacebook, domain.MetricConversionRate)
	adwords := statForMetric(summary, domain.PlatformAdWords, domain.MetricConversionRate)

	if adwords > facebook {
		return domain.PlatformAdWords
	}
	return domain.PlatformFacebook
}

// TimeSeries extrai a série diária de uma métrica por plataforma, em ordem
// crescente de data. Células ausentes não geram pontos.
func TimeSeries(observations []*domain.Observation, metric domain.Metric, filters *domain.InsightFilters) (map[domain.Platform][]*domain.TimeSeriesPoint, error) {
	if _, known := domain.ParseMetric(string(metric)); !known {
		return nil, ErrUnknownMetric
	}

	series := make(map[domain.Platform][]*domain.TimeSeriesPoint)

	for _, observation := range FilterObservations(observations, filters) {
		value, present := observationValue(observation, metric)
		if !present {
			continue
		}

		series[observation.Platform] = append(series[observation.Platform], &domain.TimeSeriesPoint{
			Date:  observation.Date,
			Value: value,
		})
	}

	for _, points := range series {
		sort.Slice(points, func(i, j int) bool {
			return points[i].Date.Before(points[j].Date)
		})
	}

	return series, nil
}

// observationValue lê a métrica pedida de uma observação; o segundo
// retorno indica se a célula estava presente
func observationValue(observation *domain.Observation, metric domain.Metric) (float64, bool) {
	switch metric {
	case domain.MetricViews:
		return intValue(observation.Views)
	case domain.MetricClicks:
		return intValue(observation.Clicks)
	case domain.MetricConversions:
		return intValue(observation.Conversions)
	case domain.MetricCostPerAd:
		return floatValue(observation.CostPerAd)
	case domain.MetricCTR:
		return floatValue(observation.CTR)
	case domain.MetricConversionRate:
		return floatValue(observation.ConversionRate)
	case domain.MetricCostPerClick:
		return floatValue(observation.CostPerClick)
	}
	return 0, false
}

func intValue(value *int64) (float64, bool) {
	if value == nil {
		return 0, false
	}
	return float64(*value), true
}

func floatValue(value *float64) (float64, bool) {
	if value == nil {
		return 0, false
	}
	return *value, true
}

// buildKeyInsights monta os veredictos das métricas acompanhadas e a frase
// de resumo exibida no banner do dashboard
func buildKeyInsights(summary domain.PlatformSummary, matched int, filters *domain.InsightFilters) *domain.KeyInsights {
	verdicts := make([]*domain.ComparisonVerdict, 0, len(trackedMetrics))
	for _, metric := range trackedMetrics {
		verdict, err := Compare(summary, metric)
		if err != nil {
			continue
		}
		verdicts = append(verdicts, verdict)
	}

	best := BestPlatform(summary)

	return &domain.KeyInsights{
		Metrics:             verdicts,
		BestPlatform:        best,
		Summary:             fmt.Sprintf("Overall, **%s** is performing better in conversions.", best),
		MatchedObservations: matched,
		Filters:             filters,
	}
}

// displayValue formata o valor de uma métrica da forma exibida pelo
// dashboard: contagens abreviadas, taxas com sufixo de porcentagem e custo
// por clique com cifrão
func displayValue(metric domain.Metric, value float64) string {
	switch metric {
	case domain.MetricViews, domain.MetricClicks, domain.MetricConversions:
		return FormatCount(value)
	case domain.MetricCTR, domain.MetricConversionRate:
		return formatFloat(value) + "%"
	default:
		return "$" + formatFloat(value)
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// highlight reproduz a linha de destaque do dashboard, com o vencedor
// entre asteriscos e marcado com ✅. Sem vencedor, os dois lados aparecem
// sem marcação.
func highlight(facebookDisplay, adwordsDisplay string, best domain.Platform) string {
	switch best {
	case domain.PlatformFacebook:
		return fmt.Sprintf("**FB: %s ✅** | AW: %s", facebookDisplay, adwordsDisplay)
	case domain.PlatformAdWords:
		return fmt.Sprintf("FB: %s | **AW: %s ✅**", facebookDisplay, adwordsDisplay)
	}
	return fmt.Sprintf("FB: %s | AW: %s", facebookDisplay, adwordsDisplay)
}

// FormatCount abrevia contagens grandes: milhões com sufixo M, milhares com
// sufixo K e o restante como literal
func FormatCount(n float64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", n/1_000)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
