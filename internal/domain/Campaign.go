package domain

import (
	"time"
)

// Platform identifica a plataforma de anúncios de uma observação
type Platform string

const (
	PlatformFacebook Platform = "Facebook"
	PlatformAdWords  Platform = "AdWords"
)

// AllPlatforms lista as plataformas na ordem canônica de exibição
func AllPlatforms() []Platform {
	return []Platform{PlatformFacebook, PlatformAdWords}
}

// ParsePlatform valida o nome de uma plataforma vindo de filtros da API
func ParsePlatform(name string) (Platform, bool) {
	for _, platform := range AllPlatforms() {
		if Platform(name) == platform {
			return platform, true
		}
	}
	return "", false
}

// Colunas do dataset de campanhas no formato largo
const (
	ColumnDateOfCampaign = "date_of_campaign"

	PrefixFacebook = "facebook_"
	PrefixAdWords  = "adword_"
)

// metricSuffixes são os sufixos de coluna repetidos para cada prefixo de plataforma
var metricSuffixes = []string{
	"ad_views",
	"ad_clicks",
	"ad_conversions",
	"cost_per_ad",
	"ctr",
	"conversion_rate",
	"cost_per_click",
}

// DatasetColumns retorna o schema canônico do dataset largo: a coluna de
// data seguida das sete métricas de cada plataforma.
func DatasetColumns() []string {
	columns := []string{ColumnDateOfCampaign}
	for _, prefix := range []string{PrefixFacebook, PrefixAdWords} {
		for _, suffix := range metricSuffixes {
			columns = append(columns, prefix+suffix)
		}
	}
	return columns
}

// PlatformMetrics agrupa as sete métricas de uma plataforma em um registro
// largo. Ponteiros nil representam células ausentes no dataset.
type PlatformMetrics struct {
	AdViews        *int64   `json:"ad_views"`
	AdClicks       *int64   `json:"ad_clicks"`
	AdConversions  *int64   `json:"ad_conversions"`
	CostPerAd      *float64 `json:"cost_per_ad"`
	CTR            *float64 `json:"ctr"`
	ConversionRate *float64 `json:"conversion_rate"`
	CostPerClick   *float64 `json:"cost_per_click"`
}

// CampaignRecord representa uma linha do dataset largo: um dia de campanha
// com as métricas das duas plataformas lado a lado
type CampaignRecord struct {
	Date     time.Time       `json:"date_of_campaign"`
	Facebook PlatformMetrics `json:"facebook"`
	AdWords  PlatformMetrics `json:"adword"`
}

// CampaignDataset é o dataset largo carregado da fonte, com o cabeçalho
// original preservado para validação de schema
type CampaignDataset struct {
	Columns []string          `json:"columns"`
	Records []*CampaignRecord `json:"records"`
}
