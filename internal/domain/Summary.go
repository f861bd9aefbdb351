package domain

import (
	"time"
)

// SummaryRow agrega as observações de uma plataforma: soma e média para as
// métricas de contagem, média para custos e taxas. Médias são arredondadas
// half-to-even com duas casas decimais; uma média sem valores presentes é 0.
type SummaryRow struct {
	ViewsSum           int64   `json:"views_sum"`
	ViewsMean          float64 `json:"views_mean"`
	ClicksSum          int64   `json:"clicks_sum"`
	ClicksMean         float64 `json:"clicks_mean"`
	ConversionsSum     int64   `json:"conversions_sum"`
	ConversionsMean    float64 `json:"conversions_mean"`
	CostPerAdMean      float64 `json:"cost_per_ad_mean"`
	CTRMean            float64 `json:"ctr_mean"`
	ConversionRateMean float64 `json:"conversion_rate_mean"`
	CostPerClickMean   float64 `json:"cost_per_click_mean"`
}

// PlatformSummary mapeia cada plataforma com observações no recorte para a
// sua linha de resumo. Plataformas sem observações ficam ausentes do mapa.
type PlatformSummary map[Platform]*SummaryRow

// DatasetPreview devolve as primeiras linhas do dataset nos dois formatos,
// usado pela tela inicial do dashboard
type DatasetPreview struct {
	Columns           []string          `json:"columns"`
	Records           []*CampaignRecord `json:"records"`
	Observations      []*Observation    `json:"observations"`
	TotalRecords      int               `json:"total_records"`
	TotalObservations int               `json:"total_observations"`
}

// DatasetStatus descreve o snapshot atualmente carregado em memória
type DatasetStatus struct {
	SnapshotID        string     `json:"snapshot_id"`
	SourcePath        string     `json:"source_path"`
	LoadedAt          time.Time  `json:"loaded_at"`
	TotalRecords      int        `json:"total_records"`
	TotalObservations int        `json:"total_observations"`
	FirstCampaignDate *time.Time `json:"first_campaign_date,omitempty"`
	LastCampaignDate  *time.Time `json:"last_campaign_date,omitempty"`
}

// ObservationPage é uma página do formato longo filtrado
type ObservationPage struct {
	Observations []*Observation  `json:"observations"`
	Total        int             `json:"total"`
	Limit        int             `json:"limit"`
	Offset       int             `json:"offset"`
	Filters      *InsightFilters `json:"filters,omitempty"`
}
