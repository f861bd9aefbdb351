package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/config"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/log"
)

// Source carrega o dataset largo de campanhas da fonte configurada
type Source interface {
	Load() (*domain.CampaignDataset, error)
	Path() string
}

type csvSource struct {
	path string
}

// NewCSVSource cria uma fonte que lê o dataset de um arquivo CSV
func NewCSVSource(cfg config.Dataset) Source {
	return &csvSource{path: cfg.Path}
}

func (s *csvSource) Path() string {
	return s.path
}

// Load lê o arquivo inteiro para a memória, preservando o cabeçalho para a
// validação de schema. Linhas com data ausente ou inválida são puladas com
// aviso; células numéricas vazias ou ilegíveis viram nil e ficam de fora
// das agregações.
func (s *csvSource) Load() (*domain.CampaignDataset, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo do dataset")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("dataset vazio: nenhum cabeçalho encontrado")
		}
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do dataset")
	}

	columns := make([]string, len(header))
	indexes := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		columns[i] = name
		indexes[name] = i
	}

	records := make([]*domain.CampaignRecord, 0)
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		line++

		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				log.L.WithError(err).WithField("line", line).Warn("Linha do dataset com número de colunas inesperado, ignorada")
				continue
			}
			return nil, errors.Wrapf(err, "erro ao ler a linha %d do dataset", line)
		}

		record, err := parseRecord(row, indexes)
		if err != nil {
			log.L.WithError(err).WithField("line", line).Warn("Linha do dataset ignorada")
			continue
		}

		records = append(records, record)
	}

	log.L.WithFields(log.Fields{
		"path":    s.path,
		"records": len(records),
	}).Info("Dataset de campanhas carregado")

	return &domain.CampaignDataset{
		Columns: columns,
		Records: records,
	}, nil
}

func parseRecord(row []string, indexes map[string]int) (*domain.CampaignRecord, error) {
	rawDate := cell(row, indexes, domain.ColumnDateOfCampaign)
	if rawDate == "" {
		return nil, errors.New("data da campanha ausente")
	}

	date, err := time.Parse(time.DateOnly, rawDate)
	if err != nil {
		return nil, errors.Wrapf(err, "data da campanha inválida: %q", rawDate)
	}

	return &domain.CampaignRecord{
		Date:     date,
		Facebook: parsePlatformMetrics(row, indexes, domain.PrefixFacebook),
		AdWords:  parsePlatformMetrics(row, indexes, domain.PrefixAdWords),
	}, nil
}

func parsePlatformMetrics(row []string, indexes map[string]int, prefix string) domain.PlatformMetrics {
	return domain.PlatformMetrics{
		AdViews:        parseCount(cell(row, indexes, prefix+"ad_views")),
		AdClicks:       parseCount(cell(row, indexes, prefix+"ad_clicks")),
		AdConversions:  parseCount(cell(row, indexes, prefix+"ad_conversions")),
		CostPerAd:      parseAmount(cell(row, indexes, prefix+"cost_per_ad")),
		CTR:            parseAmount(cell(row, indexes, prefix+"ctr")),
		ConversionRate: parseAmount(cell(row, indexes, prefix+"conversion_rate")),
		CostPerClick:   parseAmount(cell(row, indexes, prefix+"cost_per_click")),
	}
}

// cell devolve o valor bruto de uma coluna, ou vazio quando a coluna não
// existe no arquivo
func cell(row []string, indexes map[string]int, column string) string {
	index, exists := indexes[column]
	if !exists || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parseCount converte contagens inteiras. Exportações de planilha às vezes
// gravam contagens com casa decimal ("1200.0"), então o fallback aceita
// float e trunca.
func parseCount(raw string) *int64 {
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		asFloat, floatErr := strconv.ParseFloat(raw, 64)
		if floatErr != nil {
			return nil
		}
		value = int64(asFloat)
	}

	return &value
}

// parseAmount converte valores decimais; células vazias ou ilegíveis viram nil
func parseAmount(raw string) *float64 {
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &value
}
