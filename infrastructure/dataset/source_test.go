package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/config"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ab_testing.csv")
	content := strings.Join(lines, "\n") + "\n"

	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(t, err)

	return path
}

func canonicalHeader() string {
	return strings.Join(domain.DatasetColumns(), ",")
}

func TestCSVSource_Load(t *testing.T) {
	t.Run("Carrega registros com todas as colunas", func(t *testing.T) {
		path := writeCSV(t,
			canonicalHeader(),
			"2021-01-15,100,10,2,4.5,1.25,2.5,0.45,80,8,1,3.5,1.0,2.0,0.5",
			"2021-01-16,200,20,4,5.5,2.25,3.5,0.55,160,16,2,4.5,1.5,2.5,0.75",
		)

		source := NewCSVSource(config.Dataset{Path: path})
		loaded, err := source.Load()

		assert.NoError(t, err)
		assert.Equal(t, domain.DatasetColumns(), loaded.Columns)
		assert.Len(t, loaded.Records, 2)

		first := loaded.Records[0]
		assert.Equal(t, time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
		assert.Equal(t, int64(100), *first.Facebook.AdViews)
		assert.Equal(t, int64(10), *first.Facebook.AdClicks)
		assert.Equal(t, int64(2), *first.Facebook.AdConversions)
		assert.Equal(t, 4.5, *first.Facebook.CostPerAd)
		assert.Equal(t, 1.25, *first.Facebook.CTR)
		assert.Equal(t, 2.5, *first.Facebook.ConversionRate)
		assert.Equal(t, 0.45, *first.Facebook.CostPerClick)
		assert.Equal(t, int64(80), *first.AdWords.AdViews)
		assert.Equal(t, 0.5, *first.AdWords.CostPerClick)
	})

	t.Run("Células vazias viram ausentes", func(t *testing.T) {
		path := writeCSV(t,
			canonicalHeader(),
			"2021-01-15,,10,,4.5,,2.5,,80,,1,,1.0,,0.5",
		)

		source := NewCSVSource(config.Dataset{Path: path})
		loaded, err := source.Load()

		assert.NoError(t, err)
		assert.Len(t, loaded.Records, 1)

		record := loaded.Records[0]
		assert.Nil(t, record.Facebook.AdViews)
		assert.Equal(t, int64(10), *record.Facebook.AdClicks)
		assert.Nil(t, record.Facebook.AdConversions)
		assert.Nil(t, record.Facebook.CTR)
		assert.Nil(t, record.Facebook.CostPerClick)
		assert.Nil(t, record.AdWords.AdClicks)
	})

	t.Run("Valor não numérico vira célula ausente", func(t *testing.T) {
		path := writeCSV(t,
			canonicalHeader(),
			"2021-01-15,100,10,2,4.5,abc,2.5,0.45,80,8,1,3.5,1.0,2.0,0.5",
		)

		source := NewCSVSource(config.Dataset{Path: path})
		loaded, err := source.Load()

		assert.NoError(t, err)
		assert.Len(t, loaded.Records, 1)
		assert.Nil(t, loaded.Records[0].Facebook.CTR)
		assert.Equal(t, int64(100), *loaded.Records[0].Facebook.AdViews)
	})

	t.Run("Contagens com casa decimal são truncadas", func(t *testing.T) {
		path := writeCSV(t,
			canonicalHeader(),
			"2021-01-15,1200.0,10,2,4.5,1.25,2.5,0.45,80,8,1,3.5,1.0,2.0,0.5",
		)

		source := NewCSVSource(config.Dataset{Path: path})
		loaded, err := source.Load()

		assert.NoError(t, err)
		assert.Equal(t, int64(1200), *loaded.Records[0].Facebook.AdViews)
	})

	t.Run("Linhas com data ausente ou inválida são puladas", func(t *testing.T) {
		path := writeCSV(t,
			canonicalHeader(),
			"2021-01-15,100,10,2,4.5,1.25,2.5,0.45,80,8,1,3.5,1.0,2.0,0.5",
			"nao-e-data,1,1,1,1,1,1,1,1,1,1,1,1,1,1",
			",1,1,1,1,1,1,1,1,1,1,1,1,1,1",
		)

		source := NewCSVSource(config.Dataset{Path: path})
		loaded, err := source.Load()

		assert.NoError(t, err)
		assert.Len(t, loaded.Records, 1)
	})

	t.Run("Linha com número de colunas inesperado é pulada", func(t *testing.T) {
		path := writeCSV(t,
			canonicalHeader(),
			"2021-01-15,100,10",
			"2021-01-16,200,20,4,5.5,2.25,3.5,0.55,160,16,2,4.5,1.5,2.5,0.75",
		)

		source := NewCSVSource(config.Dataset{Path: path})
		loaded, err := source.Load()

		assert.NoError(t, err)
		assert.Len(t, loaded.Records, 1)
		assert.Equal(t, time.Date(2021, 1, 16, 0, 0, 0, 0, time.UTC), loaded.Records[0].Date)
	})

	t.Run("Somente cabeçalho produz dataset sem registros", func(t *testing.T) {
		path := writeCSV(t, canonicalHeader())

		source := NewCSVSource(config.Dataset{Path: path})
		loaded, err := source.Load()

		assert.NoError(t, err)
		assert.Equal(t, domain.DatasetColumns(), loaded.Columns)
		assert.Empty(t, loaded.Records)
	})

	t.Run("Arquivo vazio é rejeitado", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vazio.csv")
		assert.NoError(t, os.WriteFile(path, []byte(""), 0o600))

		source := NewCSVSource(config.Dataset{Path: path})
		loaded, err := source.Load()

		assert.Nil(t, loaded)
		assert.ErrorContains(t, err, "dataset vazio")
	})

	t.Run("Arquivo inexistente é rejeitado", func(t *testing.T) {
		source := NewCSVSource(config.Dataset{Path: filepath.Join(t.TempDir(), "nao-existe.csv")})
		loaded, err := source.Load()

		assert.Nil(t, loaded)
		assert.Error(t, err)
	})
}

func TestCSVSource_Path(t *testing.T) {
	source := NewCSVSource(config.Dataset{Path: "data/ab_testing.csv"})
	assert.Equal(t, "data/ab_testing.csv", source.Path())
}
