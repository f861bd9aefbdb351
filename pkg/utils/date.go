package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD. Uma string vazia
// retorna nil, indicando um limite de filtro não informado.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
