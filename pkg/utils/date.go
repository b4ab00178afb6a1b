package utils

import "time"

// ParseDate interpreta um parâmetro de data no formato YYYY-MM-DD.
// Retorna nil quando o parâmetro está vazio (filtro ausente).
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
