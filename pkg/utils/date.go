package utils

import "time"

// ParseDate interpreta uma data AAAA-MM-DD vinda da query string.
// Retorna nil sem erro quando o parâmetro está ausente (string vazia).
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
