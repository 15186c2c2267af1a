package utils

import "time"

// ParseDate converte "2006-01-02" em time.Time. String vazia resolve para a
// data zero, deixando o default a cargo do chamador.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
