package utils

import "time"

const columnDateLayout = "2006-01-02"

// ParseColumnDate interpreta o nome de uma coluna do dataset como data de
// calendário. Uma coluna é considerada coluna de valor se, e somente se,
// o cabeçalho estiver no formato YYYY-MM-DD.
func ParseColumnDate(header string) (time.Time, bool) {
	date, err := time.Parse(columnDateLayout, header)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}
