package spreadsheet

import (
	"strings"

	"github.com/travigo/stationcoords/pkg/ctdf"
)

const (
	codeColumn = 0
	nameColumn = 1
)

// Sheet is the first worksheet of a station catalogue, header row included
type Sheet struct {
	Rows [][]string
}

// Stations reads the code & name columns of every row after the header.
// Rows with neither a code nor a name are padding and get dropped.
func (s *Sheet) Stations() []ctdf.StationKey {
	var stations []ctdf.StationKey

	for i, row := range s.Rows {
		if i == 0 {
			continue
		}

		code := strings.TrimSpace(cell(row, codeColumn))
		name := strings.TrimSpace(cell(row, nameColumn))

		if code == "" && name == "" {
			continue
		}

		stations = append(stations, ctdf.StationKey{
			Code: code,
			Name: name,
		})
	}

	return stations
}

func cell(row []string, column int) string {
	if column >= len(row) {
		return ""
	}

	return row[column]
}
