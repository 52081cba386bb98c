package export

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/travigo/stationcoords/pkg/ctdf"
)

const csvColumnCount = 6

type stationRow struct {
	Code    string `csv:"station_code"`
	Name    string `csv:"station_name"`
	Lat     string `csv:"lat"`
	Lon     string `csv:"lon"`
	Source  string `csv:"source"`
	Comment string `csv:"comment"`
}

func newStationRows(stations []*ctdf.Station) []*stationRow {
	rows := make([]*stationRow, 0, len(stations))

	for _, station := range stations {
		rows = append(rows, &stationRow{
			Code:    station.Code,
			Name:    station.Name,
			Lat:     station.Lat,
			Lon:     station.Lon,
			Source:  station.Source,
			Comment: station.Comment,
		})
	}

	return rows
}

func WriteCSV(writer io.Writer, stations []*ctdf.Station) error {
	return gocsv.Marshal(newStationRows(stations), writer)
}

func WriteCSVFile(path string, stations []*ctdf.Station) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteCSV(file, stations); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// readStationRows reads a station CSV by column position, skipping the header
func readStationRows(reader io.Reader) ([]*stationRow, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = csvColumnCount

	if _, err := csvReader.Read(); err != nil {
		if err == io.EOF {
			return []*stationRow{}, nil
		}
		return nil, err
	}

	rows := []*stationRow{}
	err := gocsv.UnmarshalCSVWithoutHeaders(csvReader, &rows)
	if err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil, err
	}

	return rows, nil
}
