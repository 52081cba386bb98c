package futurestations

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/jinzhu/copier"
	"github.com/travigo/stationcoords/pkg/ctdf"
	"golang.org/x/net/html/charset"
)

const columnCount = 6

// Record is one row of the curated future stations file.
// Columns are read by position, the header row is skipped whatever it says.
type Record struct {
	Code    string `csv:"station_code"`
	Name    string `csv:"station_name"`
	Lat     string `csv:"lat"`
	Lon     string `csv:"lon"`
	Source  string `csv:"source"`
	Comment string `csv:"comment"`
}

type FutureStations struct {
	// Character set of the file, utf-8 when empty
	Encoding string

	Records []*Record
}

func (f *FutureStations) ParseFile(reader io.Reader) error {
	encoding := f.Encoding
	if encoding == "" {
		encoding = "utf-8"
	}

	decoded, err := charset.NewReaderLabel(encoding, reader)
	if err != nil {
		return fmt.Errorf("unsupported encoding %s: %w", encoding, err)
	}

	csvReader := csv.NewReader(decoded)
	csvReader.FieldsPerRecord = columnCount

	// Header
	if _, err := csvReader.Read(); err != nil {
		if err == io.EOF {
			f.Records = []*Record{}
			return nil
		}
		return err
	}

	records := []*Record{}
	err = gocsv.UnmarshalCSVWithoutHeaders(csvReader, &records)
	if err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return err
	}

	f.Records = records

	return nil
}

// Stations converts the records to stations, values are kept exactly as written
func (f *FutureStations) Stations() ([]*ctdf.Station, error) {
	stations := make([]*ctdf.Station, 0, len(f.Records))

	for _, record := range f.Records {
		station := &ctdf.Station{}
		if err := copier.Copy(station, record); err != nil {
			return nil, err
		}

		stations = append(stations, station)
	}

	return stations, nil
}
