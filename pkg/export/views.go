package export

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/stationcoords/pkg/catalog"
	"github.com/travigo/stationcoords/pkg/ctdf"
	"github.com/travigo/stationcoords/pkg/stationcode"
)

const (
	FormatCSV     = "csv"
	FormatKML     = "kml"
	FormatGeoJSON = "geojson"
)

// StationEnv is what a view filter expression can see about a station
type StationEnv struct {
	Code     string
	Name     string
	LineCode string
	Number   int
	Suffix   string

	Lat     string
	Lon     string
	Source  string
	Comment string

	// The code only exists in the future stations file
	Future      bool
	HasLocation bool
}

func NewStationEnv(station *ctdf.Station, stations *catalog.Catalog) StationEnv {
	components := stationcode.Parse(station.Code)

	return StationEnv{
		Code:        station.Code,
		Name:        station.Name,
		LineCode:    components.LineCode,
		Number:      components.Number,
		Suffix:      components.Suffix,
		Lat:         station.Lat,
		Lon:         station.Lon,
		Source:      station.Source,
		Comment:     station.Comment,
		Future:      station.Future || stations.IsFutureCode(station.Code),
		HasLocation: station.HasLocation(),
	}
}

// View is a named selection of the catalog written out in one or more formats
type View struct {
	Name    string
	Filter  string
	Formats []string

	program *vm.Program
}

func NewView(name string, filter string, formats []string) (*View, error) {
	program, err := expr.Compile(filter, expr.Env(StationEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter for %s: %w", name, err)
	}

	return &View{
		Name:    name,
		Filter:  filter,
		Formats: formats,
		program: program,
	}, nil
}

// Select returns the matching stations in station code order
func (v *View) Select(stations *catalog.Catalog) ([]*ctdf.Station, error) {
	selected := []*ctdf.Station{}

	for _, station := range stations.Sorted() {
		output, err := expr.Run(v.program, NewStationEnv(station, stations))
		if err != nil {
			return nil, fmt.Errorf("evaluating %s filter for %s: %w", v.Name, station.Key(), err)
		}

		if output.(bool) {
			selected = append(selected, station)
		}
	}

	return selected, nil
}
