package ctdf

import "fmt"

const (
	SourceOneMap        = "onemap"
	SourceOpenStreetMap = "openstreetmap"
)

// StationKey identifies a station. The same code can appear with different names.
type StationKey struct {
	Code string
	Name string
}

func (k StationKey) String() string {
	return fmt.Sprintf("%s %s", k.Code, k.Name)
}

type Station struct {
	Code string `json:"station_code" groups:"basic"`
	Name string `json:"station_name" groups:"basic"`

	// Decimal degrees exactly as written out, empty when unknown
	Lat string `json:"lat" groups:"internal"`
	Lon string `json:"lon" groups:"internal"`

	Source  string `json:"source" groups:"basic"`
	Comment string `json:"comment" groups:"detailed"`

	Future bool `json:"future" groups:"detailed"`
}

func (s *Station) Key() StationKey {
	return StationKey{Code: s.Code, Name: s.Name}
}

func (s *Station) Location() (Location, bool) {
	return ParseLocation(s.Lat, s.Lon)
}

func (s *Station) HasLocation() bool {
	_, ok := s.Location()
	return ok
}

func (s *Station) SetLocation(location Location, source string) {
	s.Lat = FormatDegrees(location.Latitude)
	s.Lon = FormatDegrees(location.Longitude)
	s.Source = source
}
