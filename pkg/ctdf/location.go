package ctdf

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type Location struct {
	Latitude  float64
	Longitude float64
}

// Point is in GeoJSON/KML order, longitude first
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// ParseLocation reads textual decimal degrees, reporting false if either is empty or not a number
func ParseLocation(lat string, lon string) (Location, bool) {
	lat = strings.TrimSpace(lat)
	lon = strings.TrimSpace(lon)

	if lat == "" || lon == "" {
		return Location{}, false
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Location{}, false
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Location{}, false
	}

	return Location{Latitude: latitude, Longitude: longitude}, true
}

// FormatDegrees uses the shortest representation that reads back as the same float
func FormatDegrees(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
