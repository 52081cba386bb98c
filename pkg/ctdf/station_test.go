package ctdf

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	location, ok := ParseLocation("1.333", "103.742")
	assert.True(t, ok)
	assert.Equal(t, Location{Latitude: 1.333, Longitude: 103.742}, location)
	assert.Equal(t, orb.Point{103.742, 1.333}, location.Point())

	location, ok = ParseLocation(" 1.5 ", "103")
	assert.True(t, ok)
	assert.Equal(t, Location{Latitude: 1.5, Longitude: 103}, location)

	_, ok = ParseLocation("", "103.742")
	assert.False(t, ok)
	_, ok = ParseLocation("1.333", "")
	assert.False(t, ok)
	_, ok = ParseLocation("north", "103.742")
	assert.False(t, ok)
}

func TestStationSetLocation(t *testing.T) {
	station := &Station{Code: "NS1", Name: "Jurong East"}
	assert.False(t, station.HasLocation())

	station.SetLocation(Location{Latitude: 1.3331567, Longitude: 103.7422}, SourceOneMap)

	assert.Equal(t, "1.3331567", station.Lat)
	assert.Equal(t, "103.7422", station.Lon)
	assert.Equal(t, "onemap", station.Source)
	assert.True(t, station.HasLocation())
	assert.Equal(t, StationKey{Code: "NS1", Name: "Jurong East"}, station.Key())
	assert.Equal(t, "NS1 Jurong East", station.Key().String())
}
