package catalog

import (
	"github.com/travigo/stationcoords/pkg/ctdf"
	"github.com/travigo/stationcoords/pkg/stationcode"
	"golang.org/x/exp/slices"
)

// Catalog holds every station of a run keyed on (code, name).
// The first station added for a key is kept, later ones are ignored.
type Catalog struct {
	stations map[ctdf.StationKey]*ctdf.Station
	order    []ctdf.StationKey

	futureCodes map[string]bool
}

func New() *Catalog {
	return &Catalog{
		stations:    map[ctdf.StationKey]*ctdf.Station{},
		futureCodes: map[string]bool{},
	}
}

// FromKeys creates a catalog of stations with no location from the downloaded station list
func FromKeys(keys []ctdf.StationKey) *Catalog {
	c := New()

	for _, key := range keys {
		c.Add(&ctdf.Station{
			Code: key.Code,
			Name: key.Name,
		})
	}

	return c
}

func (c *Catalog) Add(station *ctdf.Station) bool {
	key := station.Key()

	if _, exists := c.stations[key]; exists {
		return false
	}

	c.stations[key] = station
	c.order = append(c.order, key)

	return true
}

func (c *Catalog) Get(key ctdf.StationKey) (*ctdf.Station, bool) {
	station, exists := c.stations[key]
	return station, exists
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// Stations returns the stations in the order they were added
func (c *Catalog) Stations() []*ctdf.Station {
	stations := make([]*ctdf.Station, 0, len(c.order))

	for _, key := range c.order {
		stations = append(stations, c.stations[key])
	}

	return stations
}

// Sorted returns the stations in station code order. Stations sharing a code keep the order they were added in.
func (c *Catalog) Sorted() []*ctdf.Station {
	stations := c.Stations()

	slices.SortStableFunc(stations, func(a *ctdf.Station, b *ctdf.Station) int {
		return stationcode.CompareCodes(a.Code, b.Code)
	})

	return stations
}

// MergeFuture adds the curated future stations that aren't already in the catalog.
// Their codes are recorded as future only. Returns the number of stations added.
func (c *Catalog) MergeFuture(stations []*ctdf.Station) int {
	added := 0

	for _, station := range stations {
		if _, exists := c.stations[station.Key()]; exists {
			continue
		}

		station.Future = true
		c.Add(station)

		c.futureCodes[station.Code] = true
		added += 1
	}

	return added
}

func (c *Catalog) IsFutureCode(code string) bool {
	return c.futureCodes[code]
}

func (c *Catalog) FutureCodes() []string {
	codes := make([]string, 0, len(c.futureCodes))
	for code := range c.futureCodes {
		codes = append(codes, code)
	}

	stationcode.Sort(codes)

	return codes
}
