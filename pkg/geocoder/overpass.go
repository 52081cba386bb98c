package geocoder

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bluele/gcache"
	"github.com/travigo/stationcoords/pkg/ctdf"
)

const (
	DefaultOverpassEndpoint = "http://overpass-api.de/api/interpreter"
	DefaultOverpassCountry  = "SG"

	overpassCacheSize = 1024
)

var overpassQuoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Overpass looks up railway station nodes by exact name within a country on OpenStreetMap
type Overpass struct {
	Endpoint string
	// ISO 3166-1 code of the search area
	Country string

	client *httpClient

	// Interchanges share a name so the same query comes up more than once a run
	cache gcache.Cache
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  *float64          `json:"lat"`
	Lon  *float64          `json:"lon"`
	Tags map[string]string `json:"tags"`
}

func NewOverpass(endpoint string, country string, options ClientOptions) *Overpass {
	if endpoint == "" {
		endpoint = DefaultOverpassEndpoint
	}
	if country == "" {
		country = DefaultOverpassCountry
	}

	return &Overpass{
		Endpoint: endpoint,
		Country:  country,
		client:   newHTTPClient(options),
		cache:    gcache.New(overpassCacheSize).LRU().Build(),
	}
}

func (o *Overpass) Name() string {
	return ctdf.SourceOpenStreetMap
}

func (o *Overpass) Query(stationName string) string {
	return fmt.Sprintf(`
[out:json];
area["ISO3166-1"="%s"]->.searchArea;
node[railway=station][name="%s"](area.searchArea);
out body;
`, overpassQuoteEscaper.Replace(o.Country), overpassQuoteEscaper.Replace(stationName))
}

// Resolve returns the first station whose name contains stationName (ignoring case) and has coordinates.
// Failed lookups are not cached.
func (o *Overpass) Resolve(ctx context.Context, stationName string) Result {
	if cached, err := o.cache.Get(stationName); err == nil {
		return cached.(Result)
	}

	result := o.lookup(ctx, stationName)

	if result.Status != StatusFailed {
		o.cache.Set(stationName, result)
	}

	return result
}

func (o *Overpass) lookup(ctx context.Context, stationName string) Result {
	params := url.Values{
		"data": {o.Query(stationName)},
	}

	var response overpassResponse
	if err := o.client.getJSON(ctx, o.Endpoint, params, &response); err != nil {
		return Failed(err)
	}

	lowerStationName := strings.ToLower(stationName)

	for _, element := range response.Elements {
		name, exists := element.Tags["name"]
		if !exists {
			name = "Unnamed Station"
		}

		if element.Lat == nil || element.Lon == nil || *element.Lat == 0 || *element.Lon == 0 {
			continue
		}

		if strings.Contains(strings.ToLower(name), lowerStationName) {
			return Found(ctdf.Location{Latitude: *element.Lat, Longitude: *element.Lon})
		}
	}

	return NotFound()
}
