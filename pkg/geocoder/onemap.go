package geocoder

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/travigo/stationcoords/pkg/ctdf"
)

const DefaultOneMapEndpoint = "https://www.onemap.gov.sg/api/common/elastic/search"

// OneMap searches the OneMap free text place search
type OneMap struct {
	Endpoint string

	client *httpClient
}

type oneMapResponse struct {
	Found         int             `json:"found"`
	TotalNumPages int             `json:"totalNumPages"`
	PageNum       int             `json:"pageNum"`
	Results       json.RawMessage `json:"results"`
}

type oneMapResult struct {
	SearchValue string `json:"SEARCHVAL"`
	Address     string `json:"ADDRESS"`
	Latitude    string `json:"LATITUDE"`
	Longitude   string `json:"LONGITUDE"`
}

func NewOneMap(endpoint string, options ClientOptions) *OneMap {
	if endpoint == "" {
		endpoint = DefaultOneMapEndpoint
	}

	return &OneMap{
		Endpoint: endpoint,
		client:   newHTTPClient(options),
	}
}

func (o *OneMap) Name() string {
	return ctdf.SourceOneMap
}

// Resolve returns the first search result on the first page that has a latitude & longitude
func (o *OneMap) Resolve(ctx context.Context, query string) Result {
	params := url.Values{
		"searchVal":      {query},
		"returnGeom":     {"Y"},
		"getAddrDetails": {"Y"},
		"pageNum":        {"1"},
	}

	var response oneMapResponse
	if err := o.client.getJSON(ctx, o.Endpoint, params, &response); err != nil {
		return Failed(err)
	}

	// Anything other than a list of results counts as no results
	var results []oneMapResult
	if len(response.Results) == 0 || json.Unmarshal(response.Results, &results) != nil {
		return NotFound()
	}

	// Candidates whose coordinates don't parse are passed over, not treated as the answer
	for _, result := range results {
		if location, ok := ctdf.ParseLocation(result.Latitude, result.Longitude); ok {
			return Found(location)
		}
	}

	return NotFound()
}
