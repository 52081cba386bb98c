package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/stationcoords/pkg/ctdf"
)

var testClientOptions = ClientOptions{
	Timeout:       5 * time.Second,
	MaxRetries:    2,
	RetryInterval: time.Millisecond,
}

func jsonServer(t *testing.T, status int, body string, queries *[]url.Values) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if queries != nil {
			*queries = append(*queries, r.URL.Query())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestOneMapResolve(t *testing.T) {
	var queries []url.Values
	server := jsonServer(t, http.StatusOK, `{
		"found": 2,
		"totalNumPages": 1,
		"pageNum": 1,
		"results": [
			{"SEARCHVAL": "JURONG EAST MRT STATION (EW24 / NS1)", "ADDRESS": "10 JURONG EAST STREET 12"},
			{"SEARCHVAL": "JURONG EAST MRT STATION (EW24 / NS1)", "LATITUDE": "1.33315281585758", "LONGITUDE": "103.742286332403"}
		]
	}`, &queries)

	oneMap := NewOneMap(server.URL, testClientOptions)
	result := oneMap.Resolve(context.Background(), "NS1 Jurong East MRT")

	assert.Equal(t, StatusFound, result.Status)
	assert.Equal(t, ctdf.Location{Latitude: 1.33315281585758, Longitude: 103.742286332403}, result.Location)
	assert.Equal(t, "onemap", oneMap.Name())

	require.Len(t, queries, 1)
	assert.Equal(t, "NS1 Jurong East MRT", queries[0].Get("searchVal"))
	assert.Equal(t, "Y", queries[0].Get("returnGeom"))
	assert.Equal(t, "Y", queries[0].Get("getAddrDetails"))
	assert.Equal(t, "1", queries[0].Get("pageNum"))
}

func TestOneMapSkipsUnparseableCandidates(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{
		"results": [
			{"SEARCHVAL": "BUKIT PANJANG LRT STATION (BP6)", "LATITUDE": "NIL", "LONGITUDE": "NIL"},
			{"SEARCHVAL": "BUKIT PANJANG LRT STATION (BP6)", "LATITUDE": "1.37833", "LONGITUDE": "103.76194"}
		]
	}`, nil)

	result := NewOneMap(server.URL, testClientOptions).Resolve(context.Background(), "BP6 Bukit Panjang LRT")

	assert.Equal(t, StatusFound, result.Status)
	assert.Equal(t, ctdf.Location{Latitude: 1.37833, Longitude: 103.76194}, result.Location)
}

func TestOneMapNotFound(t *testing.T) {
	tests := map[string]string{
		"no results key":  `{"found": 0}`,
		"empty results":   `{"found": 0, "totalNumPages": 0, "pageNum": 1, "results": []}`,
		"null results":    `{"results": null}`,
		"results object":  `{"results": {"error": "bad"}}`,
		"no coordinates":  `{"results": [{"SEARCHVAL": "SOMEWHERE"}]}`,
		"bad coordinates": `{"results": [{"LATITUDE": "NIL", "LONGITUDE": "NIL"}]}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			server := jsonServer(t, http.StatusOK, body, nil)

			result := NewOneMap(server.URL, testClientOptions).Resolve(context.Background(), "XX1 Nowhere MRT")
			assert.Equal(t, StatusNotFound, result.Status)
			assert.NoError(t, result.Err)
		})
	}
}

func TestOneMapFailed(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"results": [`, nil)
	result := NewOneMap(server.URL, testClientOptions).Resolve(context.Background(), "NS1 Jurong East MRT")
	assert.Equal(t, StatusFailed, result.Status)
	assert.Error(t, result.Err)

	server = jsonServer(t, http.StatusUnauthorized, `{"error": "unauthorised"}`, nil)
	result = NewOneMap(server.URL, testClientOptions).Resolve(context.Background(), "NS1 Jurong East MRT")
	assert.Equal(t, StatusFailed, result.Status)
	assert.ErrorIs(t, result.Err, ErrUnexpectedStatus)

	// Nothing listening
	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()
	result = NewOneMap(closed.URL, testClientOptions).Resolve(context.Background(), "NS1 Jurong East MRT")
	assert.Equal(t, StatusFailed, result.Status)
}

func TestOneMapRetriesRateLimit(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.Write([]byte(`{"results": [{"LATITUDE": "1.3", "LONGITUDE": "103.8"}]}`))
	}))
	defer server.Close()

	result := NewOneMap(server.URL, testClientOptions).Resolve(context.Background(), "CC1 Dhoby Ghaut MRT")

	assert.Equal(t, StatusFound, result.Status)
	assert.Equal(t, int32(2), requests.Load())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", StatusFound.String())
	assert.Equal(t, "not-found", StatusNotFound.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
