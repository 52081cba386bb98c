package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTimeout       = 15 * time.Second
	DefaultMaxRetries    = 2
	DefaultRetryInterval = 1 * time.Second
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type ClientOptions struct {
	Timeout time.Duration

	// Only rate limiting and gateway errors are retried
	MaxRetries    int
	RetryInterval time.Duration
}

type httpClient struct {
	client  *http.Client
	options ClientOptions
}

func newHTTPClient(options ClientOptions) *httpClient {
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}
	if options.RetryInterval <= 0 {
		options.RetryInterval = DefaultRetryInterval
	}
	if options.MaxRetries < 0 {
		options.MaxRetries = 0
	}

	return &httpClient{
		client:  &http.Client{Timeout: options.Timeout},
		options: options,
	}
}

func retryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// getJSON performs a GET with the query parameters and decodes the JSON body into out
func (c *httpClient) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	requestURL := endpoint
	if len(params) > 0 {
		requestURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "stationcoords")

		resp, err := c.client.Do(req)
		if err != nil {
			return backoff.Permanent(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			statusErr := fmt.Errorf("%w %d from %s", ErrUnexpectedStatus, resp.StatusCode, endpoint)

			if retryableStatus(resp.StatusCode) {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding response from %s: %w", endpoint, err))
		}

		return nil
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = c.options.RetryInterval

	return backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(retryBackoff, uint64(c.options.MaxRetries)), ctx),
		func(err error, wait time.Duration) {
			log.Debug().Err(err).Str("wait", wait.String()).Msg("Retrying geocoder request")
		},
	)
}
