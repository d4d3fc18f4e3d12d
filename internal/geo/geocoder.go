// Package geo resolves free-text place names to coordinates via a
// Nominatim-compatible geocoding service.
package geo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/astropulse/astropulse/internal/logger"
	"github.com/astropulse/astropulse/internal/metrics"
)

// ErrNotFound signals that the place could not be resolved. Network errors,
// malformed responses and empty result sets all collapse into it: the caller
// only needs to know the lookup produced nothing usable.
var ErrNotFound = errors.New("place not found")

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (Coordinates, error)
}

// NominatimClient is the production Geocoder. One outbound call per
// invocation, single attempt, short timeout, no caching.
type NominatimClient struct {
	client *resty.Client
}

var _ Geocoder = (*NominatimClient)(nil)

// NewNominatimClient builds a client against the given base URL with the
// given per-request timeout.
func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", "astropulse")

	return &NominatimClient{client: client}
}

// Resolve asks the geocoding service for the best single match of the place
// name. A failed or empty lookup returns ErrNotFound, never a transport
// error.
func (c *NominatimClient) Resolve(ctx context.Context, place string) (Coordinates, error) {
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":              place,
			"format":         "json",
			"addressdetails": "1",
			"limit":          "1",
		}).
		SetResult(&results).
		Get("/search")
	if err != nil || resp.IsError() {
		metrics.LookupFailures.WithLabelValues("geocoder").Inc()
		logger.L().Warn().Err(err).Str("place", place).Msg("geocoding lookup failed")
		return Coordinates{}, ErrNotFound
	}
	if len(results) == 0 {
		return Coordinates{}, ErrNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		metrics.LookupFailures.WithLabelValues("geocoder").Inc()
		logger.L().Warn().Str("place", place).Msg("geocoding response malformed")
		return Coordinates{}, ErrNotFound
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}
