// Package tz resolves the UTC offset of a coordinate at a point in time via
// a TimezoneDB-compatible web service.
package tz

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/astropulse/astropulse/internal/logger"
	"github.com/astropulse/astropulse/internal/metrics"
)

// Offset sources. A defaulted offset means the lookup failed and UTC was
// assumed; the chart is then computed with a possibly wrong offset rather
// than not at all.
const (
	SourceResolved  = "resolved"
	SourceDefaulted = "defaulted"
)

// Offset is the result of a timezone lookup: signed hours east of UTC plus
// where the value came from. Callers and tests can tell a real +0.00 from
// the degraded fallback.
type Offset struct {
	Hours  float64
	Source string
}

// Resolver resolves the UTC offset for a coordinate and epoch timestamp.
type Resolver interface {
	UTCOffset(ctx context.Context, lat, lon float64, epoch int64) Offset
}

// TimezoneDBClient is the production Resolver. Single attempt, short
// timeout, failure degrades to UTC instead of surfacing an error.
type TimezoneDBClient struct {
	client *resty.Client
	apiKey string
}

var _ Resolver = (*TimezoneDBClient)(nil)

// NewTimezoneDBClient builds a client for the given base URL and API key.
func NewTimezoneDBClient(baseURL, apiKey string, timeout time.Duration) *TimezoneDBClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0)

	return &TimezoneDBClient{client: client, apiKey: apiKey}
}

// UTCOffset queries the timezone service by position. Any failure (network,
// HTTP error, missing field) yields Offset{0, SourceDefaulted}.
func (c *TimezoneDBClient) UTCOffset(ctx context.Context, lat, lon float64, epoch int64) Offset {
	var payload struct {
		// Pointer so an absent field is distinguishable from offset 0.
		GMTOffset *int64 `json:"gmtOffset"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":    c.apiKey,
			"format": "json",
			"by":     "position",
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lng":    strconv.FormatFloat(lon, 'f', -1, 64),
			"time":   strconv.FormatInt(epoch, 10),
		}).
		SetResult(&payload).
		Get("/v2.1/get-time-zone")
	if err != nil || resp.IsError() || payload.GMTOffset == nil {
		metrics.LookupFailures.WithLabelValues("timezone").Inc()
		logger.L().Warn().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("timezone lookup failed, assuming UTC")
		return Offset{Hours: 0, Source: SourceDefaulted}
	}

	return Offset{
		Hours:  float64(*payload.GMTOffset) / 3600,
		Source: SourceResolved,
	}
}
