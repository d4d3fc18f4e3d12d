package app

import (
	"github.com/gin-gonic/gin"

	"github.com/astropulse/astropulse/config"
	"github.com/astropulse/astropulse/internal/api"
	"github.com/astropulse/astropulse/internal/ephemeris"
	"github.com/astropulse/astropulse/internal/geo"
	"github.com/astropulse/astropulse/internal/metrics"
	"github.com/astropulse/astropulse/internal/service"
	"github.com/astropulse/astropulse/internal/tz"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Opens the Swiss Ephemeris with the configured data path.
//   - Builds the geocoding and timezone lookup clients.
//   - Wires the chart service and HTTP handler layers.
//   - Registers health and readiness probes and metrics.
//   - Provides a cleanup function that releases the ephemeris data files.
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	metrics.Register()

	eph := ephemeris.NewSwiss(cfg.Ephemeris.DataPath)

	geocoder := geo.NewNominatimClient(cfg.Geocoder.BaseURL, cfg.Geocoder.Timeout)
	timezone := tz.NewTimezoneDBClient(cfg.Timezone.BaseURL, cfg.Timezone.APIKey, cfg.Timezone.Timeout)

	svc := service.NewChartService(geocoder, timezone, eph)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	// Readiness probes the ephemeris with a fixed known-good input, the way
	// a database-backed service would ping its pool.
	healthHandler := api.NewHealthHandler(func() error {
		_, err := eph.PlanetState(ephemeris.J2000, ephemeris.Sun)
		return err
	})
	healthHandler.Register(router)

	cleanup := func() {
		eph.Close()
	}

	return router, cleanup, nil
}
