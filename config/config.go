package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server, the Swiss Ephemeris data location, and the two
// external lookup services (geocoding and timezone-by-position).
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	EPHE_PATH=./ephe
//	TIMEZONEDB_API_KEY=secret
//	GEOCODER_BASE_URL=https://nominatim.openstreetmap.org
//	TIMEZONEDB_BASE_URL=https://api.timezonedb.com
//	HTTP_CLIENT_TIMEOUT=5s
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Ephemeris EphemerisConfig // Swiss Ephemeris settings
	Geocoder  GeocoderConfig  // Geocoding service settings
	Timezone  TimezoneConfig  // Timezone lookup service settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// EphemerisConfig defines where the Swiss Ephemeris data files live.
type EphemerisConfig struct {
	DataPath string // Directory containing the ephemeris data files
}

// GeocoderConfig defines settings for the place-name geocoding service.
//
// Fields:
//   - BaseURL: root URL of the Nominatim-compatible service.
//   - Timeout: per-request timeout; lookups are single-attempt and must
//     fail fast rather than hold the request open.
type GeocoderConfig struct {
	BaseURL string
	Timeout time.Duration
}

// TimezoneConfig defines settings for the timezone-by-position service.
//
// Fields:
//   - BaseURL: root URL of the TimezoneDB-compatible service.
//   - APIKey: account key sent with each lookup.
//   - Timeout: per-request timeout, same single-attempt policy as geocoding.
type TimezoneConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Load reads configuration from the environment (or a .env file, if present)
// and returns a validated Config.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// The returned struct is the only configuration surface of the application:
// it is passed explicitly to the wiring layer, there is no package-level
// configuration state.
func Load() (*Config, error) {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("EPHE_PATH", ".")
	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("TIMEZONEDB_BASE_URL", "https://api.timezonedb.com")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "5s")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	timeout := viper.GetDuration("HTTP_CLIENT_TIMEOUT")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Ephemeris: EphemerisConfig{
			DataPath: viper.GetString("EPHE_PATH"),
		},
		Geocoder: GeocoderConfig{
			BaseURL: viper.GetString("GEOCODER_BASE_URL"),
			Timeout: timeout,
		},
		Timezone: TimezoneConfig{
			BaseURL: viper.GetString("TIMEZONEDB_BASE_URL"),
			APIKey:  viper.GetString("TIMEZONEDB_API_KEY"),
			Timeout: timeout,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate ensures required fields are present and sane.
//
// TIMEZONEDB_API_KEY is deliberately not required: a missing key degrades
// timezone lookups to the UTC fallback instead of preventing startup.
func (c *Config) validate() error {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.Ephemeris.DataPath == "" {
		missing = append(missing, "EPHE_PATH")
	}
	if c.Geocoder.BaseURL == "" {
		missing = append(missing, "GEOCODER_BASE_URL")
	}
	if c.Timezone.BaseURL == "" {
		missing = append(missing, "TIMEZONEDB_BASE_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v", missing)
	}
	if c.Geocoder.Timeout <= 0 || c.Timezone.Timeout <= 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT must be a positive duration")
	}
	return nil
}
