package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for the two required provider keys.
const (
	EnvTicketmasterAPIKey = "TICKETMASTER_API_KEY"
	EnvGooglePlacesAPIKey = "GOOGLE_PLACES_API_KEY"
)

// Config holds the provider credentials for one server process. It is
// read-only after Load.
type Config struct {
	// TicketmasterAPIKey authenticates against the Ticketmaster Discovery API
	TicketmasterAPIKey string

	// GooglePlacesAPIKey authenticates against the Google Places and
	// Geocoding APIs
	GooglePlacesAPIKey string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables take
// precedence over .env values.
func Load() (*Config, error) {
	// godotenv.Load does not override variables that are already set.
	_ = godotenv.Load()

	cfg := &Config{
		TicketmasterAPIKey: os.Getenv(EnvTicketmasterAPIKey),
		GooglePlacesAPIKey: os.Getenv(EnvGooglePlacesAPIKey),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that both provider keys are present.
func (c *Config) Validate() error {
	if c.TicketmasterAPIKey == "" {
		return fmt.Errorf("%s is required", EnvTicketmasterAPIKey)
	}
	if c.GooglePlacesAPIKey == "" {
		return fmt.Errorf("%s is required", EnvGooglePlacesAPIKey)
	}
	return nil
}
