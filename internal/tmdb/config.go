// Package tmdb provides The Movie Database API integration for collecting
// movie listings and details.
package tmdb

import (
	"errors"
)

// DefaultRequestsPerSecond keeps the client under TMDB's published limits.
const DefaultRequestsPerSecond = 4.0

// ErrMissingCredentials is returned when neither an API key nor a read token
// is configured.
var ErrMissingCredentials = errors.New("missing TMDB credentials: set tmdb.api_key or tmdb.read_token")

// Config holds TMDB API configuration. ReadToken takes precedence over APIKey.
type Config struct {
	APIKey            string  `koanf:"api_key"`
	ReadToken         string  `koanf:"read_token"`
	RequestsPerSecond float64 `koanf:"requests_per_second"`
}

// Validate reports ErrMissingCredentials when no credential is set.
func (c Config) Validate() error {
	if c.APIKey == "" && c.ReadToken == "" {
		return ErrMissingCredentials
	}
	if c.RequestsPerSecond < 0 {
		return errors.New("tmdb.requests_per_second must not be negative")
	}
	return nil
}
