// Package config loads moodreel configuration from defaults, an optional YAML
// file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/justestif/go-movie-mood-recommender/internal/classifier"
	"github.com/justestif/go-movie-mood-recommender/internal/clustering"
	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/logging"
	"github.com/justestif/go-movie-mood-recommender/internal/profiles"
	"github.com/justestif/go-movie-mood-recommender/internal/tmdb"
)

// Catalog source names.
const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Config is the full application configuration.
type Config struct {
	Server     ServerConfig      `koanf:"server"`
	Database   DatabaseConfig    `koanf:"database"`
	Log        LogConfig         `koanf:"log"`
	Catalog    CatalogConfig     `koanf:"catalog"`
	Classifier ClassifierConfig  `koanf:"classifier"`
	Profile    ProfileConfig     `koanf:"profile"`
	TMDB       tmdb.Config       `koanf:"tmdb"`
	Clustering clustering.Config `koanf:"clustering"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RateLimit       int           `koanf:"rate_limit"` // requests per minute per IP, 0 disables
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig configures PostgreSQL.
type DatabaseConfig struct {
	URL string `koanf:"url"`
}

// LogConfig configures zerolog output.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Logging converts to a logging.Config writing to stderr.
func (c LogConfig) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	cfg.Format = c.Format
	cfg.Caller = c.Caller
	return cfg
}

// CatalogConfig selects where recommendations read movies from.
type CatalogConfig struct {
	Source  string        `koanf:"source"`
	Path    string        `koanf:"path"`
	Refresh time.Duration `koanf:"refresh"`
}

// ClassifierConfig selects the text emotion classifier.
type ClassifierConfig struct {
	Provider         string        `koanf:"provider"`
	Model            string        `koanf:"model"`
	APIKey           string        `koanf:"api_key"`
	BaseURL          string        `koanf:"base_url"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
	OpenTimeout      time.Duration `koanf:"open_timeout"`
}

// Classifier converts to a classifier.Config.
func (c ClassifierConfig) Classifier() classifier.Config {
	return classifier.Config{
		Provider:         c.Provider,
		Model:            c.Model,
		APIKey:           c.APIKey,
		BaseURL:          c.BaseURL,
		FailureThreshold: c.FailureThreshold,
		OpenTimeout:      c.OpenTimeout,
	}
}

// ProfileConfig tunes profile synthesis.
type ProfileConfig struct {
	NLPWeight   float64 `koanf:"nlp_weight"`
	GenreWeight float64 `koanf:"genre_weight"`
	Concurrency int     `koanf:"concurrency"`
	BatchSize   int     `koanf:"batch_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Catalog: CatalogConfig{
			Source:  SourceFile,
			Path:    "movies.json",
			Refresh: 5 * time.Minute,
		},
		Classifier: ClassifierConfig{
			Provider:         classifier.ProviderLexicon,
			Model:            classifier.DefaultOpenAIModel,
			FailureThreshold: 5,
			OpenTimeout:      30 * time.Second,
		},
		Profile: ProfileConfig{
			NLPWeight:   emotion.DefaultNLPWeight,
			GenreWeight: emotion.DefaultGenreWeight,
			Concurrency: profiles.DefaultConcurrency,
			BatchSize:   profiles.DefaultBatchSize,
		},
		TMDB: tmdb.Config{
			RequestsPerSecond: tmdb.DefaultRequestsPerSecond,
		},
		Clustering: clustering.DefaultConfig(),
	}
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("server.rate_limit must not be negative"))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}

	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.Path == "" {
			errs = append(errs, errors.New("catalog.path is required for the file source"))
		}
	case SourceDatabase:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("database.url is required for the database source"))
		}
	default:
		errs = append(errs, fmt.Errorf("catalog.source must be %q or %q, got %q", SourceFile, SourceDatabase, c.Catalog.Source))
	}
	if c.Catalog.Refresh < 0 {
		errs = append(errs, errors.New("catalog.refresh must not be negative"))
	}

	switch strings.ToLower(c.Classifier.Provider) {
	case classifier.ProviderLexicon, classifier.ProviderNone:
	case classifier.ProviderOpenAI:
		if c.Classifier.APIKey == "" {
			errs = append(errs, errors.New("classifier.api_key is required for the openai provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("classifier.provider %q: %w", c.Classifier.Provider, classifier.ErrUnknownProvider))
	}

	if _, _, err := emotion.NormalizeWeights(c.Profile.NLPWeight, c.Profile.GenreWeight); err != nil {
		errs = append(errs, fmt.Errorf("profile weights: %w", err))
	}
	if c.Profile.Concurrency < 1 {
		errs = append(errs, errors.New("profile.concurrency must be at least 1"))
	}
	if c.Profile.BatchSize < 1 {
		errs = append(errs, errors.New("profile.batch_size must be at least 1"))
	}

	if c.Clustering.NumClusters < 1 {
		errs = append(errs, errors.New("clustering.num_clusters must be at least 1"))
	}
	if c.Clustering.MinClusterSize < 1 {
		errs = append(errs, errors.New("clustering.min_cluster_size must be at least 1"))
	}

	return errors.Join(errs...)
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
