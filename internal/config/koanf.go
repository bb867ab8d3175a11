package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "MOODREEL_CONFIG"

// DefaultPaths are searched in order when no path is given.
var DefaultPaths = []string{
	"moodreel.yaml",
	"moodreel.yml",
}

// envMappings maps environment variable names to config paths. Unlisted
// variables are ignored.
var envMappings = map[string]string{
	"moodreel_host":             "server.host",
	"moodreel_port":             "server.port",
	"port":                      "server.port",
	"moodreel_rate_limit":       "server.rate_limit",
	"moodreel_shutdown_timeout": "server.shutdown_timeout",

	"database_url":          "database.url",
	"moodreel_database_url": "database.url",

	"moodreel_log_level":  "log.level",
	"moodreel_log_format": "log.format",
	"moodreel_log_caller": "log.caller",

	"moodreel_catalog_source":  "catalog.source",
	"moodreel_catalog_path":    "catalog.path",
	"moodreel_catalog_refresh": "catalog.refresh",

	"moodreel_classifier":                   "classifier.provider",
	"moodreel_classifier_model":             "classifier.model",
	"moodreel_classifier_failure_threshold": "classifier.failure_threshold",
	"openai_api_key":                        "classifier.api_key",
	"openai_base_url":                       "classifier.base_url",

	"moodreel_nlp_weight":          "profile.nlp_weight",
	"moodreel_genre_weight":        "profile.genre_weight",
	"moodreel_profile_concurrency": "profile.concurrency",

	"tmdb_api_key":    "tmdb.api_key",
	"tmdb_read_token": "tmdb.read_token",
	"tmdb_rps":        "tmdb.requests_per_second",

	"moodreel_num_clusters":     "clustering.num_clusters",
	"moodreel_min_cluster_size": "clustering.min_cluster_size",
}

// envTransform maps an environment variable name to its config path, or ""
// to skip it.
func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Load builds the configuration: defaults, then the YAML file at path (or the
// first default path found), then environment variables. The result is
// validated.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: config file (optional unless explicitly named)
	if path == "" {
		path = findConfigFile()
	} else if !fileExists(path) {
		return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// Layer 3: environment
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first config file found, or "".
func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" && fileExists(p) {
		return p
	}
	for _, p := range DefaultPaths {
		if fileExists(p) {
			return p
		}
	}
	return ""
}
