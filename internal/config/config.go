package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/search"
)

// Config aggregates application configuration values.
type Config struct {
	Query   QueryConfig
	Logging LoggingConfig
}

// QueryConfig holds defaults for graph queries; CLI flags override them.
type QueryConfig struct {
	Algorithm   search.Algorithm
	Workers     int
	Subfamilies int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultWorkers       = 4
	defaultSubfamilies   = 2
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:         valueOrDefault("KINSHIP_LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("KINSHIP_LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("KINSHIP_LOG_INCLUDE_CALLER", false),
		},
	}

	alg, err := search.ParseAlgorithm(os.Getenv("KINSHIP_ALGORITHM"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid KINSHIP_ALGORITHM: %w", err)
	}
	cfg.Query.Algorithm = alg

	workers, err := parsePositive("KINSHIP_WORKERS", defaultWorkers)
	if err != nil {
		return Config{}, err
	}
	cfg.Query.Workers = workers

	k, err := parsePositive("KINSHIP_SUBFAMILIES", defaultSubfamilies)
	if err != nil {
		return Config{}, err
	}
	cfg.Query.Subfamilies = k

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parsePositive(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if n < 1 {
			return 0, fmt.Errorf("%s must be positive, got %d", key, n)
		}
		return n, nil
	}
	return fallback, nil
}
