package region

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the region settings read once at startup.
type Config struct {
	// Region is the target region identifier. Empty means not configured.
	Region string `env:"AWS_REGION"`

	// LocalEndpoint is used by the fallback Local location.
	// Default: "http://localhost:8000"
	LocalEndpoint string `env:"HELLO_LOCAL_ENDPOINT" envDefault:"http://localhost:8000"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse region env: %w", err)
	}
	return cfg, nil
}

// Resolver turns Config into a Location.
type Resolver struct {
	config Config
	logger *slog.Logger
}

// NewResolver creates a Resolver. A nil logger uses slog.Default().
func NewResolver(cfg Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{config: cfg, logger: logger}
}

// Resolve never fails. A missing or unparsable region falls back to the
// Local location.
func (r *Resolver) Resolve() Location {
	if r.config.Region == "" {
		loc := r.fallback()
		r.logger.Warn("region not configured, using local location",
			"endpoint", loc.Endpoint,
		)
		return loc
	}

	id, ok := Parse(r.config.Region)
	if !ok {
		loc := r.fallback()
		r.logger.Warn("unable to parse region, using local location",
			"region", r.config.Region,
			"endpoint", loc.Endpoint,
		)
		return loc
	}

	return WellKnown{Region: id}
}

func (r *Resolver) fallback() Local {
	if r.config.LocalEndpoint == "" {
		return Local{Endpoint: DefaultLocalEndpoint}
	}
	return Local{Endpoint: r.config.LocalEndpoint}
}
