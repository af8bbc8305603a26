package store

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultTableName is the table events are written to.
const DefaultTableName = "hello_events"

// Config holds configuration for the Store.
type Config struct {
	// TableName is the DynamoDB table holding events. Its hash key must be
	// "email" (S).
	// Default: "hello_events"
	TableName string `env:"HELLO_TABLE_NAME" envDefault:"hello_events"`
}

// DefaultConfig returns the production table settings.
func DefaultConfig() Config {
	return Config{
		TableName: DefaultTableName,
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse store env: %w", err)
	}
	cfg.validate()
	return cfg, nil
}

// validate fills in defaults for empty values.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = DefaultTableName
	}
}
