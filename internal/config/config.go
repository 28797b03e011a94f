// Package config reads the shop service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Config holds every setting the service reads at startup.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`

	Storage  StorageConfig
	DynamoDB DynamoDBConfig
}

// StorageConfig selects and configures the backing store driver.
type StorageConfig struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/oficina.db"`
	DatabaseURI string `env:"DATABASE_URI"`
}

// DynamoDBConfig is local-friendly: DynamoDB Local does not validate
// credentials but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	StateTable      string `env:"STATE_TABLE" envDefault:"oficina_state"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Storage.Driver {
	case StorageMemory, StorageSQLite, StorageDynamoDB:
	case StoragePostgres:
		if cfg.Storage.DatabaseURI == "" {
			return nil, fmt.Errorf("storage driver %q requires DATABASE_URI", cfg.Storage.Driver)
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.HTTPPort <= 0 {
		return nil, fmt.Errorf("invalid HTTP_PORT %d", cfg.HTTPPort)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
