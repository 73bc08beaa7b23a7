// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file when present), loads them into structured Go types, and
// validates that required values are present so they can be
// reused across the application runtime.
//
// Sources, later wins:
//   - DefaultConfig()
//   - DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASS, DB_SSL_MODE
//   - LIGHTBNB_ prefixed variables, "__" separating nesting levels,
//     e.g. LIGHTBNB_DATABASE__MAX_CONNS -> database.max_conns
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// the process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LIGHTBNB_"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary             `koanf:"primary" validate:"required"`
	Database      DatabaseConfig      `koanf:"database" validate:"required"`
	Auth          AuthConfig          `koanf:"auth" validate:"required"`
	Observability ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
// "local" turns on SQL statement logging.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required,min=1,max=65535"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns        int32         `koanf:"max_conns" validate:"min=1"`
	MinConns        int32         `koanf:"min_conns" validate:"min=0,ltefield=MaxConns"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime" validate:"min=0"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time" validate:"min=0"`
}

// AuthConfig controls password hashing.
type AuthConfig struct {
	BcryptCost int `koanf:"bcrypt_cost" validate:"min=4,max=31"`
}

// DefaultConfig returns the values used for anything the environment leaves unset.
// Host and user have no default.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Database: DatabaseConfig{
			Port:            5432,
			Name:            "lightbnb",
			SSLMode:         "disable",
			MaxConns:        10,
			MinConns:        0,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
		},
		Auth:          AuthConfig{BcryptCost: 10},
		Observability: *DefaultObservabilityConfig(),
	}
}

// legacyKeys maps the plain DB_* variables onto config keys.
var legacyKeys = map[string]string{
	"DB_HOST":     "database.host",
	"DB_PORT":     "database.port",
	"DB_NAME":     "database.name",
	"DB_USER":     "database.user",
	"DB_PASS":     "database.password",
	"DB_SSL_MODE": "database.ssl_mode",
}

// LoadConfig loads configuration from environment variables, unmarshals it over
// DefaultConfig, validates it and returns the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("DB_", ".", func(s string) string {
		return legacyKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load DB_ env variables: %w", err)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s env variables: %w", envPrefix, err)
	}

	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// Environment always follows primary.env.
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
