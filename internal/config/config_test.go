package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "vagrant")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "lightbnb", cfg.Database.Name)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_LegacyVariables(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "lightbnb_test")
	t.Setenv("DB_PASS", "p@ss:word")
	t.Setenv("DB_SSL_MODE", "require")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "lightbnb_test", cfg.Database.Name)
	assert.Equal(t, "p@ss:word", cfg.Database.Password)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}

func TestLoadConfig_PrefixedVariables(t *testing.T) {
	setRequired(t)
	t.Setenv("LIGHTBNB_DATABASE__HOST", "db.internal")
	t.Setenv("LIGHTBNB_DATABASE__MAX_CONNS", "20")
	t.Setenv("LIGHTBNB_DATABASE__MAX_CONN_IDLE_TIME", "5m")
	t.Setenv("LIGHTBNB_PRIMARY__ENV", "production")
	t.Setenv("LIGHTBNB_AUTH__BCRYPT_COST", "12")
	t.Setenv("LIGHTBNB_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("LIGHTBNB_OBSERVABILITY__LOGGING__FORMAT", "console")
	t.Setenv("LIGHTBNB_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host, "prefixed variables win over DB_*")
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.MaxConnIdleTime)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "console", cfg.Observability.Logging.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_MissingHost(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "vagrant")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Host")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"DB_SSL_MODE":                            "sometimes",
		"LIGHTBNB_AUTH__BCRYPT_COST":             "2",
		"LIGHTBNB_DATABASE__MIN_CONNS":           "50",
		"LIGHTBNB_OBSERVABILITY__LOGGING__LEVEL": "verbose",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}
