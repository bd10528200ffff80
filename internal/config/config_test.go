package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DEVLINK_JWT_SECRET", "s3cret")
	t.Setenv("DEVLINK_STORE_DRIVER", "memory")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "https://api.github.com", cfg.GithubAPIURL)
	assert.Equal(t, 30, cfg.AuthRatePerMinute)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
}

func TestNew_RequiresJWTSecret(t *testing.T) {
	t.Setenv("DEVLINK_JWT_SECRET", "")
	t.Setenv("DEVLINK_STORE_DRIVER", "memory")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEVLINK_JWT_SECRET")
}

func TestNew_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("DEVLINK_JWT_SECRET", "s3cret")
	t.Setenv("DEVLINK_STORE_DRIVER", "postgres")
	t.Setenv("DEVLINK_POSTGRES_DSN", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEVLINK_POSTGRES_DSN")
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("DEVLINK_JWT_SECRET", "s3cret")
	t.Setenv("DEVLINK_STORE_DRIVER", "memory")
	t.Setenv("DEVLINK_HTTP_PORT", "9090")
	t.Setenv("DEVLINK_TOKEN_TTL", "15m")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	cfg := NewForTesting()
	cfg.StoreDriver = "dynamo"
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveTTL(t *testing.T) {
	cfg := NewForTesting()
	cfg.TokenTTL = 0
	require.Error(t, cfg.Validate())
}
