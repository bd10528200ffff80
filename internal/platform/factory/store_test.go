package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlink/devlink/internal/config"
)

func TestNewStoreMemoryDriver(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.StoreDriver = "memory"

	s, err := NewStore(cfg)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNewStoreUnknownDriver(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.StoreDriver = "cassandra"

	_, err := NewStore(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown STORE_DRIVER")
}
