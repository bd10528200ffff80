package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotContains(t, hash, "hunter22")

	assert.True(t, CheckPassword("hunter22", hash))
	assert.False(t, CheckPassword("hunter23", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
