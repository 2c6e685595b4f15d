package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvEmail, "user@example.com")
	t.Setenv(EnvPassword, "hunter2")

	creds, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", creds.Email)
	assert.Equal(t, "hunter2", creds.Password)
}

func TestFromEnv_MissingEmail(t *testing.T) {
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "hunter2")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvEmail)
}

func TestFromEnv_MissingPassword(t *testing.T) {
	t.Setenv(EnvEmail, "user@example.com")
	t.Setenv(EnvPassword, "")

	_, err := FromEnv()
	require.Error(t, err)
}
