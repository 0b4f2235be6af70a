package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
database:
  url: "postgres://localhost/school"
server:
  port: ":8080"
jwt:
  secret: "s3cret"
  issuer: "school-backend"
  audience: "school-clients"
  token_lifetime_minutes: 45
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/school", cfg.Database.URL)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "school-backend", cfg.JWT.Issuer)
	assert.Equal(t, 45*time.Minute, cfg.TokenLifetime())
}

func TestLoadConfig_DefaultLifetime(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
database:
  url: "postgres://localhost/school"
jwt:
  secret: "s3cret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.TokenLifetime())
}

// An absent signing secret must be fatal at startup, never discovered later.
func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
database:
  url: "postgres://localhost/school"
jwt:
  issuer: "school-backend"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
