//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
static_dir: "./public"
database:
  type: "sqlite"
  dsn: "farmersdata.db"
logger:
  log_level: "debug"
  log_type: "console"
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "./public", cfg.StaticDir)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "farmersdata.db", cfg.Database.DSN)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  type: "sqlite"
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

func TestInitializeRestConfig_PortEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
port: "8080"
database:
  type: "sqlite"
`)

	t.Setenv("PORT", "3000")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestInitializeRestConfig_InvalidSettings(t *testing.T) {
	path := writeConfigFile(t, `
port: "8080"
database:
  type: "mysql"
  dsn: "whatever"
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
}
