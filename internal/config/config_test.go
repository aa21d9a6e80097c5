package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultConfigVersion, cfg.Version)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
version: "1.2.0"
output:
  default_format: json
logging:
  level: debug
  format: json
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.DefaultFormat)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "output:\n  default_format: json\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.DefaultFormat)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("explicit missing path is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "reading config")
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "output: [broken")
		_, err := Load(path)
		assert.ErrorContains(t, err, "parsing config")
	})

	t.Run("incompatible version is an error", func(t *testing.T) {
		path := writeConfig(t, `version: "2.0.0"`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "outside supported range")
	})

	t.Run("garbage version is an error", func(t *testing.T) {
		path := writeConfig(t, `version: "not-a-version"`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "invalid config version")
	})
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, checkVersion(""))
	assert.NoError(t, checkVersion("1.0.0"))
	assert.NoError(t, checkVersion("1.9.3"))
	assert.Error(t, checkVersion("0.9.0"))
	assert.Error(t, checkVersion("2.0.0"))
}
