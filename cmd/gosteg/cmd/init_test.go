package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinab297/gosteg/pkg/config"
)

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	t.Run("creates config with generated key", func(t *testing.T) {
		cfg, err := initConfig(configPath, filepath.Join(tmpDir, "journal"), false)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.NotEqual(t, "auto", cfg.Security.APIKey)
		assert.FileExists(t, configPath)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		cfg, err := initConfig(configPath, "", false)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("force overwrites with a new key", func(t *testing.T) {
		before, err := config.LoadConfig(configPath)
		require.NoError(t, err)

		cfg, err := initConfig(configPath, "", true)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.NotEqual(t, before.Security.APIKey, cfg.Security.APIKey)
	})
}

func TestLoadServeConfig(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		want := config.DefaultConfig()
		want.Port = 9999
		require.NoError(t, config.SaveConfig(want, configPath))

		cfg, err := loadServeConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, 9999, cfg.Port)
	})

	t.Run("missing explicit path errors", func(t *testing.T) {
		_, err := loadServeConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
