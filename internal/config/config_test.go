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

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing default file uses defaults", func(t *testing.T) {
		t.Setenv(EnvHome, t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("default file under home is read", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvHome, home)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
			[]byte("list:\n  title: Mine\n"), 0o600))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Mine", cfg.List.Title)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "colors:\n  selected: \"#FF0000\"\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "#FF0000", cfg.Colors.Selected)
		assert.Equal(t, DefaultConfig().Colors.Unselected, cfg.Colors.Unselected)
		assert.True(t, cfg.List.ShowHeader)
	})

	t.Run("ansi colors accepted", func(t *testing.T) {
		path := writeConfig(t, "colors:\n  selected: \"34\"\n  unselected: \"240\"\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "34", cfg.Colors.Selected)
	})

	t.Run("invalid color", func(t *testing.T) {
		path := writeConfig(t, "colors:\n  selected: green\n")

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidColor)
		assert.Contains(t, err.Error(), "colors.selected")
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeConfig(t, "version: \"2.0.0\"\n")

		_, err := Load(path)
		require.ErrorIs(t, err, ErrUnsupportedConfigVersion)
	})

	t.Run("unparseable version", func(t *testing.T) {
		path := writeConfig(t, "version: banana\n")

		_, err := Load(path)
		require.ErrorIs(t, err, ErrUnsupportedConfigVersion)
	})

	t.Run("compatible minor version", func(t *testing.T) {
		path := writeConfig(t, "version: \"1.4.0\"\n")

		_, err := Load(path)
		require.NoError(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "colors: [\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})

	t.Run("env overrides logging", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		path := writeConfig(t, "logging:\n  level: warn\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("unknown log format", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  format: xml\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logging.format")
	})
}

func TestValidateColor(t *testing.T) {
	valid := []string{"#000000", "#abcdef", "#ABCDEF", "0", "255"}
	for _, c := range valid {
		assert.NoError(t, ValidateColor(c), c)
	}

	invalid := []string{"", "#abc", "#GGGGGG", "256", "-1", "red"}
	for _, c := range invalid {
		assert.ErrorIs(t, ValidateColor(c), ErrInvalidColor, c)
	}
}

func TestHomeDir(t *testing.T) {
	t.Run("env wins", func(t *testing.T) {
		t.Setenv(EnvHome, "/custom/home")

		dir, err := HomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/home", dir)

		path, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/custom/home", "config.yaml"), path)
	})

	t.Run("falls back to user home", func(t *testing.T) {
		t.Setenv(EnvHome, "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		dir, err := HomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".rowpick"), dir)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.List.Title = "Saved"
	cfg.Colors.Selected = "#123456"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
