package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/rowpick/internal/cli"
	"github.com/rshade/rowpick/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.NotEmpty(t, root.Use)
	})
}

func TestRun(t *testing.T) {
	t.Setenv("ROWPICK_HOME", t.TempDir())

	t.Run("version subcommand", func(t *testing.T) {
		require.NoError(t, run([]string{"version"}))
	})

	t.Run("unknown subcommand fails", func(t *testing.T) {
		require.Error(t, run([]string{"nope"}))
	})

	t.Run("missing items file fails", func(t *testing.T) {
		require.Error(t, run([]string{"validate", "--items", "/does/not/exist.yaml"}))
	})
}
