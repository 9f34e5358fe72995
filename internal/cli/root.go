package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/rowpick/internal/config"
	"github.com/rshade/rowpick/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// session carries state from PersistentPreRunE to the subcommands.
type session struct {
	cfg       *config.Config
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the rowpick CLI.
// Running it without a subcommand mounts the list, like `rowpick run`.
func NewRootCmd(ver string) *cobra.Command {
	var (
		configPath string
		runOpts    runOptions
	)
	sess := &session{}

	cmd := &cobra.Command{
		Use:           "rowpick",
		Short:         "Selectable list for the terminal",
		Long:          "rowpick: show a list of rows, click one to select it",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultConfig()
			if skipsConfigLoad(cmd) {
				cfg.ApplyEnv()
			} else {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			sess.cfg = cfg

			result := setupLogging(cmd, cfg, wantsInteractive(cmd))
			sess.logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, sess.logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, sess, runOpts)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $ROWPICK_HOME/config.yaml or ~/.rowpick/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	addRunFlags(cmd, &runOpts)

	cmd.AddCommand(newRunCmd(sess), newValidateCmd(), newConfigCmd(), newVersionCmd())

	return cmd
}

const rootCmdExample = `  # Show the built-in ten rows and click to select
  rowpick

  # Show rows from a file
  rowpick run --items rows.yaml

  # Print the list once with row 2 selected
  rowpick run --plain --select 2

  # Check an items file for rows without text
  rowpick validate --items rows.json

  # Write the default configuration
  rowpick config init`
