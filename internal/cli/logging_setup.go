package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/rowpick/internal/config"
	"github.com/rshade/rowpick/internal/logging"
	"github.com/rshade/rowpick/internal/tui"
)

// wantsInteractive reports whether cmd will hand the terminal to the list.
// Commands without a --plain flag never do.
func wantsInteractive(cmd *cobra.Command) bool {
	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return false
	}
	return tui.DetectOutputMode(cmd.OutOrStdout(), plain) == tui.OutputModeInteractive
}

// setupLogging configures logging from config, environment and the --debug flag.
// While the list owns the terminal, events go to a file and never to stderr.
func setupLogging(cmd *cobra.Command, cfg *config.Config, interactive bool) logging.LogPathResult {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	lc := loggingCfg.ToLoggingConfig()
	lc.Output = cmd.ErrOrStderr()
	if interactive {
		lc.Output = io.Discard
		if lc.File == "" {
			if path, err := config.DefaultLogFile(); err == nil {
				lc.File = path
			}
		}
	}

	if err := config.EnsureLogDir(lc.File); err != nil {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), err.Error())
		lc.File = ""
	}

	result := logging.NewLoggerWithPath(lc)
	logger = logging.ComponentLogger(result.Logger, "cli")

	switch {
	case result.UsingFile && debug:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	case result.FallbackUsed:
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Bool("interactive", interactive).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
