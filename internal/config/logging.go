package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/rowpick/internal/logging"
)

const (
	logDirName  = "logs"
	logFileName = "rowpick.log"
)

// LoggingConfig is the logging section of config.yaml.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Validate rejects unknown formats. Unknown levels fall back to info at logger construction.
func (lc *LoggingConfig) Validate() error {
	switch lc.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", lc.Format)
	}
}

// ToLoggingConfig converts the config section into a logging.Config.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// DefaultLogFile returns HomeDir/logs/rowpick.log. The interactive list logs
// here when no file is configured, since the terminal belongs to the list.
func DefaultLogFile() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logDirName, logFileName), nil
}

// EnsureLogDir creates the directory for path if needed.
func EnsureLogDir(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
