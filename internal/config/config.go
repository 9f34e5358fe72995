// Package config loads rowpick settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by rowpick.
const (
	EnvHome      = "ROWPICK_HOME"
	EnvLogLevel  = "ROWPICK_LOG_LEVEL"
	EnvLogFormat = "ROWPICK_LOG_FORMAT"
)

const (
	// CurrentVersion is written by DefaultConfig and accepted by Load.
	CurrentVersion = "1.0.0"

	// versionConstraint is the range of config schema versions this build reads.
	versionConstraint = "^1"

	configFileName = "config.yaml"
	homeDirName    = ".rowpick"
)

// Sentinel errors for configuration loading.
var (
	// ErrUnsupportedConfigVersion indicates the file's version is outside versionConstraint.
	ErrUnsupportedConfigVersion = errors.New("unsupported config version")

	// ErrInvalidColor indicates a color that is neither #RRGGBB nor an ANSI index 0-255.
	ErrInvalidColor = errors.New("invalid color")
)

// Config is the root of config.yaml.
type Config struct {
	Version string        `yaml:"version"`
	Colors  ColorsConfig  `yaml:"colors"`
	List    ListConfig    `yaml:"list"`
	Logging LoggingConfig `yaml:"logging"`
}

// ColorsConfig holds the row fills and foreground.
type ColorsConfig struct {
	Selected   string `yaml:"selected"`
	Unselected string `yaml:"unselected"`
	Text       string `yaml:"text"`
}

// ListConfig controls the list chrome.
type ListConfig struct {
	ShowHeader bool   `yaml:"show_header"`
	Title      string `yaml:"title"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Colors: ColorsConfig{
			Selected:   "#2E7D32",
			Unselected: "#37474F",
			Text:       "#FFFFFF",
		},
		List: ListConfig{
			ShowHeader: true,
			Title:      "Rows",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// HomeDir returns $ROWPICK_HOME, or ~/.rowpick when unset.
func HomeDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, homeDirName), nil
}

// DefaultPath returns the location of config.yaml under HomeDir.
func DefaultPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads path on top of DefaultConfig, applies environment overrides and
// validates the result. An empty path loads DefaultPath if it exists.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.ApplyEnv()

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides logging settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the schema version and all colors.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}

	colors := map[string]string{
		"colors.selected":   c.Colors.Selected,
		"colors.unselected": c.Colors.Unselected,
		"colors.text":       c.Colors.Text,
	}
	for field, value := range colors {
		if err := ValidateColor(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	return c.Logging.Validate()
}

// checkVersion accepts an empty version as CurrentVersion.
func checkVersion(v string) error {
	if v == "" {
		return nil
	}

	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedConfigVersion, v, err)
	}

	constraint, err := semver.NewConstraint(versionConstraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(parsed) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedConfigVersion, v, versionConstraint)
	}
	return nil
}

// Save writes c to path as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
