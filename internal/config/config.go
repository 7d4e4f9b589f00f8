package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/holdclock/internal/validate"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "~/.config/holdclock/config.yaml"

var (
	// ErrInvalidConfig wraps validation failures of a loaded configuration.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrConfigExists is returned by WriteDefault when it would overwrite a file.
	ErrConfigExists = errors.New("config file already exists")
)

// Config is the on-disk configuration.
type Config struct {
	Timer  TimerConfig    `yaml:"timer"`
	Items  []ItemConfig   `yaml:"items" validate:"dive"`
	Legend []LegendConfig `yaml:"legend" validate:"dive"`
}

// TimerConfig holds the countdown start and the release detection window.
// Both must be whole multiples of the 10ms tick.
type TimerConfig struct {
	Countdown     time.Duration `yaml:"countdown" validate:"gte=10ms,duration_multiple=10ms"`
	ReleaseWindow time.Duration `yaml:"release_window" validate:"gte=10ms,duration_multiple=10ms"`
}

// ItemConfig is one entry of the list panel.
type ItemConfig struct {
	Label       string `yaml:"label" validate:"required"`
	DetailLines int    `yaml:"detail_lines" validate:"gte=0,lte=8"`
}

// LegendConfig maps a legend label to its category.
type LegendConfig struct {
	Label    string `yaml:"label" validate:"required"`
	Category string `yaml:"category" validate:"required,max=9"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timer: TimerConfig{
			Countdown:     15 * time.Second,
			ReleaseWindow: 600 * time.Millisecond,
		},
		Items: []ItemConfig{
			{Label: "Item0", DetailLines: 1},
			{Label: "Item1", DetailLines: 2},
			{Label: "Item2", DetailLines: 1},
			{Label: "Item3", DetailLines: 3},
			{Label: "Item4", DetailLines: 1},
			{Label: "Item5", DetailLines: 4},
			{Label: "Item6", DetailLines: 1},
		},
		Legend: defaultLegend(),
	}
}

func defaultLegend() []LegendConfig {
	levels := []string{
		"INFO", "CRITICAL", "ERROR", "INFO", "INFO", "WARNING", "INFO", "INFO", "INFO", "CRITICAL",
		"INFO", "INFO", "INFO", "INFO", "INFO", "ERROR", "ERROR", "INFO", "INFO", "WARNING",
		"INFO", "INFO", "WARNING", "INFO", "INFO",
	}
	legend := make([]LegendConfig, 0, len(levels)+1)
	legend = append(legend, LegendConfig{Label: "Quit", Category: "q"})
	for i, lvl := range levels {
		legend = append(legend, LegendConfig{Label: fmt.Sprintf("Event%d", i+2), Category: lvl})
	}
	return legend
}

// Load reads the configuration at path on top of the defaults. A missing file
// at DefaultPath yields the defaults; a missing explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	expanded, err := ExpandTilde(path)
	if err != nil {
		return Config{}, err
	}

	logrus.Debug("Loading config file from: ", expanded)
	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			logrus.Debug("No config file found; using defaults")
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", expanded, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteDefault writes the default configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) (string, error) {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return "", err
	}
	if !force {
		if _, err := os.Stat(expanded); err == nil {
			return expanded, fmt.Errorf("%w: %s", ErrConfigExists, expanded)
		}
	}
	data, err := Default().Marshal()
	if err != nil {
		return "", err
	}
	logrus.Debug("Writing config file to: ", expanded)
	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return "", err
	}
	return expanded, os.WriteFile(expanded, data, 0o600)
}

// ExpandTilde expands a leading tilde to the user's home directory.
func ExpandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
