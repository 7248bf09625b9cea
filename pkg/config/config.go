// Package config loads tessera's configuration from YAML files and the
// environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/logging"
)

// Config represents the complete tessera configuration
type Config struct {
	Terminal  TerminalConfig  `yaml:"terminal"`
	Layout    LayoutConfig    `yaml:"layout"`
	Render    RenderConfig    `yaml:"render"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TerminalConfig controls how the terminal is entered and restored.
type TerminalConfig struct {
	AlternateScreen bool `yaml:"alternate_screen"`
	HideCursor      bool `yaml:"hide_cursor"`
}

// LayoutConfig tunes the layout solver.
type LayoutConfig struct {
	// CacheCapacity bounds the shared split cache. Zero disables caching.
	CacheCapacity int `yaml:"cache_capacity"`
}

// RenderConfig selects the output backend and color depth.
type RenderConfig struct {
	Backend      string `yaml:"backend"`
	ColorProfile string `yaml:"color_profile"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// TelemetryConfig toggles metrics and tracing.
type TelemetryConfig struct {
	Metrics   bool   `yaml:"metrics"`
	Tracing   bool   `yaml:"tracing"`
	TracePath string `yaml:"trace_path"`
}

// Backend names
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
	BackendSim   = "sim"
)

// Color profile names
const (
	ProfileAuto      = "auto"
	ProfileTrueColor = "truecolor"
	ProfileANSI256   = "ansi256"
	ProfileANSI      = "ansi"
	ProfileASCII     = "ascii"
)

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Terminal: TerminalConfig{
			AlternateScreen: true,
			HideCursor:      true,
		},
		Layout: LayoutConfig{
			CacheCapacity: 64,
		},
		Render: RenderConfig{
			Backend:      BackendTcell,
			ColorProfile: ProfileAuto,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatJSON,
		},
	}
}

// Load loads configuration from default locations with proper precedence:
// defaults, then ~/.tessera/config.yaml, then ./.tessera/config.yaml, then
// TESSERA_* environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		userConfigPath := filepath.Join(home, ".tessera", "config.yaml")
		if err := loadAndMerge(cfg, userConfigPath); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	projectConfigPath := filepath.Join(".", ".tessera", "config.yaml")
	if err := loadAndMerge(cfg, projectConfigPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadAndMerge(cfg, path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "config file not found").
				WithContext("path", path)
		}
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) {
	if val, ok := envBool("TESSERA_ALT_SCREEN"); ok {
		cfg.Terminal.AlternateScreen = val
	}
	if val, ok := envBool("TESSERA_HIDE_CURSOR"); ok {
		cfg.Terminal.HideCursor = val
	}
	if v := os.Getenv("TESSERA_BACKEND"); v != "" {
		cfg.Render.Backend = v
	}
	if v := os.Getenv("TESSERA_COLOR_PROFILE"); v != "" {
		cfg.Render.ColorProfile = v
	}
	if v := os.Getenv("TESSERA_LAYOUT_CACHE"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Layout.CacheCapacity = n
		}
	}
	if v := os.Getenv("TESSERA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TESSERA_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TESSERA_LOG_PATH"); v != "" {
		cfg.Logging.Path = v
	}
	if val, ok := envBool("TESSERA_METRICS"); ok {
		cfg.Telemetry.Metrics = val
	}
	if val, ok := envBool("TESSERA_TRACING"); ok {
		cfg.Telemetry.Tracing = val
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Render.Backend) {
	case BackendTcell, BackendANSI, BackendSim:
	default:
		return invalid("render.backend", c.Render.Backend, "backend must be one of tcell, ansi, sim")
	}

	switch strings.ToLower(c.Render.ColorProfile) {
	case ProfileAuto, ProfileTrueColor, ProfileANSI256, ProfileANSI, ProfileASCII:
	default:
		return invalid("render.color_profile", c.Render.ColorProfile,
			"color profile must be one of auto, truecolor, ansi256, ansi, ascii")
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return invalid("logging.level", c.Logging.Level, "log level must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatJSON, logging.FormatText:
	default:
		return invalid("logging.format", c.Logging.Format, "log format must be json or text")
	}

	if c.Layout.CacheCapacity < 0 {
		return invalid("layout.cache_capacity", c.Layout.CacheCapacity, "cache capacity must be zero or positive")
	}

	return nil
}

func invalid(field string, value any, msg string) error {
	return errors.New(errors.ErrCodeConfigInvalid, msg).
		WithContext("field", field).
		WithContext("value", value)
}

// Profile resolves the configured color profile. "auto" inspects the
// environment and stdout, so callers should resolve it once and pass the
// result along.
func (r RenderConfig) Profile() termenv.Profile {
	switch strings.ToLower(r.ColorProfile) {
	case ProfileTrueColor:
		return termenv.TrueColor
	case ProfileANSI256:
		return termenv.ANSI256
	case ProfileANSI:
		return termenv.ANSI
	case ProfileASCII:
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Logger returns the logging settings for the given component.
func (l LoggingConfig) Logger(component string) logging.Config {
	return logging.Config{
		Level:     l.Level,
		Format:    strings.ToLower(l.Format),
		Path:      expandHomeDir(l.Path),
		Component: component,
	}
}
