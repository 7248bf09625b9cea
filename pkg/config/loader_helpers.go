package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/tessera/pkg/errors"
)

// loadAndMerge loads a YAML file and merges it into the config. A missing
// file is reported with an error satisfying os.IsNotExist.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return errors.Wrap(err, errors.ErrCodeConfigLoad, "reading config file").
			WithContext("path", path)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parsing YAML").
			WithContext("path", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parsing YAML").
			WithContext("path", path)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base. Strings win when non-empty;
// booleans and numbers win only when the YAML sets them explicitly.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if fieldSet(raw, "terminal", "alternate_screen") {
		base.Terminal.AlternateScreen = override.Terminal.AlternateScreen
	}
	if fieldSet(raw, "terminal", "hide_cursor") {
		base.Terminal.HideCursor = override.Terminal.HideCursor
	}

	if fieldSet(raw, "layout", "cache_capacity") {
		base.Layout.CacheCapacity = override.Layout.CacheCapacity
	}

	if override.Render.Backend != "" {
		base.Render.Backend = override.Render.Backend
	}
	if override.Render.ColorProfile != "" {
		base.Render.ColorProfile = override.Render.ColorProfile
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}
	if override.Logging.Path != "" {
		base.Logging.Path = override.Logging.Path
	}

	if fieldSet(raw, "telemetry", "metrics") {
		base.Telemetry.Metrics = override.Telemetry.Metrics
	}
	if fieldSet(raw, "telemetry", "tracing") {
		base.Telemetry.Tracing = override.Telemetry.Tracing
	}
	if override.Telemetry.TracePath != "" {
		base.Telemetry.TracePath = override.Telemetry.TracePath
	}
}

// fieldSet reports whether the YAML document sets the value at path,
// distinguishing an explicit false or 0 from an absent key.
func fieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
