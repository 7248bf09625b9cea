package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"

	"github.com/odvcencio/tessera/pkg/config"
	"github.com/odvcencio/tessera/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TESSERA_ALT_SCREEN", "TESSERA_HIDE_CURSOR", "TESSERA_BACKEND",
		"TESSERA_COLOR_PROFILE", "TESSERA_LAYOUT_CACHE", "TESSERA_LOG_LEVEL",
		"TESSERA_LOG_FORMAT", "TESSERA_LOG_PATH", "TESSERA_METRICS", "TESSERA_TRACING",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	cfgDir := filepath.Join(dir, ".tessera")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	path := filepath.Join(cfgDir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if !cfg.Terminal.AlternateScreen || !cfg.Terminal.HideCursor {
		t.Fatalf("terminal defaults should enable alt screen and hidden cursor: %+v", cfg.Terminal)
	}
	if cfg.Layout.CacheCapacity != 64 {
		t.Fatalf("expected cache capacity 64, got %d", cfg.Layout.CacheCapacity)
	}
	if cfg.Render.Backend != config.BackendTcell || cfg.Render.ColorProfile != config.ProfileAuto {
		t.Fatalf("unexpected render defaults: %+v", cfg.Render)
	}
	if cfg.Telemetry.Metrics || cfg.Telemetry.Tracing {
		t.Fatalf("telemetry should be off by default: %+v", cfg.Telemetry)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadHierarchy(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, `
render:
  backend: ansi
  color_profile: ansi256
logging:
  level: debug
`)
	writeConfig(t, project, `
render:
  backend: sim
terminal:
  alternate_screen: false
`)
	t.Chdir(project)
	t.Setenv("TESSERA_LOG_LEVEL", "warn")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load returned error: %v", err)
	}

	if cfg.Render.Backend != config.BackendSim {
		t.Fatalf("expected project backend override, got %s", cfg.Render.Backend)
	}
	if cfg.Render.ColorProfile != config.ProfileANSI256 {
		t.Fatalf("expected user color profile, got %s", cfg.Render.ColorProfile)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env log level override, got %s", cfg.Logging.Level)
	}
	if cfg.Terminal.AlternateScreen {
		t.Fatalf("expected explicit false to disable the alternate screen")
	}
	if !cfg.Terminal.HideCursor {
		t.Fatalf("hide_cursor default should survive a partial override")
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load returned error: %v", err)
	}
	if cfg.Render.Backend != config.BackendTcell {
		t.Fatalf("expected defaults, got %+v", cfg.Render)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	t.Setenv("TESSERA_ALT_SCREEN", "off")
	t.Setenv("TESSERA_HIDE_CURSOR", "no")
	t.Setenv("TESSERA_BACKEND", "ansi")
	t.Setenv("TESSERA_COLOR_PROFILE", "ascii")
	t.Setenv("TESSERA_LAYOUT_CACHE", "0")
	t.Setenv("TESSERA_LOG_FORMAT", "text")
	t.Setenv("TESSERA_METRICS", "true")
	t.Setenv("TESSERA_TRACING", "1")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load returned error: %v", err)
	}

	if cfg.Terminal.AlternateScreen || cfg.Terminal.HideCursor {
		t.Fatalf("expected terminal flags disabled: %+v", cfg.Terminal)
	}
	if cfg.Render.Backend != "ansi" || cfg.Render.ColorProfile != "ascii" {
		t.Fatalf("unexpected render config: %+v", cfg.Render)
	}
	if cfg.Layout.CacheCapacity != 0 {
		t.Fatalf("expected cache disabled, got %d", cfg.Layout.CacheCapacity)
	}
	if cfg.Logging.Format != "text" {
		t.Fatalf("expected text format, got %s", cfg.Logging.Format)
	}
	if !cfg.Telemetry.Metrics || !cfg.Telemetry.Tracing {
		t.Fatalf("expected telemetry enabled: %+v", cfg.Telemetry)
	}
}

func TestLoadFromPath(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), `
layout:
  cache_capacity: 8
telemetry:
  metrics: true
`)

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath returned error: %v", err)
	}
	if cfg.Layout.CacheCapacity != 8 || !cfg.Telemetry.Metrics {
		t.Fatalf("file values not applied: %+v %+v", cfg.Layout, cfg.Telemetry)
	}

	_, err = config.LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.IsCode(err, errors.ErrCodeConfigLoad) {
		t.Fatalf("expected CONFIG_LOAD for a missing file, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
		code errors.ErrorCode
	}{
		{"malformed yaml", "render: [unclosed", errors.ErrCodeConfigParse},
		{"unknown backend", "render:\n  backend: curses\n", errors.ErrCodeConfigInvalid},
		{"unknown profile", "render:\n  color_profile: sepia\n", errors.ErrCodeConfigInvalid},
		{"unknown level", "logging:\n  level: loud\n", errors.ErrCodeConfigInvalid},
		{"unknown format", "logging:\n  format: xml\n", errors.ErrCodeConfigInvalid},
		{"negative cache", "layout:\n  cache_capacity: -1\n", errors.ErrCodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := config.LoadFromPath(path)
			if !errors.IsCode(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestRenderProfile(t *testing.T) {
	tests := map[string]termenv.Profile{
		"truecolor": termenv.TrueColor,
		"ANSI256":   termenv.ANSI256,
		"ansi":      termenv.ANSI,
		"ascii":     termenv.Ascii,
	}
	for name, want := range tests {
		if got := (config.RenderConfig{ColorProfile: name}).Profile(); got != want {
			t.Fatalf("Profile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLoggingConfigExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := config.LoggingConfig{Level: "info", Format: "JSON", Path: "~/logs/tessera.log"}.Logger("demo")
	if got.Path != filepath.Join(home, "logs", "tessera.log") {
		t.Fatalf("expected expanded path, got %s", got.Path)
	}
	if got.Component != "demo" || got.Format != "json" {
		t.Fatalf("unexpected logging config: %+v", got)
	}
}
