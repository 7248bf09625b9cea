package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/tessera/pkg/config"
	"github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/logging"
	"github.com/odvcencio/tessera/pkg/telemetry"
	"github.com/odvcencio/tessera/pkg/ui/backend/ansi"
	"github.com/odvcencio/tessera/pkg/ui/backend/sim"
	"github.com/odvcencio/tessera/pkg/ui/event"
	"github.com/odvcencio/tessera/pkg/ui/layout"
	"github.com/odvcencio/tessera/pkg/ui/terminal"
	"github.com/odvcencio/tessera/pkg/ui/theme"
)

// isolate keeps the test away from the user's config and environment.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		"TESSERA_ALT_SCREEN", "TESSERA_HIDE_CURSOR", "TESSERA_BACKEND",
		"TESSERA_COLOR_PROFILE", "TESSERA_LAYOUT_CACHE", "TESSERA_LOG_LEVEL",
		"TESSERA_LOG_FORMAT", "TESSERA_LOG_PATH", "TESSERA_METRICS", "TESSERA_TRACING",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{"defaults", nil, options{frames: 120, fps: 10}, false},
		{"overrides", []string{"-backend", "sim", "-frames", "3", "-fps", "0", "-metrics-addr", ":9100"},
			options{backend: "sim", frames: 3, metricsAddr: ":9100"}, false},
		{"negative frames", []string{"-frames", "-1"}, options{}, true},
		{"negative fps", []string{"-fps", "-2"}, options{}, true},
		{"stray args", []string{"extra"}, options{}, true},
		{"unknown flag", []string{"-nope"}, options{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptions(tt.args, io.Discard)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, exitUsage, exitCodeForError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, exitOK, exitCodeForError(nil))
	assert.Equal(t, exitConfig, exitCodeForError(errors.New(errors.ErrCodeConfigParse, "bad yaml")))
	assert.Equal(t, exitBackend, exitCodeForError(errors.New(errors.ErrCodeBackendIO, "write failed")))
	assert.Equal(t, exitFailure, exitCodeForError(io.EOF))
}

func TestNewBackend(t *testing.T) {
	b, err := newBackend("SIM", termenv.TrueColor)
	require.NoError(t, err)
	assert.IsType(t, &sim.Backend{}, b)

	b, err = newBackend(config.BackendANSI, termenv.ANSI256)
	require.NoError(t, err)
	assert.IsType(t, &ansi.Backend{}, b)

	_, err = newBackend("bogus", termenv.TrueColor)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBackendUnsupported))
}

func TestRun_SimBackendPrintsFinalScreen(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	err := run(context.Background(), options{backend: "sim", frames: 3}, &out)
	require.NoError(t, err)

	screen := out.String()
	assert.Contains(t, screen, "tessera")
	assert.Contains(t, screen, "frame 2")
	assert.Contains(t, screen, "Constraints")
	assert.Contains(t, screen, "Ratio(1, 3)")
	assert.Contains(t, screen, "100%")
}

func TestRun_CancelledContextStopsCleanly(t *testing.T) {
	isolate(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := run(ctx, options{backend: "sim", frames: 0, fps: 30}, &out)
	assert.NoError(t, err)
}

func TestRun_InvalidBackendOverride(t *testing.T) {
	isolate(t)

	err := run(context.Background(), options{backend: "gpu", frames: 1}, io.Discard)
	require.Error(t, err)
	assert.Equal(t, exitConfig, exitCodeForError(err))
}

func TestRun_MissingConfigFile(t *testing.T) {
	dir := isolate(t)

	err := run(context.Background(), options{configPath: filepath.Join(dir, "nope.yaml"), frames: 1}, io.Discard)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigLoad))
}

func TestRun_TelemetryAndLogging(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "logs", "demo.log")
	tracePath := filepath.Join(dir, "trace.json")

	cfgPath := filepath.Join(dir, "demo.yaml")
	body := strings.Join([]string{
		"render:",
		"  backend: sim",
		"logging:",
		"  level: debug",
		"  path: " + logPath,
		"telemetry:",
		"  metrics: true",
		"  tracing: true",
		"  trace_path: " + tracePath,
	}, "\n")
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	err := run(context.Background(), options{configPath: cfgPath, frames: 2}, io.Discard)
	require.NoError(t, err)

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"msg":"terminal ready"`)
	assert.Contains(t, string(logs), `"msg":"demo finished"`)
	assert.Contains(t, string(logs), `"session_id"`)

	spans, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	assert.Contains(t, string(spans), "terminal.draw")
	assert.Contains(t, string(spans), "terminal.close")
}

func TestRun_TracingWithoutPath(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("render:\n  backend: sim\ntelemetry:\n  tracing: true\n"), 0o644))

	err := run(context.Background(), options{configPath: cfgPath, frames: 1}, io.Discard)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))
}

func TestMetricsRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)
	m.ObserveResize()

	srv := httptest.NewServer(newMetricsRouter(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "tessera_resizes_total 1")

	health, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

func TestServeMetricsStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := newMetricsServer("127.0.0.1:0", prometheus.NewRegistry())

	done := make(chan error, 1)
	go func() { done <- serveMetrics(ctx, srv, logging.Nop()) }()
	cancel()
	assert.NoError(t, <-done)
}

func TestScene_ReusesLayoutCache(t *testing.T) {
	backend := sim.New(60, 16)
	term, err := terminal.New(backend)
	require.NoError(t, err)
	defer term.Close()

	cache := layout.NewCache(32)
	sc := newScene(cache, theme.Default(), len(samples)*2)
	for range len(samples) * 2 {
		require.NoError(t, term.Draw(sc.render))
	}

	stats := cache.Stats()
	assert.Positive(t, stats.Hits)
	assert.Equal(t, uint64(2+len(samples)), stats.Misses)

	selected, ok := sc.scroll.Selected()
	assert.True(t, ok)
	assert.Equal(t, len(samples)-1, selected)
}

func TestWatchInput(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
		quit   bool
	}{
		{"q", []event.Event{event.KeyEvent{Key: event.KeyRune, Rune: 'x'}, event.KeyEvent{Key: event.KeyRune, Rune: 'q'}}, true},
		{"escape", []event.Event{event.ResizeEvent{Width: 1, Height: 1}, event.KeyEvent{Key: event.KeyEscape}}, true},
		{"ctrl c", []event.Event{event.KeyEvent{Key: event.KeyRune, Rune: 'c', Mods: event.ModCtrl}}, true},
		{"plain c", []event.Event{event.KeyEvent{Key: event.KeyRune, Rune: 'c'}}, false},
		{"no input", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sim.New(10, 2)
			for _, ev := range tt.events {
				require.NoError(t, b.PostEvent(ev))
			}
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			watchInput(b, cancel, logging.Nop())
			assert.Equal(t, tt.quit, ctx.Err() != nil)
		})
	}
}
