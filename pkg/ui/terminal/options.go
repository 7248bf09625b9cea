package terminal

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/odvcencio/tessera/pkg/config"
	"github.com/odvcencio/tessera/pkg/telemetry"
)

// Options controls how the terminal is entered and restored.
type Options struct {
	// AlternateScreen draws on the alternate screen buffer, leaving the
	// user's scrollback untouched.
	AlternateScreen bool
	// HideCursor hides the cursor while the terminal is active.
	HideCursor bool
}

// DefaultOptions enables both the alternate screen and a hidden cursor.
func DefaultOptions() Options {
	return Options{AlternateScreen: true, HideCursor: true}
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithAlternateScreen toggles the alternate screen.
func WithAlternateScreen(on bool) Option {
	return func(t *Terminal) {
		t.opts.AlternateScreen = on
	}
}

// WithHiddenCursor toggles hiding the cursor on entry.
func WithHiddenCursor(on bool) Option {
	return func(t *Terminal) {
		t.opts.HideCursor = on
	}
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Terminal) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMetrics records draws in m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(t *Terminal) {
		t.metrics = m
	}
}

// WithTracer traces draws and teardown with tracer. Nil keeps the no-op
// tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(t *Terminal) {
		if tracer != nil {
			t.tracer = tracer
		}
	}
}

// FromConfig returns the options described by cfg.
func FromConfig(cfg config.TerminalConfig) []Option {
	return []Option{
		WithAlternateScreen(cfg.AlternateScreen),
		WithHiddenCursor(cfg.HideCursor),
	}
}
