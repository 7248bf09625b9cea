// Package logging builds the structured slog loggers used across tessera.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/odvcencio/tessera/pkg/errors"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config selects the logger's level, format and destination.
type Config struct {
	Level     string
	Format    string
	Path      string
	Component string
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.New(errors.ErrCodeInvalidInput, "unknown log level").
		WithContext("level", level)
}

// New creates a structured logger writing to w. An unknown level falls back
// to info.
func New(cfg Config, w io.Writer) *slog.Logger {
	level, _ := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, FormatText) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	component := cfg.Component
	if component == "" {
		component = "tessera"
	}
	return slog.New(handler).With(
		slog.String("component", component),
		slog.String("system", "tessera"),
	)
}

// Open creates a logger for cfg. When cfg.Path is set the log is appended to
// that file, creating its directory; otherwise it goes to fallback. The
// returned closer releases the file and is never nil.
func Open(cfg Config, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	if cfg.Path == "" {
		return New(cfg, fallback), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create log directory").
			WithContext("path", cfg.Path)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to open log file").
			WithContext("path", cfg.Path)
	}
	return New(cfg, f), f, nil
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSession returns a logger with session-specific fields
func WithSession(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With(slog.String("session_id", sessionID))
}
