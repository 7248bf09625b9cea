// Command tessera-demo draws a short animated tour of the layout solver
// through one of the terminal backends.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/odvcencio/tessera/pkg/config"
	"github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/logging"
	"github.com/odvcencio/tessera/pkg/telemetry"
	"github.com/odvcencio/tessera/pkg/ui/backend"
	"github.com/odvcencio/tessera/pkg/ui/backend/ansi"
	"github.com/odvcencio/tessera/pkg/ui/backend/sim"
	tcellbackend "github.com/odvcencio/tessera/pkg/ui/backend/tcell"
	"github.com/odvcencio/tessera/pkg/ui/event"
	"github.com/odvcencio/tessera/pkg/ui/layout"
	"github.com/odvcencio/tessera/pkg/ui/terminal"
	"github.com/odvcencio/tessera/pkg/ui/theme"
)

// Version information - set via ldflags during build
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

const (
	simWidth  = 80
	simHeight = 24
)

type options struct {
	configPath  string
	backend     string
	frames      int
	fps         float64
	metricsAddr string
	showVersion bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("tessera-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a config file (default: ~/.tessera and ./.tessera)")
	fs.StringVar(&opts.backend, "backend", "", "backend override: tcell, ansi or sim")
	fs.IntVar(&opts.frames, "frames", 120, "frames to draw; 0 runs until interrupted")
	fs.Float64Var(&opts.fps, "fps", 10, "frames per second; 0 draws as fast as possible")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid arguments")
	}
	if fs.NArg() > 0 {
		return opts, errors.New(errors.ErrCodeInvalidInput, "unexpected arguments").
			WithContext("args", strings.Join(fs.Args(), " "))
	}
	if opts.frames < 0 {
		return opts, errors.New(errors.ErrCodeInvalidInput, "frames must not be negative").
			WithContext("frames", opts.frames)
	}
	if opts.fps < 0 {
		return opts, errors.New(errors.ErrCodeInvalidInput, "fps must not be negative").
			WithContext("fps", opts.fps)
	}
	return opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeForError(err))
	}
	if opts.showVersion {
		fmt.Printf("tessera-demo %s (%s)\n", version, commit)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(exitCodeForError(err))
	}
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if opts.backend != "" {
		cfg.Render.Backend = opts.backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// run draws the demo until the frame budget is spent or ctx is cancelled.
// The sim backend prints its final screen to stdout.
func run(ctx context.Context, opts options, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Logging.Logger("demo"), io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger = logging.WithSession(logger, logging.NewSessionID())

	registry := prometheus.NewRegistry()
	var metrics *telemetry.Metrics
	if cfg.Telemetry.Metrics {
		metrics = telemetry.NewMetrics(registry)
	}

	termOpts := append(terminal.FromConfig(cfg.Terminal),
		terminal.WithLogger(logger),
		terminal.WithMetrics(metrics),
	)
	if cfg.Telemetry.Tracing {
		tp, shutdown, err := openTracing(cfg.Telemetry)
		if err != nil {
			return err
		}
		defer shutdown()
		termOpts = append(termOpts, terminal.WithTracer(tp.Tracer()))
	}

	profile := cfg.Render.Profile()
	b, err := newBackend(cfg.Render.Backend, profile)
	if err != nil {
		return err
	}
	logger.Info("demo starting",
		slog.String("backend", cfg.Render.Backend),
		slog.Int("frames", opts.frames),
		slog.Float64("fps", opts.fps),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if opts.metricsAddr != "" && metrics != nil {
		srv := newMetricsServer(opts.metricsAddr, registry)
		g.Go(func() error {
			return serveMetrics(gctx, srv, logger)
		})
	}

	g.Go(func() error {
		defer cancel()
		return terminal.Run(b, termOpts, func(t *terminal.Terminal) error {
			drawCtx, stopDraw := context.WithCancel(gctx)
			defer stopDraw()
			if src, err := t.Events(); err == nil {
				g.Go(func() error {
					watchInput(src, stopDraw, logger)
					return nil
				})
			}

			sc := newScene(layout.NewCache(cfg.Layout.CacheCapacity), theme.ForProfile(profile), opts.frames)
			if err := drawFrames(drawCtx, t, sc, opts, metrics); err != nil {
				return err
			}
			if s, ok := b.(*sim.Backend); ok {
				fmt.Fprintln(stdout, s.Capture())
			}
			return nil
		})
	})

	err = g.Wait()
	logger.Info("demo finished", slog.Bool("ok", err == nil))
	return err
}

// watchInput stops the demo when q, Esc or Ctrl+C is pressed. It returns
// once the source runs dry, which for a real terminal happens at teardown.
func watchInput(src backend.EventSource, quit context.CancelFunc, logger *slog.Logger) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(event.KeyEvent)
		if !ok {
			continue
		}
		if key.IsRune('q') || key.Key == event.KeyEscape || key.IsCtrl('c') {
			logger.Info("quit requested")
			quit()
			return
		}
	}
}

func drawFrames(ctx context.Context, t *terminal.Terminal, sc *scene, opts options, metrics *telemetry.Metrics) error {
	limit := rate.Inf
	if opts.fps > 0 {
		limit = rate.Limit(opts.fps)
	}
	limiter := rate.NewLimiter(limit, 1)

	for i := 0; opts.frames == 0 || i < opts.frames; i++ {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := t.DrawContext(ctx, sc.render); err != nil {
			return err
		}
		metrics.ObserveLayoutCache(sc.cache)
	}
	return nil
}

func newBackend(name string, profile termenv.Profile) (backend.Backend, error) {
	switch strings.ToLower(name) {
	case config.BackendANSI:
		return ansi.NewStdio(profile), nil
	case config.BackendSim:
		return sim.New(simWidth, simHeight), nil
	case config.BackendTcell:
		b, err := tcellbackend.New()
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, errors.New(errors.ErrCodeBackendUnsupported, "unknown backend").
		WithContext("backend", name)
}

// openTracing exports spans as JSON lines to the configured trace file.
func openTracing(cfg config.TelemetryConfig) (*telemetry.TracerProvider, func(), error) {
	if cfg.TracePath == "" {
		return nil, nil, errors.New(errors.ErrCodeConfigInvalid, "tracing needs telemetry.trace_path").
			WithRemediation("set telemetry.trace_path so spans do not interleave with terminal output")
	}
	f, err := os.Create(cfg.TracePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create trace file").
			WithContext("path", cfg.TracePath)
	}
	tp, err := telemetry.NewTracerProvider("tessera-demo", stdouttrace.WithWriter(f))
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
		f.Close()
	}, nil
}
