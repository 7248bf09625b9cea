// Package telemetry exposes prometheus metrics and OpenTelemetry tracing for
// the renderer.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/layout"
)

const namespace = "tessera"

// Metrics holds the renderer's prometheus collectors. All methods are safe
// on a nil receiver, which disables collection.
type Metrics struct {
	FramesDrawn       prometheus.Counter
	CellsWritten      prometheus.Counter
	Resizes           prometheus.Counter
	DrawErrors        prometheus.Counter
	LayoutCacheHits   prometheus.Counter
	LayoutCacheMisses prometheus.Counter
	FrameCells        prometheus.Gauge

	mu         sync.Mutex
	layoutSeen map[*layout.Cache]layout.CacheStats
}

// NewMetrics registers the collectors on reg, or on the default registry
// when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		FramesDrawn: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_drawn_total",
			Help:      "Total number of frames drawn to the backend",
		}),
		CellsWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_written_total",
			Help:      "Total number of cells sent to the backend",
		}),
		Resizes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resizes_total",
			Help:      "Total number of terminal resizes observed while drawing",
		}),
		DrawErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draw_errors_total",
			Help:      "Total number of draws aborted by a backend error",
		}),
		LayoutCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "cache_hits_total",
			Help:      "Total number of layout splits served from cache",
		}),
		LayoutCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "cache_misses_total",
			Help:      "Total number of layout splits that ran the solver",
		}),
		FrameCells: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frame_cells",
			Help:      "Number of cells in the most recent frame",
		}),
		layoutSeen: make(map[*layout.Cache]layout.CacheStats),
	}
}

// ObserveFrame records a successful draw that wrote changed cells over area.
func (m *Metrics) ObserveFrame(changed int, area geometry.Rect) {
	if m == nil {
		return
	}
	m.FramesDrawn.Inc()
	m.CellsWritten.Add(float64(changed))
	m.FrameCells.Set(float64(area.Area()))
}

// ObserveResize records a size change detected during a draw.
func (m *Metrics) ObserveResize() {
	if m == nil {
		return
	}
	m.Resizes.Inc()
}

// ObserveDrawError records a draw aborted by the backend.
func (m *Metrics) ObserveDrawError() {
	if m == nil {
		return
	}
	m.DrawErrors.Inc()
}

// ObserveLayout adds the cache activity of l since its last observation.
func (m *Metrics) ObserveLayout(l *layout.Layout) {
	if l == nil {
		return
	}
	m.ObserveLayoutCache(l.Cache())
}

// ObserveLayoutCache adds the activity of c since its last observation.
// Observing several caches keeps a separate baseline for each.
func (m *Metrics) ObserveLayoutCache(c *layout.Cache) {
	if m == nil || c == nil {
		return
	}
	stats := c.Stats()

	m.mu.Lock()
	last := m.layoutSeen[c]
	m.layoutSeen[c] = stats
	m.mu.Unlock()

	if stats.Hits > last.Hits {
		m.LayoutCacheHits.Add(float64(stats.Hits - last.Hits))
	}
	if stats.Misses > last.Misses {
		m.LayoutCacheMisses.Add(float64(stats.Misses - last.Misses))
	}
}
