package main

import (
	"fmt"

	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/layout"
	"github.com/odvcencio/tessera/pkg/ui/symbols"
	"github.com/odvcencio/tessera/pkg/ui/terminal"
	"github.com/odvcencio/tessera/pkg/ui/theme"
	"github.com/odvcencio/tessera/pkg/ui/viewport"
	"github.com/odvcencio/tessera/pkg/ui/widgets"
)

type sample struct {
	name        string
	constraints []layout.Constraint
}

var samples = []sample{
	{"length", []layout.Constraint{layout.Length(4), layout.Length(8), layout.Fill(1)}},
	{"percentage", []layout.Constraint{layout.Percentage(25), layout.Percentage(50), layout.Percentage(25)}},
	{"ratio", []layout.Constraint{layout.Ratio(1, 3), layout.Ratio(2, 3)}},
	{"min max", []layout.Constraint{layout.Min(6), layout.Max(10), layout.Fill(1)}},
	{"weighted fill", []layout.Constraint{layout.Fill(1), layout.Fill(2), layout.Fill(3)}},
}

// scene draws the demo screen. It cycles through the sample layouts, one
// per frame, and shows the split each produces.
type scene struct {
	cache  *layout.Cache
	theme  *theme.Theme
	total  int
	list   widgets.List
	scroll *viewport.ScrollState
}

func newScene(cache *layout.Cache, th *theme.Theme, total int) *scene {
	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.name
	}
	list := widgets.NewList(names...)
	list.Style = th.Text
	list.HighlightStyle = th.Selection
	return &scene{
		cache:  cache,
		theme:  th,
		total:  total,
		list:   list,
		scroll: viewport.New(len(names), 0),
	}
}

func (s *scene) block(title string) widgets.Block {
	b := widgets.NewBlock().WithTitle(title)
	b.BorderStyle = s.theme.Border
	b.TitleStyle = s.theme.Title
	return b
}

func (s *scene) render(f *terminal.Frame) {
	current := int(f.Count()) % len(samples)
	s.scroll.Select(current)

	rows := layout.Vertical(layout.Length(3), layout.Fill(1), layout.Length(3)).
		WithSharedCache(s.cache).
		Split(f.Area())
	columns := layout.Horizontal(layout.Length(18), layout.Fill(1)).
		WithSpacing(layout.Gap(1)).
		WithSharedCache(s.cache).
		Split(rows[1])

	header := s.block("tessera")
	header.Lines = symbols.Rounded
	spinner := symbols.Spinner[int(f.Count())%len(symbols.Spinner)]
	f.RenderWidget(widgets.Paragraph{
		Text:  fmt.Sprintf("%s frame %d  %dx%d", spinner, f.Count(), f.Area().Width, f.Area().Height),
		Style: s.theme.Text,
		Align: geometry.AlignCenter,
		Block: &header,
	}, rows[0])

	listBlock := s.block("Constraints")
	s.list.Block = &listBlock
	terminal.RenderStatefulWidget[*viewport.ScrollState](f, s.list, columns[0], s.scroll)

	s.renderSplit(f, samples[current], columns[1])

	progress := s.block("Progress")
	ratio := 0.0
	if s.total > 0 {
		ratio = float64(f.Count()+1) / float64(s.total)
	}
	f.RenderWidget(widgets.Gauge{
		Ratio:      ratio,
		Style:      s.theme.TextMuted,
		GaugeStyle: s.theme.Success,
		Block:      &progress,
	}, rows[2])
}

func (s *scene) renderSplit(f *terminal.Frame, sm sample, area geometry.Rect) {
	outer := s.block(sm.name)
	outer.Lines = symbols.Double
	outer.BorderStyle = s.theme.BorderFocus
	f.RenderWidget(outer, area)

	parts := layout.Horizontal(sm.constraints...).
		WithSharedCache(s.cache).
		Split(outer.Inner(area))
	for i, part := range parts {
		block := s.block(sm.constraints[i].String())
		block.BorderStyle = s.theme.Swatch(i)
		f.RenderWidget(widgets.Paragraph{
			Text:  fmt.Sprintf("%d cols", part.Width),
			Style: s.theme.TextMuted,
			Align: geometry.AlignCenter,
			Block: &block,
		}, part)
	}
}
