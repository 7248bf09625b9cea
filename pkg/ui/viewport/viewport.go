// Package viewport tracks a scroll window over content that is taller than
// the area it is drawn in, with an optional selected line kept in view.
package viewport

// ScrollState is the scroll position and selection of a viewport.
// The zero value is an empty, unscrolled viewport with nothing selected.
type ScrollState struct {
	offset         int
	contentLength  int
	viewportHeight int
	selected       int
	hasSelection   bool
}

// New returns a ScrollState for content lines shown height lines at a time.
func New(content, height int) *ScrollState {
	s := &ScrollState{}
	s.SetContentLength(content)
	s.SetViewportHeight(height)
	return s
}

// SetContentLength updates the number of content lines, clamping the offset
// and the selection.
func (s *ScrollState) SetContentLength(n int) {
	s.contentLength = max(n, 0)
	if s.hasSelection && s.selected >= s.contentLength {
		if s.contentLength == 0 {
			s.hasSelection = false
			s.selected = 0
		} else {
			s.selected = s.contentLength - 1
		}
	}
	s.clamp()
}

// SetViewportHeight updates the number of visible lines.
func (s *ScrollState) SetViewportHeight(n int) {
	s.viewportHeight = max(n, 0)
	s.clamp()
	if s.hasSelection {
		s.ensureVisible(s.selected)
	}
}

// ContentLength returns the number of content lines.
func (s *ScrollState) ContentLength() int { return s.contentLength }

// ViewportHeight returns the number of visible lines.
func (s *ScrollState) ViewportHeight() int { return s.viewportHeight }

// Offset returns the first visible line.
func (s *ScrollState) Offset() int { return s.offset }

// SetOffset scrolls to line n, clamped to the valid range.
func (s *ScrollState) SetOffset(n int) {
	s.offset = n
	s.clamp()
}

// MaxOffset returns the largest offset that still fills the viewport.
func (s *ScrollState) MaxOffset() int {
	return max(s.contentLength-s.viewportHeight, 0)
}

// ScrollUp scrolls n lines towards the top.
func (s *ScrollState) ScrollUp(n int) {
	s.SetOffset(s.offset - n)
}

// ScrollDown scrolls n lines towards the bottom.
func (s *ScrollState) ScrollDown(n int) {
	s.SetOffset(s.offset + n)
}

// PageUp scrolls up by one viewport height.
func (s *ScrollState) PageUp() {
	s.ScrollUp(max(s.viewportHeight, 1))
}

// PageDown scrolls down by one viewport height.
func (s *ScrollState) PageDown() {
	s.ScrollDown(max(s.viewportHeight, 1))
}

// ScrollToTop scrolls to the first line.
func (s *ScrollState) ScrollToTop() {
	s.offset = 0
}

// ScrollToBottom scrolls so the last line is visible.
func (s *ScrollState) ScrollToBottom() {
	s.offset = s.MaxOffset()
}

// IsAtBottom reports whether the last line is visible.
func (s *ScrollState) IsAtBottom() bool {
	return s.offset >= s.MaxOffset()
}

// IsScrollable reports whether the content exceeds the viewport.
func (s *ScrollState) IsScrollable() bool {
	return s.contentLength > s.viewportHeight
}

// VisibleRange returns the half-open range of visible content lines.
func (s *ScrollState) VisibleRange() (start, end int) {
	return s.offset, min(s.offset+s.viewportHeight, s.contentLength)
}

// ScrollPercentage returns how far the viewport is scrolled, from 0 to 1.
// Content that fits the viewport reports 0.
func (s *ScrollState) ScrollPercentage() float64 {
	maxOffset := s.MaxOffset()
	if maxOffset == 0 {
		return 0
	}
	return float64(s.offset) / float64(maxOffset)
}

// Selected returns the selected line, if any.
func (s *ScrollState) Selected() (int, bool) {
	return s.selected, s.hasSelection
}

// Select selects line i and scrolls it into view. Out of range indexes are
// clamped to the content.
func (s *ScrollState) Select(i int) {
	if s.contentLength == 0 {
		s.ClearSelection()
		return
	}
	s.selected = min(max(i, 0), s.contentLength-1)
	s.hasSelection = true
	s.ensureVisible(s.selected)
}

// ClearSelection removes the selection.
func (s *ScrollState) ClearSelection() {
	s.selected = 0
	s.hasSelection = false
}

// SelectNext moves the selection down one line, selecting the first line
// when nothing is selected.
func (s *ScrollState) SelectNext() {
	if !s.hasSelection {
		s.Select(0)
		return
	}
	s.Select(s.selected + 1)
}

// SelectPrevious moves the selection up one line, selecting the first line
// when nothing is selected.
func (s *ScrollState) SelectPrevious() {
	if !s.hasSelection {
		s.Select(0)
		return
	}
	s.Select(s.selected - 1)
}

func (s *ScrollState) ensureVisible(i int) {
	if s.viewportHeight == 0 {
		return
	}
	switch {
	case i < s.offset:
		s.offset = i
	case i >= s.offset+s.viewportHeight:
		s.offset = i - (s.viewportHeight - 1)
	}
	s.clamp()
}

func (s *ScrollState) clamp() {
	s.offset = min(max(s.offset, 0), s.MaxOffset())
}
