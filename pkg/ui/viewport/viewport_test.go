package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollState_MaxOffset(t *testing.T) {
	s := New(100, 10)
	assert.Equal(t, 90, s.MaxOffset())
	assert.True(t, s.IsScrollable())

	s.SetContentLength(5)
	assert.Equal(t, 0, s.MaxOffset())
	assert.False(t, s.IsScrollable())
}

func TestScrollState_Scroll(t *testing.T) {
	s := New(100, 10)

	s.ScrollDown(1)
	assert.Equal(t, 1, s.Offset())
	s.ScrollUp(5)
	assert.Equal(t, 0, s.Offset())

	s.ScrollDown(500)
	assert.Equal(t, 90, s.Offset())
	assert.True(t, s.IsAtBottom())

	s.ScrollToTop()
	assert.Equal(t, 0, s.Offset())
	s.ScrollToBottom()
	assert.Equal(t, 90, s.Offset())
}

func TestScrollState_Paging(t *testing.T) {
	s := New(100, 10)

	s.PageDown()
	assert.Equal(t, 10, s.Offset())
	s.PageDown()
	assert.Equal(t, 20, s.Offset())
	s.PageUp()
	assert.Equal(t, 10, s.Offset())

	s.SetOffset(85)
	s.PageDown()
	assert.Equal(t, 90, s.Offset())
}

func TestScrollState_SelectKeepsSelectionVisible(t *testing.T) {
	s := New(100, 10)

	s.Select(50)
	i, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 50, i)
	assert.Equal(t, 41, s.Offset())

	s.Select(20)
	assert.Equal(t, 20, s.Offset())

	s.Select(25)
	assert.Equal(t, 20, s.Offset())

	s.Select(1000)
	i, _ = s.Selected()
	assert.Equal(t, 99, i)
	assert.Equal(t, 90, s.Offset())
}

func TestScrollState_SelectNextPrevious(t *testing.T) {
	s := New(3, 2)

	s.SelectNext()
	i, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	s.SelectNext()
	s.SelectNext()
	s.SelectNext()
	i, _ = s.Selected()
	assert.Equal(t, 2, i)
	assert.Equal(t, 1, s.Offset())

	s.SelectPrevious()
	s.SelectPrevious()
	s.SelectPrevious()
	i, _ = s.Selected()
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, s.Offset())
}

func TestScrollState_ShrinkingContentClampsSelection(t *testing.T) {
	s := New(10, 4)
	s.Select(9)
	assert.Equal(t, 6, s.Offset())

	s.SetContentLength(5)
	i, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 4, i)
	assert.Equal(t, 1, s.Offset())

	s.SetContentLength(0)
	_, ok = s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Offset())
}

func TestScrollState_VisibleRangeAndPercentage(t *testing.T) {
	s := New(15, 10)
	start, end := s.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)
	assert.Zero(t, s.ScrollPercentage())

	s.ScrollToBottom()
	start, end = s.VisibleRange()
	assert.Equal(t, 5, start)
	assert.Equal(t, 15, end)
	assert.InDelta(t, 1.0, s.ScrollPercentage(), 1e-9)

	short := New(3, 10)
	start, end = short.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
	assert.Zero(t, short.ScrollPercentage())
}

func TestScrollState_ZeroValue(t *testing.T) {
	var s ScrollState
	s.ScrollDown(3)
	s.PageDown()
	s.SelectNext()
	assert.Equal(t, 0, s.Offset())
	_, ok := s.Selected()
	assert.False(t, ok)
}
