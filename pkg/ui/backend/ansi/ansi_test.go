package ansi

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/tessera/pkg/errors"
	"github.com/odvcencio/tessera/pkg/ui/buffer"
	"github.com/odvcencio/tessera/pkg/ui/geometry"
	"github.com/odvcencio/tessera/pkg/ui/style"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestBackend_BuffersUntilFlush(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, WithFixedSize(10, 3))

	require.NoError(t, b.DrawCell(0, 0, buffer.NewCell("A", style.New())))
	assert.Zero(t, out.Len())

	require.NoError(t, b.Flush())
	assert.Equal(t, "\x1b[1;1H\x1b[0mA", out.String())
}

func TestBackend_SequentialWrites(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, WithFixedSize(20, 3))

	require.NoError(t, b.DrawCell(0, 1, buffer.NewCell("世", style.New())))
	require.NoError(t, b.DrawCell(1, 1, buffer.Cell{Symbol: " ", Skip: true}))
	require.NoError(t, b.DrawCell(2, 1, buffer.NewCell("a", style.New())))
	require.NoError(t, b.DrawCell(4, 1, buffer.NewCell("b", style.New())))
	require.NoError(t, b.DrawCell(15, 1, buffer.NewCell("c", style.New())))
	require.NoError(t, b.DrawCell(0, 2, buffer.NewCell("d", style.New())))
	require.NoError(t, b.Flush())

	assert.Equal(t,
		"\x1b[2;1H\x1b[0m世a\x1b[1Cb\x1b[2;16Hc\x1b[3;1Hd",
		out.String())
}

func TestBackend_StyleChangesOnly(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, WithFixedSize(10, 1))
	bold := style.New().Bold(true)

	require.NoError(t, b.DrawCell(0, 0, buffer.NewCell("a", bold)))
	require.NoError(t, b.DrawCell(1, 0, buffer.NewCell("b", bold)))
	require.NoError(t, b.DrawCell(2, 0, buffer.NewCell("c", style.New())))
	require.NoError(t, b.Flush())

	assert.Equal(t, "\x1b[1;1H\x1b[0;1mab\x1b[0mc", out.String())
}

func TestSGR(t *testing.T) {
	tests := []struct {
		name  string
		style style.Style
		want  string
	}{
		{"default", style.New(), "\x1b[0m"},
		{"reset colors", style.New().Foreground(style.Reset).Background(style.Reset), "\x1b[0m"},
		{"named", style.New().Foreground(style.Red).Background(style.Blue), "\x1b[0;31;44m"},
		{"bright named", style.New().Foreground(style.White).Background(style.DarkGray), "\x1b[0;97;100m"},
		{"indexed", style.New().Foreground(style.Indexed(200)), "\x1b[0;38;5;200m"},
		{"rgb", style.New().Background(style.RGB(1, 2, 3)), "\x1b[0;48;2;1;2;3m"},
		{"modifiers", style.New().Bold(true).Underline(true).StrikeThrough(true), "\x1b[0;1;4;9m"},
		{"removed modifier", style.New().Bold(true).RemoveModifier(style.Bold), "\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SGR(tt.style))
		})
	}
}

func TestBackend_ProfileDownsampling(t *testing.T) {
	red := style.New().Foreground(style.RGB(255, 0, 0))

	var out256 bytes.Buffer
	b := New(&out256, WithFixedSize(1, 1), WithProfile(termenv.ANSI256))
	require.NoError(t, b.SetStyle(red))
	require.NoError(t, b.Flush())
	assert.Equal(t, "\x1b[0;38;5;196m", out256.String())

	var outASCII bytes.Buffer
	b = New(&outASCII, WithFixedSize(1, 1), WithProfile(termenv.Ascii))
	require.NoError(t, b.SetStyle(red.Bold(true)))
	require.NoError(t, b.Flush())
	assert.Equal(t, "\x1b[0;1m", outASCII.String())
}

func TestBackend_ModesAndCursor(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, WithFixedSize(10, 10))

	require.NoError(t, b.EnterAlternateScreen())
	require.NoError(t, b.HideCursor())
	require.NoError(t, b.EnableRawMode())
	require.NoError(t, b.SetCursor(2, 3))
	require.NoError(t, b.ShowCursor())
	require.NoError(t, b.DisableRawMode())
	require.NoError(t, b.LeaveAlternateScreen())
	require.NoError(t, b.Flush())

	assert.Equal(t, AltScreen+CursorHide+CursorTo(2, 3)+CursorShow+MainScreen, out.String())

	pos, err := b.GetCursor()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPosition(2, 3), pos)
}

func TestBackend_ClearAndClearRegion(t *testing.T) {
	var out bytes.Buffer
	b := New(&out, WithFixedSize(10, 10))

	require.NoError(t, b.Clear())
	require.NoError(t, b.ClearRegion(geometry.NewRect(1, 1, 3, 2)))
	require.NoError(t, b.ClearRegion(geometry.Rect{}))
	require.NoError(t, b.Flush())

	assert.Equal(t,
		Reset+ClearScreen+CursorHome+"\x1b[0m"+CursorTo(1, 1)+"   "+CursorTo(1, 2)+"   ",
		out.String())
}

func TestBackend_Size(t *testing.T) {
	b := New(&bytes.Buffer{}, WithFixedSize(80, 24))
	area, err := b.Size()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(0, 0, 80, 24), area)

	_, err = New(&bytes.Buffer{}).Size()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBackendUnsupported))
}

func TestBackend_WriteFailure(t *testing.T) {
	boom := stderrors.New("broken pipe")
	b := New(failingWriter{err: boom}, WithFixedSize(1, 1))

	require.NoError(t, b.DrawCell(0, 0, buffer.NewCell("x", style.New())))
	err := b.Flush()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBackendIO))
	assert.False(t, errors.IsRetryable(err))
	assert.ErrorIs(t, err, boom)
}
