package plot

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerr "github.com/msto63/trinom/pkg/core/error"

	"github.com/msto63/trinom/internal/sampler"
	"github.com/msto63/trinom/internal/trinomial"
)

func TestNewFigure(t *testing.T) {
	f, err := NewFigure(trinomial.New(1, 0, -4), sampler.Bounds{XMin: -3, XMax: 3, Points: 7})
	require.NoError(t, err)

	assert.Equal(t, "f(x)=1x²+0x-4", f.Title)
	assert.Len(t, f.Curve.Points, 7)

	xmin, xmax := f.XLimits()
	assert.Equal(t, -3.0, xmin)
	assert.Equal(t, 3.0, xmax)

	ymin, ymax := f.YLimits()
	assert.Equal(t, -4.0, ymin)
	assert.Equal(t, 5.0, ymax)
}

func TestNewFigureDegenerateBounds(t *testing.T) {
	_, err := NewFigure(trinomial.New(1, 0, 0), sampler.Bounds{XMin: -1, XMax: 1, Points: 1})
	assert.True(t, qerr.HasCode(err, qerr.CodeDegenerate))
}

func TestYLimitsFlatCurve(t *testing.T) {
	f, err := NewFigure(trinomial.New(0, 0, 2), sampler.Bounds{XMin: -1, XMax: 1, Points: 3})
	require.NoError(t, err)

	ymin, ymax := f.YLimits()
	assert.Equal(t, 1.0, ymin)
	assert.Equal(t, 3.0, ymax)
}

func TestViewport(t *testing.T) {
	v := Viewport{XMin: -10, XMax: 10, YMin: -5, YMax: 5, Width: 200, Height: 100}

	x, y := v.Map(-10, 5)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = v.Map(10, -5)
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 100.0, y)

	ox, oy, yAxis, xAxis := v.Origin()
	assert.Equal(t, 100.0, ox)
	assert.Equal(t, 50.0, oy)
	assert.True(t, yAxis)
	assert.True(t, xAxis)

	v.XMin, v.XMax = 1, 2
	_, _, yAxis, _ = v.Origin()
	assert.False(t, yAxis)
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 1)
	w, h := c.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	assert.Equal(t, "⠁⢀", c.String())

	c = NewCanvas(1, 1)
	c.Line(0, 0, 0, 3)
	assert.Equal(t, "⡇", c.String())
}

func TestTerminal(t *testing.T) {
	f, err := NewFigure(trinomial.New(1, 0, 0), sampler.Bounds{XMin: -2, XMax: 2, Points: 101})
	require.NoError(t, err)

	out := f.Terminal(40, 12)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)

	assert.Contains(t, lines[0], "f(x)=1x²+0x+0")
	assert.True(t, strings.HasPrefix(lines[1], "4 "), lines[1])
	assert.True(t, strings.HasPrefix(lines[10], "0 "), lines[10])
	assert.Contains(t, lines[11], "-2")
	assert.True(t, strings.HasSuffix(lines[11], "2"))

	for _, line := range lines[1:11] {
		assert.Equal(t, 40, utf8.RuneCountInString(line))
	}
}

func TestTerminalOverflowingCurve(t *testing.T) {
	f, err := NewFigure(trinomial.New(1e308, 0, 0), sampler.Bounds{XMin: -10, XMax: 10, Points: 201})
	require.NoError(t, err)

	ymin, ymax := f.YLimits()
	assert.Equal(t, 0.0, ymin)
	assert.Less(t, ymax, math.Inf(1))

	out := f.Terminal(80, 10)
	assert.NotContains(t, out, "Inf")
	assert.NotContains(t, out, "NaN")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	// y=0 is the bottom limit, so the x axis fills the last canvas row
	dots := 0
	for _, r := range lines[8] {
		if r > '⠀' && r <= '⣿' {
			dots++
		}
	}
	assert.Greater(t, dots, 20, "x axis missing:\n%s", out)
	assert.Greater(t, len(f.Segments(f.Viewport(100, 100), 400)), 0)
}

func TestViewportHugeLimits(t *testing.T) {
	v := Viewport{XMin: -1e308, XMax: 1e308, YMin: -math.MaxFloat64, YMax: math.MaxFloat64, Width: 100, Height: 50}

	x, y := v.Map(0, 0)
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 25.0, y, 1e-9)

	x, y = v.Map(1e308, -math.MaxFloat64)
	assert.InDelta(t, 100.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)
}
