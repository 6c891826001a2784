package plot

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/msto63/trinom/internal/trinomial"
)

// Canvas is a grid of braille cells, each holding 2×4 dots.
type Canvas struct {
	cols, rows int
	cells      []uint8
}

// braille dot bits indexed by [row][column] inside a cell
var dots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// NewCanvas returns an empty canvas of cols×rows cells.
func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

// Size returns the resolution in dots.
func (c *Canvas) Size() (int, int) {
	return c.cols * 2, c.rows * 4
}

// Set lights the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.cells[(y/4)*c.cols+x/2] |= dots[y%4][x%2]
}

// Line draws a segment with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Rows returns the canvas as lines of braille characters.
func (c *Canvas) Rows() []string {
	lines := make([]string, c.rows)
	for r := 0; r < c.rows; r++ {
		var sb strings.Builder
		for col := 0; col < c.cols; col++ {
			sb.WriteRune(rune(0x2800 + int(c.cells[r*c.cols+col])))
		}
		lines[r] = sb.String()
	}
	return lines
}

// String returns the canvas rows joined by newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// clamp keeps huge pixel coordinates inside int range; Set clips the rest.
func clamp(f float64, limit int) int {
	f = math.Round(f)
	lo, hi := float64(-4*limit), float64(5*limit)
	if f < lo {
		return int(lo)
	}
	if f > hi {
		return int(hi)
	}
	return int(f)
}

// Terminal renders the figure on a canvas of width×height characters
// including the title line, the y labels and the x labels.
func (f *Figure) Terminal(width, height int) string {
	xmin, xmax := f.XLimits()
	ymin, ymax := f.YLimits()
	yTop, yBottom := trinomial.FormatNumber(ymax), trinomial.FormatNumber(ymin)

	gutter := utf8.RuneCountInString(yTop)
	if n := utf8.RuneCountInString(yBottom); n > gutter {
		gutter = n
	}
	cols := width - gutter - 1
	rows := height - 2
	if cols < 4 {
		cols = 4
	}
	if rows < 2 {
		rows = 2
	}

	canvas := NewCanvas(cols, rows)
	w, h := canvas.Size()
	v := f.Viewport(float64(w-1), float64(h-1))

	ox, oy, yAxis, xAxis := v.Origin()
	if xAxis {
		y := clamp(oy, h)
		canvas.Line(0, y, w-1, y)
	}
	if yAxis {
		x := clamp(ox, w)
		canvas.Line(x, 0, x, h-1)
	}
	for _, s := range f.Segments(v, w*2) {
		canvas.Line(clamp(s[0], w), clamp(s[1], h), clamp(s[2], w), clamp(s[3], h))
	}

	var sb strings.Builder
	sb.WriteString(center(f.Title, width))
	sb.WriteByte('\n')
	for i, row := range canvas.Rows() {
		label := ""
		switch i {
		case 0:
			label = yTop
		case rows - 1:
			label = yBottom
		}
		sb.WriteString(padLeft(label, gutter))
		sb.WriteByte(' ')
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	left, right := trinomial.FormatNumber(xmin), trinomial.FormatNumber(xmax)
	gap := cols - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(strings.Repeat(" ", gutter+1))
	sb.WriteString(left + strings.Repeat(" ", gap) + right)
	return sb.String()
}

func padLeft(s string, n int) string {
	if d := n - utf8.RuneCountInString(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}

func center(s string, n int) string {
	if d := (n - utf8.RuneCountInString(s)) / 2; d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}
