// Package window shows a figure in a desktop window and blocks until the
// window is closed.
package window

import (
	"errors"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	qerr "github.com/msto63/trinom/pkg/core/error"

	"github.com/msto63/trinom/internal/plot"
	"github.com/msto63/trinom/internal/trinomial"
)

// Options sets the window size in pixels.
type Options struct {
	Width, Height int
}

const margin = 40

var (
	background = color.White
	axisColor  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	curveColor = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
)

// Show opens a window titled after the figure and draws it with its axes and
// limits. It returns once the user closes the window or presses Escape.
//
// The underlying event loop can run only once per process, so callers use it
// for one-shot commands and fall back to the terminal canvas otherwise.
func Show(fig *plot.Figure, opts Options) error {
	if opts.Width <= 2*margin || opts.Height <= 2*margin {
		opts = Options{Width: 800, Height: 600}
	}

	g := newGame(fig, opts)
	ebiten.SetWindowTitle(fig.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return qerr.Wrap(err, "plot window failed").
			WithCode(qerr.CodeRenderFailed).
			WithOperation("window.Show")
	}
	return nil
}

type game struct {
	fig      *plot.Figure
	opts     Options
	segments [][4]float64
	view     plot.Viewport
	labels   [4]string
}

func newGame(fig *plot.Figure, opts Options) *game {
	w := float64(opts.Width - 2*margin)
	h := float64(opts.Height - 2*margin)
	view := fig.Viewport(w, h)

	return &game{
		fig:      fig,
		opts:     opts,
		view:     view,
		segments: fig.Segments(view, 4*opts.Width),
		labels: [4]string{
			trinomial.FormatNumber(view.XMin),
			trinomial.FormatNumber(view.XMax),
			trinomial.FormatNumber(view.YMin),
			trinomial.FormatNumber(view.YMax),
		},
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	// frame
	w, h := float32(g.view.Width), float32(g.view.Height)
	vector.StrokeRect(screen, margin, margin, w, h, 1, axisColor, false)

	ox, oy, yAxis, xAxis := g.view.Origin()
	if xAxis {
		y := float32(oy) + margin
		vector.StrokeLine(screen, margin, y, margin+w, y, 1, axisColor, false)
	}
	if yAxis {
		x := float32(ox) + margin
		vector.StrokeLine(screen, x, margin, x, margin+h, 1, axisColor, false)
	}

	for _, s := range g.segments {
		vector.StrokeLine(screen,
			float32(s[0])+margin, float32(s[1])+margin,
			float32(s[2])+margin, float32(s[3])+margin,
			2, curveColor, true)
	}

	// the debug font has no glyph for the square
	ebitenutil.DebugPrintAt(screen, strings.ReplaceAll(g.fig.Title, "²", "^2"), margin, margin/2-8)
	ebitenutil.DebugPrintAt(screen, g.labels[0], margin, margin+int(h)+4)
	ebitenutil.DebugPrintAt(screen, g.labels[1], margin+int(w)-6*len(g.labels[1]), margin+int(h)+4)
	ebitenutil.DebugPrintAt(screen, g.labels[2], 2, margin+int(h)-16)
	ebitenutil.DebugPrintAt(screen, g.labels[3], 2, margin)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}
