// ============================================================================
// trinom - Études de fonctions trinômes du second degré
// ============================================================================
//
// Package:     plot
// Description: Graph of a trinomial over a sampled interval and its
//              terminal rendering
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package plot

import (
	"math"

	"github.com/msto63/trinom/internal/sampler"
	"github.com/msto63/trinom/internal/trinomial"
)

// Figure is the sampled graph of a trinomial together with its title and
// limits. Backends (terminal canvas, window, exports) only draw it.
type Figure struct {
	Title     string
	Trinomial trinomial.Trinomial
	Bounds    sampler.Bounds
	Curve     sampler.Curve
}

// NewFigure samples the developed form of t on b.
func NewFigure(t trinomial.Trinomial, b sampler.Bounds) (*Figure, error) {
	curve, err := sampler.Sample(t.Eval, b)
	if err != nil {
		return nil, err
	}
	return &Figure{
		Title:     "f(x)=" + t.String(),
		Trinomial: t,
		Bounds:    b,
		Curve:     curve,
	}, nil
}

// XLimits returns the plotted x range.
func (f *Figure) XLimits() (float64, float64) {
	return f.Bounds.XMin, f.Bounds.XMax
}

// YLimits returns the sampled y range, widened by one unit on each side when
// the curve is flat so that it never collapses to a line of zero height.
func (f *Figure) YLimits() (float64, float64) {
	lo, hi := f.Curve.YMin, f.Curve.YMax
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

// Viewport maps figure coordinates onto a w×h pixel area whose origin is the
// top-left corner.
type Viewport struct {
	XMin, XMax, YMin, YMax float64
	Width, Height          float64
}

// Viewport returns the mapping of f onto a w×h area.
func (f *Figure) Viewport(w, h float64) Viewport {
	xmin, xmax := f.XLimits()
	ymin, ymax := f.YLimits()
	return Viewport{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax, Width: w, Height: h}
}

// Map converts a point of the figure into pixel coordinates.
func (v Viewport) Map(x, y float64) (float64, float64) {
	px := fraction(x, v.XMin, v.XMin, v.XMax) * v.Width
	py := fraction(v.YMax, y, v.YMin, v.YMax) * v.Height
	return px, py
}

// fraction returns (a-b)/(hi-lo), halving every term first when one of the
// differences overflows, as it does for limits near ±MaxFloat64.
func fraction(a, b, lo, hi float64) float64 {
	d, span := a-b, hi-lo
	if math.IsInf(d, 0) || math.IsInf(span, 0) {
		return (a/2 - b/2) / (hi/2 - lo/2)
	}
	return d / span
}

// Origin returns the pixel coordinates of the axes and whether each is
// visible: the y axis at x=0 and the x axis at y=0.
func (v Viewport) Origin() (px, py float64, yAxis, xAxis bool) {
	px, py = v.Map(0, 0)
	yAxis = v.XMin <= 0 && 0 <= v.XMax
	xAxis = v.YMin <= 0 && 0 <= v.YMax
	return px, py, yAxis, xAxis
}

// Segments returns the curve as consecutive pixel segments, keeping at most
// n points. Non-finite values break the line.
func (f *Figure) Segments(v Viewport, n int) [][4]float64 {
	pts := f.Curve.Downsample(n).Points
	segs := make([][4]float64, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if !finite(a.Y) || !finite(b.Y) {
			continue
		}
		x0, y0 := v.Map(a.X, a.Y)
		x1, y1 := v.Map(b.X, b.Y)
		segs = append(segs, [4]float64{x0, y0, x1, y1})
	}
	return segs
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
