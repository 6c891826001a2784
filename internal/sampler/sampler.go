// Package sampler produces uniformly spaced abscissas and the curves
// obtained by evaluating a function on them.
package sampler

import (
	"math"

	"github.com/montanaflynn/stats"

	qerr "github.com/msto63/trinom/pkg/core/error"
)

// Point is one sample of a curve.
type Point struct {
	X, Y float64
}

// MaxPoints is the largest resolution accepted. Above it the samples no
// longer fit comfortably in memory.
const MaxPoints = 10_000_000

// Bounds is a plotting interval and its resolution.
type Bounds struct {
	XMin, XMax float64
	Points     int
}

// Validate reports a degenerate computation error for fewer than two points
// or an empty interval, and an out of range error above MaxPoints.
func (b Bounds) Validate() error {
	if b.Points < 2 {
		return qerr.Degenerate("sampler.Bounds", "at least two points are required").WithDetail("points", b.Points)
	}
	if b.Points > MaxPoints {
		return qerr.OutOfRange("sampler.Bounds", b.Points, MaxPoints)
	}
	if !(b.XMin < b.XMax) {
		return qerr.Degenerate("sampler.Bounds", "xmin must be lower than xmax").
			WithDetail("xmin", b.XMin).
			WithDetail("xmax", b.XMax)
	}
	return nil
}

// Range returns count values linearly interpolated from xmin to xmax, both
// included, with a spacing of (xmax-xmin)/(count-1).
func Range(xmin, xmax float64, count int) ([]float64, error) {
	if count < 2 {
		return nil, qerr.Degenerate("sampler.Range", "at least two points are required").WithDetail("points", count)
	}
	if count > MaxPoints {
		return nil, qerr.OutOfRange("sampler.Range", count, MaxPoints)
	}

	n := float64(count - 1)
	step := (xmax - xmin) / n
	xs := make([]float64, count)
	for i := range xs {
		if math.IsInf(step, 0) {
			// the interval is wider than MaxFloat64
			xs[i] = xmin + float64(i)*(xmax/n-xmin/n)
			continue
		}
		xs[i] = xmin + float64(i)*step
	}
	// Pin the last value so that rounding never moves it.
	xs[count-1] = xmax
	return xs, nil
}

// Curve is a sampled function together with the extent of its finite
// values. Samples that overflow to ±Inf or NaN stay in Points but do not
// widen the extent.
type Curve struct {
	Points     []Point
	YMin, YMax float64
}

// Sample evaluates fn at every abscissa of b.
func Sample(fn func(float64) float64, b Bounds) (Curve, error) {
	if err := b.Validate(); err != nil {
		return Curve{}, err
	}

	xs, err := Range(b.XMin, b.XMax, b.Points)
	if err != nil {
		return Curve{}, err
	}

	points := make([]Point, len(xs))
	ys := make(stats.Float64Data, 0, len(xs))
	for i, x := range xs {
		y := fn(x)
		points[i] = Point{X: x, Y: y}
		if !math.IsNaN(y) && !math.IsInf(y, 0) {
			ys = append(ys, y)
		}
	}
	if len(ys) == 0 {
		return Curve{}, qerr.Degenerate("sampler.Sample", "no finite value on the interval").
			WithDetail("xmin", b.XMin).
			WithDetail("xmax", b.XMax)
	}

	ymin, err := ys.Min()
	if err != nil {
		return Curve{}, qerr.Wrap(err, "cannot compute curve extent").WithCode(qerr.CodeInternal)
	}
	ymax, err := ys.Max()
	if err != nil {
		return Curve{}, qerr.Wrap(err, "cannot compute curve extent").WithCode(qerr.CodeInternal)
	}

	return Curve{Points: points, YMin: ymin, YMax: ymax}, nil
}

// Mean returns the average of the sampled values.
func (c Curve) Mean() float64 {
	ys := make(stats.Float64Data, len(c.Points))
	for i, p := range c.Points {
		ys[i] = p.Y
	}
	m, err := ys.Mean()
	if err != nil {
		return math.NaN()
	}
	return m
}

// Flat reports whether every sample has the same value, in which case a
// renderer has to widen the y range itself.
func (c Curve) Flat() bool {
	return c.YMin == c.YMax
}

// Downsample keeps at most n points evenly spread over the curve, always
// including both ends. The extent of the result is the extent of the
// full curve so that a low resolution display keeps the same y limits.
func (c Curve) Downsample(n int) Curve {
	if n < 2 || len(c.Points) <= n {
		return c
	}

	out := make([]Point, n)
	last := len(c.Points) - 1
	for i := range out {
		idx := int(math.Round(float64(i) * float64(last) / float64(n-1)))
		out[i] = c.Points[idx]
	}
	return Curve{Points: out, YMin: c.YMin, YMax: c.YMax}
}
