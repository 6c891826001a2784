package sampler

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerr "github.com/msto63/trinom/pkg/core/error"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		count    int
		want     []float64
	}{
		{"two points", 0, 1, 2, []float64{0, 1}},
		{"five points", -2, 2, 5, []float64{-2, -1, 0, 1, 2}},
		{"fractional step", 0, 1, 4, []float64{0, 1.0 / 3, 2.0 / 3, 1}},
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Range(tt.min, tt.max, tt.count)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Range() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRangeProperties(t *testing.T) {
	for _, n := range []int{2, 3, 20, 1001, 100_000} {
		xs, err := Range(-100, 100, n)
		require.NoError(t, err)
		require.Len(t, xs, n)
		assert.Equal(t, -100.0, xs[0])
		assert.Equal(t, 100.0, xs[n-1])
		for i := 1; i < n; i++ {
			if !(xs[i] > xs[i-1]) {
				t.Fatalf("n=%d: xs[%d]=%v is not greater than xs[%d]=%v", n, i, xs[i], i-1, xs[i-1])
			}
		}
	}
}

func TestRangeDegenerate(t *testing.T) {
	for _, n := range []int{1, 0, -3} {
		_, err := Range(0, 1, n)
		assert.True(t, qerr.HasCode(err, qerr.CodeDegenerate), "Range(0, 1, %d)", n)
	}
}

func TestSample(t *testing.T) {
	square := func(x float64) float64 { return x * x }

	curve, err := Sample(square, Bounds{XMin: -2, XMax: 2, Points: 5})
	require.NoError(t, err)

	want := []Point{{-2, 4}, {-1, 1}, {0, 0}, {1, 1}, {2, 4}}
	assert.Equal(t, want, curve.Points)
	assert.Equal(t, 0.0, curve.YMin)
	assert.Equal(t, 4.0, curve.YMax)
	assert.InDelta(t, 2.0, curve.Mean(), 1e-12)
	assert.False(t, curve.Flat())
}

func TestSampleFlat(t *testing.T) {
	curve, err := Sample(func(float64) float64 { return 3 }, Bounds{XMin: 0, XMax: 1, Points: 10})
	require.NoError(t, err)
	assert.True(t, curve.Flat())
}

func TestBoundsValidate(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		ok   bool
	}{
		{"valid", Bounds{-1, 1, 2}, true},
		{"one point", Bounds{-1, 1, 1}, false},
		{"empty interval", Bounds{1, 1, 10}, false},
		{"reversed", Bounds{1, -1, 10}, false},
		{"nan", Bounds{math.NaN(), 1, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, qerr.HasCode(err, qerr.CodeDegenerate), "err = %v", err)
			_, serr := Sample(math.Abs, tt.b)
			assert.Error(t, serr)
		})
	}
}

func TestBoundsTooManyPoints(t *testing.T) {
	assert.NoError(t, Bounds{-1, 1, MaxPoints}.Validate())

	for _, n := range []int{MaxPoints + 1, 10_000_000_000, 1_000_000_000_000_000_000} {
		err := Bounds{-1, 1, n}.Validate()
		assert.True(t, qerr.HasCode(err, qerr.CodeValueOutOfRange), "Validate() with %d points: %v", n, err)

		_, err = Range(-1, 1, n)
		assert.True(t, qerr.HasCode(err, qerr.CodeValueOutOfRange), "Range() with %d points: %v", n, err)

		_, err = Sample(math.Abs, Bounds{-1, 1, n})
		assert.True(t, qerr.HasCode(err, qerr.CodeValueOutOfRange), "Sample() with %d points: %v", n, err)
	}
}

func TestSampleSkipsOverflowInExtent(t *testing.T) {
	huge := func(x float64) float64 { return 1e308 * x * x }

	curve, err := Sample(huge, Bounds{XMin: -10, XMax: 10, Points: 201})
	require.NoError(t, err)
	assert.Len(t, curve.Points, 201)
	assert.True(t, math.IsInf(curve.Points[0].Y, 1))
	assert.Equal(t, 0.0, curve.YMin)
	assert.False(t, math.IsInf(curve.YMax, 0), "YMax = %v", curve.YMax)
	assert.LessOrEqual(t, curve.YMax, math.MaxFloat64)
}

func TestSampleWithoutFiniteValue(t *testing.T) {
	_, err := Sample(func(float64) float64 { return math.Inf(1) }, Bounds{XMin: 0, XMax: 1, Points: 10})
	assert.True(t, qerr.HasCode(err, qerr.CodeDegenerate), "err = %v", err)
}

func TestDownsample(t *testing.T) {
	curve, err := Sample(func(x float64) float64 { return -x }, Bounds{XMin: 0, XMax: 100, Points: 101})
	require.NoError(t, err)

	small := curve.Downsample(11)
	require.Len(t, small.Points, 11)
	assert.Equal(t, Point{0, 0}, small.Points[0])
	assert.Equal(t, Point{100, -100}, small.Points[10])
	assert.Equal(t, Point{50, -50}, small.Points[5])
	assert.Equal(t, curve.YMin, small.YMin)
	assert.Equal(t, curve.YMax, small.YMax)

	assert.Len(t, curve.Downsample(500).Points, 101)
	assert.Len(t, curve.Downsample(1).Points, 101)
}
