package trinomial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerr "github.com/msto63/trinom/pkg/core/error"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{3, "3"},
		{-3, "-3"},
		{1000000, "1000000"},
		{2.5, "2.5"},
		{-0.125, "-0.125"},
		{1.0 / 3, "0.3333333333333333"},
		{1e-7, "1e-07"},
		{1e22, "1e+22"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+2", FormatSigned(2))
	assert.Equal(t, "+0", FormatSigned(0))
	assert.Equal(t, "+0", FormatSigned(math.Copysign(0, -1)))
	assert.Equal(t, "-1.5", FormatSigned(-1.5))
}

func TestExpressions(t *testing.T) {
	tr := New(1, -3, 2)
	assert.Equal(t, "1x²-3x+2", tr.String())
	assert.Equal(t, "0x²+0x+5", New(0, 0, 5).String())
	assert.Equal(t, "2x-1", New(0, 2, -1).AffineString())

	canon, err := New(2, -4, 5).Canonical()
	assert.NoError(t, err)
	assert.Equal(t, "2(x-1)²+3", canon.Expression(2))

	canon, err = New(1, 0, 0).Canonical()
	assert.NoError(t, err)
	assert.Equal(t, "1(x+0)²+0", canon.Expression(1))

	assert.Equal(t, "1(x-1)(x-2)", FactoredExpression(1, []float64{1, 2}))
	assert.Equal(t, "-1(x+1)(x-1)", FactoredExpression(-1, []float64{-1, 1}))
	assert.Equal(t, "1(x-2)²", FactoredExpression(1, []float64{2}))
	assert.Equal(t, "", FactoredExpression(1, nil))
}

func TestParseNumber(t *testing.T) {
	valid := map[string]float64{
		"3":      3,
		" -2.5 ": -2.5,
		"0,25":   0.25,
		"1e3":    1000,
		"-0":     0,
	}
	for in, want := range valid {
		got, err := ParseNumber(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "1,2,3", "NaN", "inf", "2x"} {
		_, err := ParseNumber(in)
		assert.True(t, qerr.HasCode(err, qerr.CodeInvalidInput), "ParseNumber(%q) error = %v", in, err)
	}
}
