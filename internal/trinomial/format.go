package trinomial

import (
	"math"
	"strconv"
	"strings"

	qerr "github.com/msto63/trinom/pkg/core/error"
)

// ParseNumber reads a real number typed by a user. Surrounding blanks are
// ignored and a comma is accepted as decimal separator. Anything else,
// including NaN and infinities, is an invalid input error.
func ParseNumber(s string) (float64, error) {
	text := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		err = strconv.ErrSyntax
	}
	if err != nil {
		return 0, qerr.InvalidInput("trinomial.ParseNumber", s, err)
	}
	return f, nil
}

// FormatNumber prints integral values without a fractional part ("3" rather
// than "3.0") and other values in their shortest exact representation.
// Negative zero prints as "0".
func FormatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// FormatSigned is FormatNumber with an explicit "+" for values ≥ 0, for use
// between the terms of an expression.
func FormatSigned(n float64) string {
	s := FormatNumber(n)
	if n >= 0 {
		return "+" + s
	}
	return s
}

// String returns the developed expression, e.g. "1x²-3x+2".
func (t Trinomial) String() string {
	return FormatNumber(t.A) + "x²" + FormatSigned(t.B) + "x" + FormatSigned(t.C)
}

// AffineString returns bx+c, the expression left when a is zero.
func (t Trinomial) AffineString() string {
	return FormatNumber(t.B) + "x" + FormatSigned(t.C)
}

// Expression returns a(x-α)²+β with the given leading coefficient.
func (c Canonical) Expression(a float64) string {
	return FormatNumber(a) + "(x" + FormatSigned(-c.Alpha) + ")²" + FormatSigned(c.Beta)
}

// FactoredExpression returns a(x-x1)(x-x2), a(x-x0)² for a double root, and
// an empty string when there are no real roots.
func FactoredExpression(a float64, roots []float64) string {
	var sb strings.Builder
	switch len(roots) {
	case 1:
		sb.WriteString(FormatNumber(a))
		sb.WriteString("(x" + FormatSigned(-roots[0]) + ")²")
	case 2:
		sb.WriteString(FormatNumber(a))
		sb.WriteString("(x" + FormatSigned(-roots[0]) + ")")
		sb.WriteString("(x" + FormatSigned(-roots[1]) + ")")
	}
	return sb.String()
}
