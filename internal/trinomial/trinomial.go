// Package trinomial evaluates real quadratic functions f(x)=ax²+bx+c in their
// developed, canonical and factored forms and derives their discriminant,
// real roots and vertex.
package trinomial

import (
	"math"

	qerr "github.com/msto63/trinom/pkg/core/error"
)

// Trinomial is the immutable coefficient triple of f(x)=ax²+bx+c.
type Trinomial struct {
	A, B, C float64
}

// New returns the trinomial ax²+bx+c.
func New(a, b, c float64) Trinomial {
	return Trinomial{A: a, B: b, C: c}
}

// Canonical holds the vertex (α, β) of f(x)=a(x-α)²+β.
type Canonical struct {
	Alpha, Beta float64
}

// Discriminant returns b²-4ac.
func Discriminant(a, b, c float64) float64 {
	return b*b - 4*a*c
}

// Roots returns the real roots of ax²+bx+c in ascending order: none when the
// discriminant is negative, one when it is zero, two otherwise. a must be
// non-zero; Roots returns nil when it is not.
func Roots(a, b, c float64) []float64 {
	if a == 0 {
		return nil
	}

	delta := Discriminant(a, b, c)
	switch {
	case delta < 0:
		return []float64{}
	case delta == 0:
		return []float64{-b / (2 * a)}
	}

	// q keeps the sign of b so that the two roots are never computed as a
	// difference of nearly equal numbers.
	q := -0.5 * (b + math.Copysign(math.Sqrt(delta), b))
	x1, x2 := q/a, c/q
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return []float64{x1, x2}
}

// CanonicalForm returns α=-b/2a and β=-Δ/4a. It fails with a degenerate
// computation error when a is zero.
func CanonicalForm(a, b, c float64) (Canonical, error) {
	if a == 0 {
		return Canonical{}, qerr.Degenerate("trinomial.CanonicalForm", "a must not be zero for the canonical form").
			WithDetail("b", b).
			WithDetail("c", c)
	}
	return Canonical{
		Alpha: -b / (2 * a),
		Beta:  -Discriminant(a, b, c) / (4 * a),
	}, nil
}

// Developed evaluates ax²+bx+c.
func Developed(a, b, c, x float64) float64 {
	return a*x*x + b*x + c
}

// CanonicalValue evaluates a(x-α)²+β.
func CanonicalValue(a, alpha, beta, x float64) float64 {
	d := x - alpha
	return a*d*d + beta
}

// FactoredValue evaluates a(x-x1)(x-x2).
func FactoredValue(a, x1, x2, x float64) float64 {
	return a * (x - x1) * (x - x2)
}

// Discriminant returns b²-4ac.
func (t Trinomial) Discriminant() float64 {
	return Discriminant(t.A, t.B, t.C)
}

// Roots returns the real roots in ascending order, or a degenerate
// computation error when the function is not of degree 2.
func (t Trinomial) Roots() ([]float64, error) {
	if t.A == 0 {
		return nil, qerr.Degenerate("trinomial.Roots", "a must not be zero for the quadratic formula")
	}
	return Roots(t.A, t.B, t.C), nil
}

// Canonical returns the vertex of the parabola.
func (t Trinomial) Canonical() (Canonical, error) {
	return CanonicalForm(t.A, t.B, t.C)
}

// Eval evaluates the developed form at x.
func (t Trinomial) Eval(x float64) float64 {
	return Developed(t.A, t.B, t.C, x)
}

// IsQuadratic reports whether a is non-zero.
func (t Trinomial) IsQuadratic() bool {
	return t.A != 0
}

// Degree classifies the function.
func (t Trinomial) Degree() Degree {
	switch {
	case t.A != 0:
		return DegreeQuadratic
	case t.B != 0 && t.C != 0:
		return DegreeAffine
	case t.B != 0:
		return DegreeLinear
	case t.C != 0:
		return DegreeConstant
	default:
		return DegreeZero
	}
}

// Parity returns the symmetry of f about x=0.
func (t Trinomial) Parity() Parity {
	switch t.Degree() {
	case DegreeQuadratic:
		if t.B == 0 {
			return ParityEven
		}
		return ParityNeither
	case DegreeLinear:
		return ParityOdd
	case DegreeConstant:
		return ParityEven
	case DegreeZero:
		return ParityEvenAndOdd
	default:
		return ParityNeither
	}
}

// Degree classifies a trinomial by which of its coefficients vanish.
type Degree int

const (
	DegreeQuadratic Degree = iota // a≠0
	DegreeAffine                  // a=0, b≠0, c≠0
	DegreeLinear                  // a=0, b≠0, c=0
	DegreeConstant                // a=0, b=0, c≠0
	DegreeZero                    // a=b=c=0
)

func (d Degree) String() string {
	switch d {
	case DegreeQuadratic:
		return "quadratic"
	case DegreeAffine:
		return "affine"
	case DegreeLinear:
		return "linear"
	case DegreeConstant:
		return "constant"
	case DegreeZero:
		return "zero"
	default:
		return "unknown"
	}
}

// Parity is the symmetry of a function about the y axis.
type Parity int

const (
	ParityNeither Parity = iota
	ParityEven
	ParityOdd
	ParityEvenAndOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	case ParityEvenAndOdd:
		return "even and odd"
	default:
		return "neither"
	}
}
