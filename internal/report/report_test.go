package report

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerr "github.com/msto63/trinom/pkg/core/error"
	"github.com/msto63/trinom/pkg/core/i18n"

	"github.com/msto63/trinom/internal/sampler"
	"github.com/msto63/trinom/internal/trinomial"
	"github.com/msto63/trinom/locales"
)

var defaultBounds = sampler.Bounds{XMin: -100, XMax: 100, Points: 1_000_000}

func newGenerator(t *testing.T, locale string) *Generator {
	t.Helper()
	m, err := i18n.New(i18n.Options{DefaultLocale: "fr", FS: locales.FS})
	require.NoError(t, err)
	require.NoError(t, m.SetLocale(locale))
	return NewGenerator(m, nil)
}

func kinds(r *Report) []SectionKind {
	out := make([]SectionKind, len(r.Sections))
	for i, s := range r.Sections {
		out[i] = s.Kind
	}
	return out
}

func TestGenerateSectionOrder(t *testing.T) {
	g := newGenerator(t, "fr")

	tests := []struct {
		name string
		t    trinomial.Trinomial
		want []SectionKind
	}{
		{
			name: "quadratic",
			t:    trinomial.New(1, -3, 2),
			want: []SectionKind{
				SectionDegree, SectionRoots, SectionFactored, SectionCanonical,
				SectionVariation, SectionSign, SectionParity, SectionGraph,
			},
		},
		{"affine", trinomial.New(0, 2, 1), []SectionKind{SectionDegree, SectionGraph}},
		{"constant", trinomial.New(0, 0, 4), []SectionKind{SectionDegree, SectionGraph}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := g.Generate(tt.t, defaultBounds)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, kinds(r)); diff != "" {
				t.Errorf("section order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateTwoRoots(t *testing.T) {
	g := newGenerator(t, "fr")
	r, err := g.Generate(trinomial.New(1, -3, 2), defaultBounds)
	require.NoError(t, err)

	assert.Equal(t, "f: x ↦ 1x²-3x+2", r.Header)
	assert.NotEmpty(t, r.ID)

	roots, ok := r.Section(SectionRoots)
	require.True(t, ok)
	assert.Equal(t, "Discriminant de l'équation f(x)=0 : Δ=1", roots.Lines[0])
	assert.Contains(t, roots.Lines, "Δ>0 donc f a deux racines réelles : x1=1 et x2=2")
	assert.Contains(t, roots.Lines, "f(1)=0")
	assert.Contains(t, roots.Lines, "f(2)=0")

	factored, _ := r.Section(SectionFactored)
	assert.Equal(t, []string{"L'écriture de f peut être factorisée : f(x)=1(x-1)(x-2)"}, factored.Lines)

	canonical, _ := r.Section(SectionCanonical)
	assert.Equal(t, "f(x)=1(x-1.5)²-0.25", canonical.Lines[1])

	variation, _ := r.Section(SectionVariation)
	assert.Contains(t, variation.Lines, "Cet extremum est un minimum car a>0.")
	assert.Contains(t, variation.Table, "↘  β  ↗")

	sign, _ := r.Section(SectionSign)
	assert.Contains(t, sign.Table, "+   0   -   0   +")

	parity, _ := r.Section(SectionParity)
	assert.Equal(t, []string{"On a α≠0 donc f n'est ni paire ni impaire."}, parity.Lines)
}

func TestGenerateNegativeLeadingCoefficient(t *testing.T) {
	g := newGenerator(t, "fr")
	r, err := g.Generate(trinomial.New(-1, 0, 4), defaultBounds)
	require.NoError(t, err)

	variation, _ := r.Section(SectionVariation)
	assert.Contains(t, variation.Lines, "Ainsi la fonction f atteint sur ℝ un maximum de 4 en 0")
	assert.Contains(t, variation.Table, "↗  β  ↘")

	sign, _ := r.Section(SectionSign)
	assert.Contains(t, sign.Table, "-   0   +   0   -")

	parity, _ := r.Section(SectionParity)
	assert.Equal(t, []string{"On a α=0 donc f est une fonction paire."}, parity.Lines)
}

func TestGenerateNoRealRoots(t *testing.T) {
	g := newGenerator(t, "fr")
	r, err := g.Generate(trinomial.New(1, 2, 3), defaultBounds)
	require.NoError(t, err)

	roots, _ := r.Section(SectionRoots)
	assert.Equal(t, []string{
		"Discriminant de l'équation f(x)=0 : Δ=-8",
		"Δ<0 donc f n'a pas de racines réelles.",
	}, roots.Lines)

	factored, _ := r.Section(SectionFactored)
	assert.Equal(t, []string{"L'écriture de f ne peut être factorisée, n'ayant aucune racine réelle."}, factored.Lines)

	sign, _ := r.Section(SectionSign)
	assert.Contains(t, sign.Lines, "Or f n'a aucune racine.")
	assert.NotContains(t, sign.Table, "x1")
}

func TestGenerateDoubleRoot(t *testing.T) {
	g := newGenerator(t, "fr")
	r, err := g.Generate(trinomial.New(1, 0, 0), defaultBounds)
	require.NoError(t, err)

	roots, _ := r.Section(SectionRoots)
	assert.Contains(t, roots.Lines, "Δ=0 donc f a une unique racine réelle : x1=x2=0")

	sign, _ := r.Section(SectionSign)
	assert.Contains(t, sign.Lines, "Or f a pour unique racine : x1=0")
	assert.Contains(t, sign.Table, "+   0   +")
}

func TestGenerateDegreeClassification(t *testing.T) {
	g := newGenerator(t, "fr")

	tests := []struct {
		name string
		t    trinomial.Trinomial
		want []string
	}{
		{"affine", trinomial.New(0, 2, 1), []string{"f(x)=2x+1", "f n'est ni paire ni impaire."}},
		{"linear", trinomial.New(0, 2, 0), []string{"De plus c=0, donc f est une fonction linéaire.", "De ce fait, f est une fonction impaire."}},
		{"constant", trinomial.New(0, 0, 3), []string{"De plus b=0, donc f est une fonction constante.", "De ce fait, f est une fonction paire."}},
		{"zero", trinomial.New(0, 0, 0), []string{"f est la fonction nulle : elle est à la fois paire et impaire."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := g.Generate(tt.t, defaultBounds)
			require.NoError(t, err)

			degree, ok := r.Section(SectionDegree)
			require.True(t, ok)
			assert.Equal(t, "a=0, donc f n'est pas de degré 2. Cela signifie que c'est une fonction affine.", degree.Lines[0])
			for _, line := range tt.want {
				assert.Contains(t, degree.Lines, line)
			}
		})
	}
}

func TestGenerateInvalidBounds(t *testing.T) {
	g := newGenerator(t, "fr")

	_, err := g.Generate(trinomial.New(1, 0, 0), sampler.Bounds{XMin: 0, XMax: 1, Points: 1})
	assert.True(t, qerr.HasCode(err, qerr.CodeDegenerate), "got %v", err)

	_, err = g.Generate(trinomial.New(1, 0, 0), sampler.Bounds{XMin: 1, XMax: 1, Points: 10})
	assert.True(t, qerr.HasCode(err, qerr.CodeDegenerate), "got %v", err)
}

func TestWriteTo(t *testing.T) {
	g := newGenerator(t, "en")
	r, err := g.Generate(trinomial.New(1, -3, 2), sampler.Bounds{XMin: -5, XMax: 5, Points: 11})
	require.NoError(t, err)

	var sb strings.Builder
	n, err := r.WriteTo(&sb)
	require.NoError(t, err)
	out := sb.String()

	assert.Equal(t, int64(len(out)), n)
	assert.True(t, strings.HasPrefix(out, "f: x ↦ 1x²-3x+2\n"))
	assert.Contains(t, out, "\n\tRoots\n")
	assert.Contains(t, out, "and 11 plotted points")
	assert.Equal(t, out, r.Text())

	// titles appear in section order
	last := -1
	for _, title := range []string{"Degree", "Roots", "Factored form", "Canonical form", "Variations", "Sign", "Parity", "Graph"} {
		idx := strings.Index(out, "\n\t"+title)
		require.GreaterOrEqual(t, idx, 0, title)
		assert.Greater(t, idx, last, title)
		last = idx
	}
}

func TestNewStudy(t *testing.T) {
	s, err := NewStudy(trinomial.New(2, -4, -6), defaultBounds)
	require.NoError(t, err)

	assert.Equal(t, 64.0, s.Delta)
	assert.Equal(t, []float64{-1, 3}, s.Roots)
	assert.Equal(t, trinomial.Canonical{Alpha: 1, Beta: -8}, s.Canonical)

	other, err := NewStudy(trinomial.New(2, -4, -6), defaultBounds)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
}
