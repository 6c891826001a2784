// ============================================================================
// trinom - Études de fonctions trinômes du second degré
// ============================================================================
//
// Package:     report
// Description: Narrated study of a trinomial, built as an ordered sequence
//              of sections over precomputed values
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	qerr "github.com/msto63/trinom/pkg/core/error"
	qlog "github.com/msto63/trinom/pkg/core/log"

	"github.com/msto63/trinom/internal/sampler"
	"github.com/msto63/trinom/internal/trinomial"
)

// Translator resolves catalog keys. *i18n.Manager satisfies it.
type Translator interface {
	T(key string, data ...map[string]interface{}) string
}

// SectionKind identifies a section of the report
type SectionKind int

const (
	SectionDegree SectionKind = iota
	SectionRoots
	SectionFactored
	SectionCanonical
	SectionVariation
	SectionSign
	SectionParity
	SectionGraph
)

func (k SectionKind) String() string {
	switch k {
	case SectionDegree:
		return "degree"
	case SectionRoots:
		return "roots"
	case SectionFactored:
		return "factored"
	case SectionCanonical:
		return "canonical"
	case SectionVariation:
		return "variation"
	case SectionSign:
		return "sign"
	case SectionParity:
		return "parity"
	case SectionGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// Section is one titled paragraph of the report, optionally followed by a
// table drawn for a monospace font.
type Section struct {
	Kind  SectionKind
	Title string
	Lines []string
	Table string
}

// Study holds every value the sections narrate. The derived values are
// computed once by NewStudy; sections only format them.
type Study struct {
	ID        string
	Trinomial trinomial.Trinomial
	Delta     float64
	Roots     []float64
	Canonical trinomial.Canonical
	Bounds    sampler.Bounds
}

// NewStudy derives the discriminant, roots and vertex of t. Only the
// plotting bounds are checked for a function that is not of degree 2.
func NewStudy(t trinomial.Trinomial, bounds sampler.Bounds) (*Study, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	s := &Study{
		ID:        uuid.NewString(),
		Trinomial: t,
		Bounds:    bounds,
	}
	if !t.IsQuadratic() {
		return s, nil
	}

	s.Delta = t.Discriminant()
	roots, err := t.Roots()
	if err != nil {
		return nil, err
	}
	s.Roots = roots
	if s.Canonical, err = t.Canonical(); err != nil {
		return nil, err
	}
	return s, nil
}

// Report is the narrated result of a study
type Report struct {
	ID        string
	Trinomial trinomial.Trinomial
	Header    string
	Sections  []Section
}

// Section returns the section of the given kind, if the report has one.
func (r *Report) Section(kind SectionKind) (Section, bool) {
	for _, s := range r.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Text returns the plain-text narration.
func (r *Report) Text() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the header and every section, each title indented by a tab
// and preceded by a blank line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(s string) error {
		n, err := io.WriteString(w, s)
		total += int64(n)
		return err
	}

	if err := write(r.Header + "\n"); err != nil {
		return total, err
	}
	for _, s := range r.Sections {
		if err := write("\n\t" + s.Title + "\n"); err != nil {
			return total, err
		}
		for _, line := range s.Lines {
			if err := write(line + "\n"); err != nil {
				return total, err
			}
		}
		if s.Table != "" {
			if err := write(s.Table + "\n"); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Generator turns a study into a report
type Generator struct {
	tr     Translator
	logger *qlog.Logger
}

// NewGenerator creates a generator narrating through tr. A nil logger
// discards log output.
func NewGenerator(tr Translator, logger *qlog.Logger) *Generator {
	if logger == nil {
		logger = qlog.Discard()
	}
	return &Generator{tr: tr, logger: logger.WithName("report")}
}

// Generate studies t on the given plotting bounds.
func (g *Generator) Generate(t trinomial.Trinomial, bounds sampler.Bounds) (*Report, error) {
	study, err := NewStudy(t, bounds)
	if err != nil {
		return nil, qerr.Wrap(err, "cannot study trinomial").WithOperation("report.Generate")
	}
	return g.Narrate(study), nil
}

// Narrate runs the section sequence of s.
func (g *Generator) Narrate(s *Study) *Report {
	log := g.logger.WithCorrelationID(s.ID)
	timer := log.StartTimer("narrate").WithField("degree", s.Trinomial.Degree().String())
	defer timer.Stop()

	expr := s.Trinomial.String()
	if !s.Trinomial.IsQuadratic() {
		expr = s.Trinomial.AffineString()
	}

	r := &Report{
		ID:        s.ID,
		Trinomial: s.Trinomial,
		Header:    g.tr.T("report.header", map[string]interface{}{"Expr": expr}),
	}
	for _, section := range g.sequence(s.Trinomial) {
		r.Sections = append(r.Sections, section(s))
	}

	log.Debug("study narrated",
		qlog.Float64("delta", s.Delta),
		qlog.Int("roots", len(s.Roots)),
		qlog.Int("sections", len(r.Sections)))
	return r
}

// sequence returns the sections narrated for t, in order. A function that
// is not of degree 2 only gets its classification and its graph.
func (g *Generator) sequence(t trinomial.Trinomial) []func(*Study) Section {
	if !t.IsQuadratic() {
		return []func(*Study) Section{g.degree, g.graph}
	}
	return []func(*Study) Section{
		g.degree,
		g.roots,
		g.factored,
		g.canonical,
		g.variation,
		g.sign,
		g.parity,
		g.graph,
	}
}

type data = map[string]interface{}

func num(n float64) string {
	return trinomial.FormatNumber(n)
}

func (g *Generator) degree(s *Study) Section {
	sec := Section{Kind: SectionDegree, Title: g.tr.T("report.degree.title")}
	t := s.Trinomial
	if t.IsQuadratic() {
		sec.Lines = []string{g.tr.T("report.degree.quadratic")}
		return sec
	}

	sec.Lines = []string{
		g.tr.T("report.degree.affine"),
		g.tr.T("report.degree.expr", data{"Expr": t.AffineString()}),
	}
	switch t.Degree() {
	case trinomial.DegreeLinear:
		sec.Lines = append(sec.Lines, g.tr.T("report.degree.linear"))
	case trinomial.DegreeConstant:
		sec.Lines = append(sec.Lines, g.tr.T("report.degree.constant"))
	case trinomial.DegreeZero:
		sec.Lines = append(sec.Lines, g.tr.T("report.degree.linear"), g.tr.T("report.degree.constant"))
	}

	switch t.Parity() {
	case trinomial.ParityOdd:
		sec.Lines = append(sec.Lines, g.tr.T("report.degree.odd"))
	case trinomial.ParityEven:
		sec.Lines = append(sec.Lines, g.tr.T("report.degree.even"))
	case trinomial.ParityEvenAndOdd:
		sec.Lines = append(sec.Lines, g.tr.T("report.degree.even_and_odd"))
	default:
		sec.Lines = append(sec.Lines, g.tr.T("report.degree.neither"))
	}
	return sec
}

func (g *Generator) roots(s *Study) Section {
	sec := Section{Kind: SectionRoots, Title: g.tr.T("report.roots.title")}
	sec.Lines = []string{g.tr.T("report.roots.delta", data{"Delta": num(s.Delta)})}

	switch len(s.Roots) {
	case 0:
		sec.Lines = append(sec.Lines, g.tr.T("report.roots.none"))
		return sec
	case 1:
		sec.Lines = append(sec.Lines, g.tr.T("report.roots.one", data{"X0": num(s.Roots[0])}))
	default:
		sec.Lines = append(sec.Lines, g.tr.T("report.roots.two", data{"X1": num(s.Roots[0]), "X2": num(s.Roots[1])}))
	}

	sec.Lines = append(sec.Lines, g.tr.T("report.roots.meaning"))
	for _, r := range s.Roots {
		sec.Lines = append(sec.Lines, g.tr.T("report.roots.zero", data{"X": num(r)}))
	}
	return sec
}

func (g *Generator) factored(s *Study) Section {
	sec := Section{Kind: SectionFactored, Title: g.tr.T("report.factored.title")}
	if len(s.Roots) == 0 {
		sec.Lines = []string{g.tr.T("report.factored.none")}
		return sec
	}
	expr := trinomial.FactoredExpression(s.Trinomial.A, s.Roots)
	sec.Lines = []string{g.tr.T("report.factored.some", data{"Expr": expr})}
	return sec
}

func (g *Generator) canonical(s *Study) Section {
	a := s.Trinomial.A
	return Section{
		Kind:  SectionCanonical,
		Title: g.tr.T("report.canonical.title"),
		Lines: []string{
			g.tr.T("report.canonical.intro", data{
				"A":     num(a),
				"Alpha": num(s.Canonical.Alpha),
				"Beta":  num(s.Canonical.Beta),
			}),
			g.tr.T("report.canonical.expr", data{"Expr": s.Canonical.Expression(a)}),
		},
	}
}

func (g *Generator) variation(s *Study) Section {
	kind := "min"
	if s.Trinomial.A < 0 {
		kind = "max"
	}
	d := data{"Alpha": num(s.Canonical.Alpha), "Beta": num(s.Canonical.Beta)}

	return Section{
		Kind:  SectionVariation,
		Title: g.tr.T("report.variation.title"),
		Lines: []string{
			g.tr.T("report.variation.extremum"),
			g.tr.T("report.variation." + kind + "_reason"),
			g.tr.T("report.variation."+kind, d),
			g.tr.T("report.variation."+kind+"_sense", d),
		},
		Table: variationTable(s.Trinomial.A),
	}
}

func (g *Generator) sign(s *Study) Section {
	sec := Section{Kind: SectionSign, Title: g.tr.T("report.sign.title")}
	if s.Trinomial.A > 0 {
		sec.Lines = []string{g.tr.T("report.sign.positive")}
	} else {
		sec.Lines = []string{g.tr.T("report.sign.negative")}
	}

	switch len(s.Roots) {
	case 0:
		sec.Lines = append(sec.Lines, g.tr.T("report.sign.none"))
	case 1:
		sec.Lines = append(sec.Lines, g.tr.T("report.sign.one", data{"X0": num(s.Roots[0])}))
	default:
		sec.Lines = append(sec.Lines, g.tr.T("report.sign.two", data{"X1": num(s.Roots[0]), "X2": num(s.Roots[1])}))
	}
	sec.Table = signTable(s.Trinomial.A, len(s.Roots))
	return sec
}

func (g *Generator) parity(s *Study) Section {
	key := "report.parity.neither"
	if s.Canonical.Alpha == 0 {
		key = "report.parity.even"
	}
	return Section{
		Kind:  SectionParity,
		Title: g.tr.T("report.parity.title"),
		Lines: []string{g.tr.T(key)},
	}
}

func (g *Generator) graph(s *Study) Section {
	b := s.Bounds
	interval := data{"XMin": num(b.XMin), "XMax": num(b.XMax)}
	return Section{
		Kind:  SectionGraph,
		Title: g.tr.T("report.graph.title"),
		Lines: []string{
			g.tr.T("report.graph.interval"),
			g.tr.T("report.graph.xmin", interval),
			g.tr.T("report.graph.xmax", interval),
			g.tr.T("report.graph.points", data{"Points": fmt.Sprint(b.Points)}),
			g.tr.T("report.graph.display", interval),
		},
	}
}
