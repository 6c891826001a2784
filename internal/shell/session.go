// ============================================================================
// trinom - Études de fonctions trinômes du second degré
// ============================================================================
//
// Package:     shell
// Description: Menu actions shared by the line shell and the TUI, and the
//              line-based menu loop
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package shell

import (
	"strconv"
	"strings"

	qerr "github.com/msto63/trinom/pkg/core/error"
	qlog "github.com/msto63/trinom/pkg/core/log"

	"github.com/msto63/trinom/internal/plot"
	"github.com/msto63/trinom/internal/report"
	"github.com/msto63/trinom/internal/sampler"
	"github.com/msto63/trinom/internal/trinomial"
)

// Form is the way a trinomial is given for direct evaluation
type Form int

const (
	FormDeveloped Form = iota // a, b, c
	FormCanonical             // a, α, β
	FormFactored              // a, x1, x2
)

// Forms lists the evaluation forms in menu order
var Forms = []Form{FormDeveloped, FormCanonical, FormFactored}

func (f Form) String() string {
	switch f {
	case FormCanonical:
		return "canonical"
	case FormFactored:
		return "factored"
	default:
		return "developed"
	}
}

// Params returns the names of the three constants prompted for the form.
func (f Form) Params() [3]string {
	switch f {
	case FormCanonical:
		return [3]string{"a", "α", "β"}
	case FormFactored:
		return [3]string{"a", "x1", "x2"}
	default:
		return [3]string{"a", "b", "c"}
	}
}

// ParseForm accepts the names returned by Form.String.
func ParseForm(s string) (Form, error) {
	for _, f := range Forms {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return FormDeveloped, qerr.InvalidInput("shell.ParseForm", s, nil)
}

// Function is a trinomial given in one of the evaluation forms
type Function struct {
	Form   Form
	Params [3]float64
	Expr   string
}

// Eval evaluates the function with the evaluator of its own form.
func (fn Function) Eval(x float64) float64 {
	p := fn.Params
	switch fn.Form {
	case FormCanonical:
		return trinomial.CanonicalValue(p[0], p[1], p[2], x)
	case FormFactored:
		return trinomial.FactoredValue(p[0], p[1], p[2], x)
	default:
		return trinomial.Developed(p[0], p[1], p[2], x)
	}
}

// Options configures a session
type Options struct {
	Defaults       sampler.Bounds
	TerminalWidth  int
	TerminalHeight int
}

// Session runs the menu actions. It holds no state between actions.
type Session struct {
	tr     report.Translator
	gen    *report.Generator
	logger *qlog.Logger
	opts   Options
}

// NewSession creates a session narrating through tr.
func NewSession(tr report.Translator, logger *qlog.Logger, opts Options) *Session {
	if logger == nil {
		logger = qlog.Discard()
	}
	if opts.TerminalWidth == 0 {
		opts.TerminalWidth = 72
	}
	if opts.TerminalHeight == 0 {
		opts.TerminalHeight = 20
	}
	return &Session{
		tr:     tr,
		gen:    report.NewGenerator(tr, logger),
		logger: logger.WithName("shell"),
		opts:   opts,
	}
}

// T translates a catalog key.
func (s *Session) T(key string, data ...map[string]interface{}) string {
	return s.tr.T(key, data...)
}

// Defaults returns the plotting bounds used for blank answers.
func (s *Session) Defaults() sampler.Bounds {
	return s.opts.Defaults
}

// Study reports on t and samples its graph on b.
func (s *Session) Study(t trinomial.Trinomial, b sampler.Bounds) (*report.Report, *plot.Figure, error) {
	r, err := s.gen.Generate(t, b)
	if err != nil {
		return nil, nil, err
	}
	fig, err := plot.NewFigure(t, b)
	if err != nil {
		return nil, nil, err
	}
	s.logger.WithCorrelationID(r.ID).Info("study completed",
		qlog.String("trinomial", t.String()),
		qlog.Int("points", b.Points))
	return r, fig, nil
}

// Graph renders fig for the terminal.
func (s *Session) Graph(fig *plot.Figure) string {
	return fig.Terminal(s.opts.TerminalWidth, s.opts.TerminalHeight)
}

// Function builds the function of the given form. The canonical and
// factored forms only exist for a trinomial of degree 2, so a zero leading
// coefficient is a degenerate computation for them.
func (s *Session) Function(form Form, params [3]float64) (Function, error) {
	a := params[0]
	fn := Function{Form: form, Params: params}
	switch form {
	case FormCanonical:
		if a == 0 {
			return Function{}, qerr.Degenerate("shell.Function", "a must not be zero for the canonical form")
		}
		fn.Expr = trinomial.Canonical{Alpha: params[1], Beta: params[2]}.Expression(a)
	case FormFactored:
		if a == 0 {
			return Function{}, qerr.Degenerate("shell.Function", "a must not be zero for the factored form")
		}
		fn.Expr = trinomial.FactoredExpression(a, params[1:])
	default:
		fn.Expr = trinomial.New(params[0], params[1], params[2]).String()
	}
	return fn, nil
}

// Header returns the "f: x ↦ ..." line of an expression.
func (s *Session) Header(expr string) string {
	return s.T("report.header", map[string]interface{}{"Expr": expr})
}

// Result returns the "f(x)=y" line of an evaluation.
func (s *Session) Result(x, y float64) string {
	return s.T("shell.eval_result", map[string]interface{}{
		"X": trinomial.FormatNumber(x),
		"Y": trinomial.FormatNumber(y),
	})
}

// codeMessages gives the catalog key of errors built without one.
var codeMessages = map[qerr.Code]string{
	qerr.CodeInvalidInput:    "errors.invalid_input",
	qerr.CodeDegenerate:      "errors.degenerate",
	qerr.CodeValueOutOfRange: "errors.out_of_range",
}

// Fail logs err and returns the message shown to the user before going back
// to the menu. The message comes from the error's catalog key, then from its
// code, and is generic otherwise. Error details fill the message template.
func (s *Session) Fail(err error) string {
	s.logger.LogError(err)

	key := qerr.GetMessageKey(err)
	if key == "" {
		key = codeMessages[qerr.GetCode(err)]
	}
	if key == "" {
		key = "errors.generic"
	}
	return s.T(key, qerr.GetDetails(err))
}

// Recovered turns a panic value caught at a menu boundary into an internal
// error, so that the menu can report it like any other failure.
func Recovered(operation string, v interface{}) error {
	if err, ok := v.(error); ok {
		return qerr.Wrap(err, "unexpected failure").
			WithCode(qerr.CodeInternal).
			WithOperation(operation)
	}
	return qerr.Newf("unexpected failure: %v", v).
		WithCode(qerr.CodeInternal).
		WithOperation(operation)
}

// ParseBounds reads the plotting answers. A blank answer keeps the default.
func ParseBounds(xmin, xmax, points string, defaults sampler.Bounds) (sampler.Bounds, error) {
	b := defaults
	var err error
	if strings.TrimSpace(xmin) != "" {
		if b.XMin, err = trinomial.ParseNumber(xmin); err != nil {
			return b, err
		}
	}
	if strings.TrimSpace(xmax) != "" {
		if b.XMax, err = trinomial.ParseNumber(xmax); err != nil {
			return b, err
		}
	}
	if p := strings.TrimSpace(points); p != "" {
		n, err := strconv.Atoi(strings.ReplaceAll(p, "_", ""))
		if err != nil {
			return b, qerr.InvalidInput("shell.ParseBounds", points, err)
		}
		b.Points = n
	}
	return b, b.Validate()
}
