package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/msto63/trinom/internal/trinomial"
)

// errQuit ends the menu loop when the input is exhausted or unreadable.
var errQuit = errors.New("input closed")

// Shell is the line-based menu. It reads answers one line at a time, so it
// works on a terminal as well as on piped input.
type Shell struct {
	session *Session
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a shell reading from in and writing to out.
func New(session *Session, in io.Reader, out io.Writer) *Shell {
	return &Shell{session: session, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user chooses 0, the input ends or ctx is
// cancelled. Failures of an action are reported and the menu is shown again.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sh.menu()
		quit, err := sh.choose()
		if errors.Is(err, errQuit) || quit {
			sh.println(sh.session.T("menu.bye"))
			return sh.in.Err()
		}
		if err != nil {
			sh.println("\n" + sh.session.Fail(err))
		}
		sh.println("")
	}
}

func (sh *Shell) menu() {
	s := sh.session
	sh.println(strings.TrimRight(s.T("menu.banner"), "\n"))
	sh.println("")
	sh.println(s.T("menu.greeting"))
	for i, key := range []string{"menu.study", "menu.developed", "menu.canonical", "menu.factored"} {
		sh.println(fmt.Sprintf("  %d - %s", i+1, s.T(key)))
	}
	sh.println("  0 - " + s.T("menu.quit"))
}

// choose prompts until a known choice is entered and runs it. A panic in the
// action is returned as an internal error.
func (sh *Shell) choose() (quit bool, err error) {
	defer func() {
		if v := recover(); v != nil {
			quit, err = false, Recovered("shell.choose", v)
		}
	}()

	for {
		choice, err := sh.prompt(sh.session.T("menu.prompt"))
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(choice) {
		case "0":
			return true, nil
		case "1":
			return false, sh.study()
		case "2":
			return false, sh.evaluate(FormDeveloped)
		case "3":
			return false, sh.evaluate(FormCanonical)
		case "4":
			return false, sh.evaluate(FormFactored)
		}
	}
}

func (sh *Shell) study() error {
	s := sh.session
	sh.println("\n\n\t\t" + s.T("shell.study_title"))
	sh.println(s.T("shell.developed_intro"))

	coef, err := sh.numbers(FormDeveloped.Params())
	if err != nil {
		return err
	}

	var answers [3]string
	for i, key := range []string{"shell.xmin", "shell.xmax", "shell.points"} {
		if answers[i], err = sh.prompt(s.T(key)); err != nil {
			return err
		}
	}
	bounds, err := ParseBounds(answers[0], answers[1], answers[2], s.Defaults())
	if err != nil {
		return err
	}

	r, fig, err := s.Study(trinomial.New(coef[0], coef[1], coef[2]), bounds)
	if err != nil {
		return err
	}
	if _, err := r.WriteTo(sh.out); err != nil {
		return err
	}

	sh.println("")
	sh.println(s.Graph(fig))
	_, err = sh.prompt(s.T("shell.close_graph"))
	return err
}

func (sh *Shell) evaluate(form Form) error {
	s := sh.session
	sh.println("\n\n\t\t" + s.T("shell."+form.String()+"_title"))
	sh.println(s.T("shell." + form.String() + "_intro"))

	params, err := sh.numbers(form.Params())
	if err != nil {
		return err
	}
	fn, err := s.Function(form, params)
	if err != nil {
		return err
	}
	sh.println(s.Header(fn.Expr))

	for {
		x, err := sh.number(s.T("shell.eval_prompt"))
		if err != nil {
			return err
		}
		sh.println(s.Result(x, fn.Eval(x)))

		sh.println(s.T("shell.continue"))
		answer, err := sh.prompt(s.T("menu.prompt"))
		if err != nil {
			return err
		}
		if strings.TrimSpace(answer) == "0" {
			return nil
		}
	}
}

func (sh *Shell) numbers(names [3]string) ([3]float64, error) {
	var out [3]float64
	for i, name := range names {
		v, err := sh.number(name + "=")
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func (sh *Shell) number(label string) (float64, error) {
	text, err := sh.prompt(label)
	if err != nil {
		return 0, err
	}
	return trinomial.ParseNumber(text)
}

func (sh *Shell) prompt(label string) (string, error) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		return "", errQuit
	}
	return sh.in.Text(), nil
}

func (sh *Shell) println(s string) {
	fmt.Fprintln(sh.out, s)
}
