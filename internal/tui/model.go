// ============================================================================
// trinom - Études de fonctions trinômes du second degré
// ============================================================================
//
// Package:     tui
// Description: Bubbletea frontend of the menu: prompts, report viewport and
//              modal graph overlay
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/trinom/internal/plot"
	"github.com/msto63/trinom/internal/report"
	"github.com/msto63/trinom/internal/shell"
	"github.com/msto63/trinom/internal/trinomial"
)

// State is the screen currently shown
type State int

const (
	StateMenu State = iota
	StateForm
	StateEval
	StateReport
	StateGraph
)

type menuItem struct {
	key    string
	choice string
}

var menuItems = []menuItem{
	{"menu.study", "1"},
	{"menu.developed", "2"},
	{"menu.canonical", "3"},
	{"menu.factored", "4"},
	{"menu.quit", "0"},
}

// field is one prompted answer. Optional fields keep their default when
// left blank.
type field struct {
	label    string
	optional bool
	fallback string
}

// studyDoneMsg carries the result of a study run in the background
type studyDoneMsg struct {
	report *report.Report
	figure *plot.Figure
	err    error
}

// Model is the main TUI model
type Model struct {
	session *shell.Session

	// State
	state    State
	width    int
	height   int
	ready    bool
	loading  bool
	quitting bool
	errMsg   string

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Menu and prompts
	cursor  int
	choice  string
	fields  []field
	answers []string

	// Evaluation state
	fn      shell.Function
	results []string

	// Study state
	report *report.Report
	figure *plot.Figure
}

// NewModel creates the menu model
func NewModel(session *shell.Session) Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		session:  session,
		state:    StateMenu,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(80, 20),
	}
}

// State returns the current screen
func (m Model) State() State {
	return m.state
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateForm:
			return m.updateForm(msg)
		case StateEval:
			return m.updateEval(msg)
		case StateReport:
			return m.updateReport(msg)
		case StateGraph:
			// the graph is modal: any key closes it
			m.state = StateReport
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(3, msg.Height-7)
		m.ready = true
		if m.report != nil {
			m.viewport.SetContent(renderReport(m.report))
		}

	case studyDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.report = msg.report
		m.figure = msg.figure
		m.state = StateReport
		m.viewport.SetContent(renderReport(msg.report))
		m.viewport.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		return m.choose(menuItems[m.cursor].choice)
	case "0", "1", "2", "3", "4":
		return m.choose(key)
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) choose(choice string) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.choice = choice
	m.answers = nil

	switch choice {
	case "0":
		m.quitting = true
		return m, tea.Quit
	case "1":
		d := m.session.Defaults()
		m.fields = []field{
			{label: "a="}, {label: "b="}, {label: "c="},
			{label: m.session.T("shell.xmin"), optional: true, fallback: trinomial.FormatNumber(d.XMin)},
			{label: m.session.T("shell.xmax"), optional: true, fallback: trinomial.FormatNumber(d.XMax)},
			{label: m.session.T("shell.points"), optional: true, fallback: fmt.Sprint(d.Points)},
		}
	default:
		m.fields = nil
		for _, name := range m.form().Params() {
			m.fields = append(m.fields, field{label: name + "="})
		}
	}

	m.state = StateForm
	cmd := m.prompt()
	return m, cmd
}

// form returns the evaluation form of the current choice.
func (m Model) form() shell.Form {
	switch m.choice {
	case "3":
		return shell.FormCanonical
	case "4":
		return shell.FormFactored
	default:
		return shell.FormDeveloped
	}
}

// prompt prepares the input for the next unanswered field.
func (m *Model) prompt() tea.Cmd {
	f := m.fields[len(m.answers)]
	m.input.Reset()
	m.input.Prompt = f.label
	m.input.Placeholder = ""
	if f.optional {
		m.input.Placeholder = m.session.T("tui.default", map[string]interface{}{"Value": f.fallback})
	}
	return m.input.Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateMenu
		return m, nil
	case "enter":
		value := m.input.Value()
		if !m.fields[len(m.answers)].optional {
			if _, err := trinomial.ParseNumber(value); err != nil {
				return m.fail(err), nil
			}
		}
		m.answers = append(m.answers, value)
		if len(m.answers) < len(m.fields) {
			cmd := m.prompt()
			return m, cmd
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the chosen action once every field is answered.
func (m Model) submit() (tea.Model, tea.Cmd) {
	var nums [3]float64
	for i := range nums {
		// already validated by updateForm
		nums[i], _ = trinomial.ParseNumber(m.answers[i])
	}

	if m.choice != "1" {
		fn, err := m.session.Function(m.form(), nums)
		if err != nil {
			return m.fail(err), nil
		}
		m.fn = fn
		m.results = nil
		m.state = StateEval
		m.input.Reset()
		m.input.Prompt = m.session.T("shell.eval_prompt")
		m.input.Placeholder = ""
		cmd := m.input.Focus()
		return m, cmd
	}

	bounds, err := shell.ParseBounds(m.answers[3], m.answers[4], m.answers[5], m.session.Defaults())
	if err != nil {
		return m.fail(err), nil
	}

	m.loading = true
	m.input.Blur()
	session := m.session
	t := trinomial.New(nums[0], nums[1], nums[2])
	return m, tea.Batch(m.spinner.Tick, func() (msg tea.Msg) {
		defer func() {
			if v := recover(); v != nil {
				msg = studyDoneMsg{err: shell.Recovered("tui.study", v)}
			}
		}()
		r, fig, err := session.Study(t, bounds)
		return studyDoneMsg{report: r, figure: fig, err: err}
	})
}

func (m Model) updateEval(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateMenu
		return m, nil
	case "enter":
		x, err := trinomial.ParseNumber(m.input.Value())
		if err != nil {
			return m.fail(err), nil
		}
		m.results = append(m.results, m.session.Result(x, m.fn.Eval(x)))
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = StateMenu
		return m, nil
	case "g":
		if m.figure != nil {
			m.state = StateGraph
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// fail reports err and goes back to the menu
func (m Model) fail(err error) Model {
	m.errMsg = m.session.Fail(err)
	m.state = StateMenu
	m.loading = false
	m.input.Blur()
	return m
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return m.session.T("menu.bye") + "\n"
	}

	var s strings.Builder
	s.WriteString(TitleStyle.Render("trinom"))
	s.WriteString("\n")

	if m.loading {
		s.WriteString(m.spinner.View())
		s.WriteString(" " + m.session.T("tui.loading") + "\n")
		return s.String()
	}

	switch m.state {
	case StateMenu:
		s.WriteString(m.renderMenu())
	case StateForm:
		s.WriteString(m.renderForm())
	case StateEval:
		s.WriteString(m.renderEval())
	case StateReport:
		s.WriteString(StatusBarStyle.Render("f(x)=" + m.report.Trinomial.String() + "  " + m.report.ID))
		s.WriteString("\n")
		s.WriteString(m.viewport.View())
		s.WriteString("\n")
		s.WriteString(RenderHelp(m.session.T("tui.help_report")))
	case StateGraph:
		s.WriteString(GraphBoxStyle.Render(CurveStyle.Render(m.session.Graph(m.figure))))
		s.WriteString("\n")
		s.WriteString(RenderHelp(m.session.T("tui.help_graph")))
	}
	return s.String()
}

func (m Model) renderMenu() string {
	var s strings.Builder
	s.WriteString(SubtitleStyle.Render("f: x ↦ ax²+bx+c, a≠0"))
	s.WriteString("\n\n")
	s.WriteString(m.session.T("menu.greeting"))
	s.WriteString("\n")
	for i, item := range menuItems {
		line := fmt.Sprintf("%s - %s", item.choice, m.session.T(item.key))
		if i == m.cursor {
			s.WriteString(SelectedMenuItemStyle.Render("> " + line))
		} else {
			s.WriteString(MenuItemStyle.Render("  " + line))
		}
		s.WriteString("\n")
	}
	if m.errMsg != "" {
		s.WriteString("\n")
		s.WriteString(RenderError(m.errMsg))
		s.WriteString("\n")
	}
	s.WriteString(RenderHelp(m.session.T("tui.help_menu")))
	return s.String()
}

func (m Model) actionTitle() (string, string) {
	if m.choice == "1" {
		return m.session.T("shell.study_title"), m.session.T("shell.developed_intro")
	}
	name := m.form().String()
	return m.session.T("shell." + name + "_title"), m.session.T("shell." + name + "_intro")
}

func (m Model) renderForm() string {
	title, intro := m.actionTitle()

	var s strings.Builder
	s.WriteString(SectionTitleStyle.Render(title))
	s.WriteString("\n")
	s.WriteString(intro)
	s.WriteString("\n\n")
	for i, answer := range m.answers {
		f := m.fields[i]
		if answer == "" && f.optional {
			answer = f.fallback
		}
		s.WriteString(f.label + answer + "\n")
	}
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(RenderHelp(m.session.T("tui.help_form")))
	return BoxStyle.Render(s.String())
}

func (m Model) renderEval() string {
	title, _ := m.actionTitle()

	var s strings.Builder
	s.WriteString(SectionTitleStyle.Render(title))
	s.WriteString("\n")
	s.WriteString(m.session.Header(m.fn.Expr))
	s.WriteString("\n\n")
	for _, r := range m.results {
		s.WriteString(ResultStyle.Render(r))
		s.WriteString("\n")
	}
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(RenderHelp(m.session.T("tui.help_eval")))
	return BoxStyle.Render(s.String())
}

// renderReport lays out the narration for the viewport.
func renderReport(r *report.Report) string {
	var s strings.Builder
	s.WriteString(r.Header)
	s.WriteString("\n")
	for _, sec := range r.Sections {
		s.WriteString("\n")
		s.WriteString(SectionTitleStyle.Render(sec.Title))
		s.WriteString("\n")
		for _, line := range sec.Lines {
			s.WriteString(line)
			s.WriteString("\n")
		}
		if sec.Table != "" {
			s.WriteString(TableStyle.Render(sec.Table))
			s.WriteString("\n")
		}
	}
	return s.String()
}
