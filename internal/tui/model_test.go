package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/trinom/pkg/core/i18n"

	"github.com/msto63/trinom/internal/sampler"
	"github.com/msto63/trinom/internal/shell"
	"github.com/msto63/trinom/locales"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	msgs, err := i18n.New(i18n.Options{DefaultLocale: "fr", FS: locales.FS})
	require.NoError(t, err)

	session := shell.NewSession(msgs, nil, shell.Options{
		Defaults:       sampler.Bounds{XMin: -10, XMax: 10, Points: 201},
		TerminalWidth:  40,
		TerminalHeight: 12,
	})
	m, _ := NewModel(session).Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(Model)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// press sends each key in turn and returns the model with the command of
// the last one.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

// studyResult runs cmd and returns the study message it carries.
func studyResult(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if done, ok := c().(studyDoneMsg); ok {
				return done
			}
		}
		t.Fatal("no study result in batch")
	}
	return msg
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMenuNavigation(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, StateMenu, m.State())
	assert.Contains(t, m.View(), "> 1 - Étude complète")

	m, _ = press(t, m, "down", "down", "up")
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.View(), "> 2 - Calcul de l'image")

	m, _ = press(t, m, "enter")
	assert.Equal(t, StateForm, m.State())
	assert.Equal(t, "a=", m.input.Prompt)
}

func TestMenuQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, "0")
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "Au revoir !\n", m.View())

	m = newTestModel(t)
	_, cmd = press(t, m, "ctrl+c")
	assert.True(t, isQuit(cmd))
}

func TestFactoredEvaluation(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "4", "2", "enter", "1", "enter", "3", "enter")
	require.Equal(t, StateEval, m.State())
	assert.Contains(t, m.View(), "f: x ↦ 2(x-1)(x-3)")

	m, _ = press(t, m, "5", "enter", "0", "enter")
	assert.Equal(t, []string{"f(5)=16", "f(0)=6"}, m.results)

	m, _ = press(t, m, "esc")
	assert.Equal(t, StateMenu, m.State())
}

func TestInvalidInputReturnsToMenu(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "2", "x", "enter")
	assert.Equal(t, StateMenu, m.State())
	assert.Contains(t, m.View(), "Désolé, la valeur saisie n'est pas un nombre valide.")

	// the message is cleared by the next choice
	m, _ = press(t, m, "2")
	assert.Empty(t, m.errMsg)
}

func TestDegenerateCanonical(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "3", "0", "enter", "1", "enter", "1", "enter")
	assert.Equal(t, StateMenu, m.State())
	assert.Contains(t, m.errMsg, "n'est pas défini")
}

func TestStudyReportAndGraph(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m,
		"1",
		"1", "enter", "-3", "enter", "2", "enter",
		"-5", "enter", "5", "enter", "enter")
	require.True(t, m.loading)
	assert.Contains(t, m.View(), "Étude en cours")

	next, _ := m.Update(studyResult(t, cmd))
	m = next.(Model)
	require.Equal(t, StateReport, m.State())
	require.NotNil(t, m.report)
	assert.Equal(t, "f: x ↦ 1x²-3x+2", m.report.Header)
	assert.Contains(t, renderReport(m.report), "Δ>0 donc f a deux racines réelles : x1=1 et x2=2")
	assert.Equal(t, 201, m.figure.Bounds.Points)

	m, _ = press(t, m, "g")
	require.Equal(t, StateGraph, m.State())
	assert.Contains(t, m.View(), "f(x)=1x²-3x+2")

	m, _ = press(t, m, "x")
	assert.Equal(t, StateReport, m.State())

	m, _ = press(t, m, "esc")
	assert.Equal(t, StateMenu, m.State())
}

func TestStudyDegenerateBounds(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m,
		"1",
		"1", "enter", "0", "enter", "0", "enter",
		"enter", "enter", "1", "enter")
	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Equal(t, StateMenu, m.State())
	assert.True(t, strings.Contains(m.errMsg, "n'est pas défini"))
}

func TestStudyTooManyPoints(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m,
		"1",
		"1", "enter", "0", "enter", "0", "enter",
		"-1", "enter", "1", "enter", "1000000000000000000", "enter")
	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Equal(t, StateMenu, m.State())
	assert.Contains(t, m.errMsg, "dépasse la limite de 10000000")
}
