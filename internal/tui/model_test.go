package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/internal/batch"
	"github.com/msto63/rechenwerk/pkg/catalog"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(Config{Formulas: catalog.ByDomain("quality"), Logger: log.Discard()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 48})
	return updated.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func selectID(t *testing.T, m Model, id string) Model {
	t.Helper()
	for i, item := range m.list.Items() {
		if item.(formulaItem).f.ID() == id {
			m.list.Select(i)
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			return m
		}
	}
	t.Fatalf("formula %s not listed", id)
	return m
}

func TestNewModel(t *testing.T) {
	m := NewModel(Config{Logger: log.Discard()})
	if got, want := len(m.list.Items()), len(catalog.All()); got != want {
		t.Errorf("listed %d formulas, want %d", got, want)
	}
	if m.View() != "Loading..." {
		t.Errorf("View() before sizing = %q", m.View())
	}

	m = newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Formulas") || !strings.Contains(view, "quality.cpk") {
		t.Errorf("View() does not list the formulas:\n%s", view)
	}
}

func TestSelectLoadsTemplate(t *testing.T) {
	m := selectID(t, newTestModel(t), "quality.cpk")

	if m.focus != FocusEditor || !m.hasSelection {
		t.Fatalf("focus = %v, selected = %v, want editor with selection", m.focus, m.hasSelection)
	}
	for _, field := range []string{"usl:", "lsl:", "mean:", "stdDev:"} {
		if !strings.Contains(m.editor.Value(), field) {
			t.Errorf("editor = %q, missing %s", m.editor.Value(), field)
		}
	}
}

func TestEvaluate(t *testing.T) {
	m := selectID(t, newTestModel(t), "quality.cpk")
	m.editor.SetValue("usl: 10\nlsl: 4\nmean: 7\nstdDev: 1\n")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if cmd == nil || !m.evaluating {
		t.Fatalf("ctrl+e returned no evaluation command")
	}
	msg, ok := cmd().(evalResultMsg)
	if !ok {
		t.Fatalf("command returned %T, want evalResultMsg", cmd())
	}
	m, _ = update(t, m, msg)

	if m.evaluating || m.last == nil || m.last.Status != batch.StatusOK {
		t.Fatalf("last outcome = %+v, want ok", m.last)
	}
	if view := m.result.View(); !strings.Contains(view, "cpk") {
		t.Errorf("result view = %q, want the cpk row", view)
	}
	if !strings.Contains(m.View(), "quality.cpk: ok") {
		t.Errorf("status bar does not show the outcome")
	}
}

func TestEvaluateRejectedInput(t *testing.T) {
	m := selectID(t, newTestModel(t), "quality.cpk")
	m.editor.SetValue("usl: ten\n")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m, _ = update(t, m, cmd())
	if m.last == nil || m.last.Status != batch.StatusInvalid {
		t.Fatalf("last outcome = %+v, want invalid", m.last)
	}
	if !strings.Contains(m.result.View(), "reason") {
		t.Errorf("result view = %q, want a reason", m.result.View())
	}
}

func TestEvaluateUnparsableInput(t *testing.T) {
	m := selectID(t, newTestModel(t), "quality.cpk")
	m.editor.SetValue("usl: [")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if cmd != nil {
		t.Errorf("ctrl+e on broken YAML returned a command")
	}
	if m.err == nil || !strings.Contains(m.View(), "Error:") {
		t.Errorf("broken YAML should be reported, err = %v", m.err)
	}
}

func TestFocusKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusList {
		t.Errorf("tab without selection moved focus to %v", m.focus)
	}

	m = selectID(t, m, "quality.statistics")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusResult {
		t.Errorf("tab in editor = %v, want result", m.focus)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != FocusEditor {
		t.Errorf("esc in result = %v, want editor", m.focus)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != FocusList {
		t.Errorf("esc in editor = %v, want list", m.focus)
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q did not quit")
	}
}
