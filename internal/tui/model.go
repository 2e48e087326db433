// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     tui
// Description: Interactive formula browser: pick a formula, edit its input
//              record as YAML, evaluate and inspect the result
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	fconfig "github.com/msto63/rechenwerk/foundation/core/config"
	"github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/internal/batch"
	"github.com/msto63/rechenwerk/internal/render"
	"github.com/msto63/rechenwerk/pkg/catalog"
	"github.com/msto63/rechenwerk/pkg/core/config"
	"github.com/msto63/rechenwerk/pkg/formula"
	"gopkg.in/yaml.v3"
)

// Focus names the pane that receives key presses
type Focus int

const (
	FocusList Focus = iota
	FocusEditor
	FocusResult
)

// Config for the formula browser
type Config struct {
	Formulas []formula.Formula // Listed formulas (default: the whole catalog)
	Runner   *batch.Runner     // Evaluates the edited input (default: over the catalog)
	Output   render.Options    // Result table options; the format is always table
	Logger   *log.Logger
}

// formulaItem implements list.Item for the formula list
type formulaItem struct {
	f formula.Formula
}

func (i formulaItem) Title() string       { return i.f.ID() }
func (i formulaItem) Description() string { return i.f.Summary }
func (i formulaItem) FilterValue() string { return i.f.ID() + " " + i.f.Summary }

// Model is the formula browser
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	focus      Focus
	evaluating bool
	err        error

	// Components
	list   list.Model
	editor textarea.Model
	result viewport.Model

	// Selection
	selected     formula.Formula
	hasSelection bool
	last         *batch.Outcome

	runner *batch.Runner
	output render.Options
	logger *log.Logger
}

// NewModel creates the formula browser
func NewModel(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = log.GetDefault()
	}
	if cfg.Formulas == nil {
		cfg.Formulas = catalog.All()
	}
	if cfg.Runner == nil {
		cfg.Runner = batch.NewRunner(catalog.Default(), batch.Config{Workers: 1, Logger: cfg.Logger})
	}
	cfg.Output.Format = config.OutputTable
	if cfg.Output.Renderer == nil {
		cfg.Output.Renderer = lipgloss.DefaultRenderer()
	}

	items := make([]list.Item, len(cfg.Formulas))
	for i, f := range cfg.Formulas {
		items[i] = formulaItem{f: f}
	}
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = SelectedItemStyle
	delegate.Styles.NormalTitle = ListItemStyle

	formulaList := list.New(items, delegate, 0, 0)
	formulaList.Title = "Formulas"
	formulaList.SetShowHelp(false)
	formulaList.SetFilteringEnabled(true)

	editor := textarea.New()
	editor.Placeholder = "Select a formula to edit its input..."
	editor.CharLimit = 10000
	editor.ShowLineNumbers = false
	editor.SetWidth(60)
	editor.SetHeight(10)

	return Model{
		focus:  FocusList,
		list:   formulaList,
		editor: editor,
		result: viewport.New(60, 10),
		runner: cfg.Runner,
		output: cfg.Output,
		logger: cfg.Logger.WithField("component", "tui"),
	}
}

// Run starts the browser on the alternate screen and blocks until it quits
func Run(cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case evalResultMsg:
		m.evaluating = false
		m.showOutcome(msg.outcome)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case FocusEditor:
			return m.updateEditor(msg)
		case FocusResult:
			return m.updateResult(msg)
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusEditor:
		m.editor, cmd = m.editor.Update(msg)
	case FocusResult:
		m.result, cmd = m.result.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(formulaItem); ok {
				m.selectFormula(item.f)
				return m, m.setFocus(FocusEditor)
			}
			return m, nil
		case "tab":
			if m.hasSelection {
				return m, m.setFocus(FocusEditor)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.setFocus(FocusList)
	case "tab":
		return m, m.setFocus(FocusResult)
	case "ctrl+e", "ctrl+s":
		return m, m.evaluate()
	case "ctrl+r":
		if m.hasSelection {
			m.selectFormula(m.selected)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.setFocus(FocusEditor)
	case "tab":
		return m, m.setFocus(FocusList)
	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.result, cmd = m.result.Update(msg)
	return m, cmd
}

func (m *Model) setFocus(focus Focus) tea.Cmd {
	m.focus = focus
	if focus == FocusEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// selectFormula loads the input template of f into the editor
func (m *Model) selectFormula(f formula.Formula) {
	m.selected = f
	m.hasSelection = true
	m.last = nil
	m.err = nil

	template, err := yaml.Marshal(f.Template())
	if err != nil {
		m.err = err
		return
	}
	m.editor.SetValue(string(template))
	m.result.SetContent(SubtitleStyle.Render(f.Summary) + "\n\n" +
		RenderHelp("Edit the input and press ctrl+e to evaluate."))
	m.result.GotoTop()
	m.logger.Debug("Formula selected", log.Formula(f.ID()))
}

// evaluate parses the editor content and returns a command that evaluates
// it. An editor content that is not a record is reported without running.
func (m *Model) evaluate() tea.Cmd {
	if !m.hasSelection || m.evaluating {
		return nil
	}
	record, err := fconfig.DecodeRecord([]byte(m.editor.Value()), fconfig.FormatYAML)
	if err != nil {
		m.err = err
		return nil
	}

	m.err = nil
	m.evaluating = true
	runner, id := m.runner, m.selected.ID()
	return func() tea.Msg {
		return evalResultMsg{outcome: runner.Evaluate(batch.Request{Formula: id, Input: record})}
	}
}

func (m *Model) showOutcome(outcome batch.Outcome) {
	var buf bytes.Buffer
	r, err := render.New(&buf, m.output)
	if err == nil {
		err = r.Outcome(outcome)
	}
	if err != nil {
		m.err = err
		return
	}
	m.last = &outcome
	m.result.SetContent(buf.String())
	m.result.GotoTop()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	bodyHeight := height - 2
	listWidth := width * 2 / 5
	rightWidth := width - listWidth - 8

	m.list.SetSize(listWidth, bodyHeight-2)

	editorHeight := max(bodyHeight/2-3, 3)
	m.editor.SetWidth(rightWidth)
	m.editor.SetHeight(editorHeight)

	m.result.Width = rightWidth
	m.result.Height = max(bodyHeight-editorHeight-6, 3)
	m.ready = true
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	left := m.box(FocusList).Render(m.list.View())

	title := "Input"
	if m.hasSelection {
		title = m.selected.ID()
	}
	editor := m.box(FocusEditor).Render(TitleStyle.Render(title) + "\n" + m.editor.View())
	result := m.box(FocusResult).Render(m.result.View())
	right := lipgloss.JoinVertical(lipgloss.Left, editor, result)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus(), m.renderHelp())
}

func (m Model) box(focus Focus) lipgloss.Style {
	if m.focus == focus {
		return FocusedBoxStyle
	}
	return BoxStyle
}

func (m Model) renderStatus() string {
	switch {
	case m.err != nil:
		return RenderError(m.err.Error())
	case m.evaluating:
		return StatusBarStyle.Render("Evaluating " + m.selected.ID() + "...")
	case m.last != nil:
		return StatusBarStyle.Render(fmt.Sprintf("%s: %s", m.last.Formula, m.last.Status))
	default:
		return StatusBarStyle.Render(fmt.Sprintf("%d formulas", len(m.list.Items())))
	}
}

func (m Model) renderHelp() string {
	var keys []string
	switch m.focus {
	case FocusEditor:
		keys = []string{"ctrl+e evaluate", "ctrl+r reset", "tab result", "esc formulas", "ctrl+c quit"}
	case FocusResult:
		keys = []string{"↑/↓ scroll", "tab formulas", "esc editor", "q quit"}
	default:
		keys = []string{"enter select", "/ filter", "tab editor", "q quit"}
	}
	return RenderHelp(strings.Join(keys, " • "))
}
