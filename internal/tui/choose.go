package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/compgen/internal/prompt"
)

// chooseModel is a single-choice list: j/k or arrows move, enter picks,
// esc backs out.
type chooseModel struct {
	title  string
	items  []prompt.Item
	index  int
	theme  Theme
	width  int
	chosen string
	err    error
	done   bool
}

func newChooseModel(title string, items []prompt.Item, theme Theme) chooseModel {
	m := chooseModel{title: title, items: items, theme: theme}
	for i, it := range items {
		if it.Selected {
			m.index = i
			break
		}
	}
	return m
}

func (m chooseModel) Init() tea.Cmd { return nil }

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c":
		m.err = prompt.ErrInterrupted
		m.done = true
		return m, tea.Quit
	case "esc":
		m.err = prompt.ErrCancelled
		m.done = true
		return m, tea.Quit
	case "j", "down", "tab":
		if m.index < len(m.items)-1 {
			m.index++
		}
	case "k", "up", "shift+tab":
		if m.index > 0 {
			m.index--
		}
	case "g", "home":
		m.index = 0
	case "G", "end":
		if len(m.items) > 0 {
			m.index = len(m.items) - 1
		}
	case "enter":
		if len(m.items) == 0 {
			return m, nil
		}
		m.chosen = m.items[m.index].Label
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m chooseModel) View() string {
	if m.done {
		if m.err != nil {
			return ""
		}
		return m.theme.Faint(m.title+": ") + m.chosen + "\n"
	}
	lines := make([]string, 0, len(m.items)+2)
	lines = append(lines, m.theme.Title(m.title))
	for i, it := range m.items {
		cur := "  "
		if i == m.index {
			cur = m.theme.Cursor("> ")
		}
		line := cur + it.Label
		if it.Description != "" {
			line += " " + m.theme.Faint(it.Description)
		}
		if m.width > 0 {
			line = ansi.Truncate(line, m.width, "…")
		}
		lines = append(lines, line)
	}
	lines = append(lines, m.theme.Faint("↑/↓: move, enter: select, esc: back"))
	return strings.Join(lines, "\n") + "\n"
}
