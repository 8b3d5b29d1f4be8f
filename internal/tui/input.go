package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/compgen/internal/prompt"
)

// inputModel is a single-line text prompt. The validator runs on every edit
// to keep the hint current and again on enter, where a failure keeps the
// prompt open with the text intact.
type inputModel struct {
	title    string
	input    textinput.Model
	validate prompt.Validator
	theme    Theme
	msg      string
	value    string
	err      error
	done     bool
}

func newInputModel(title, def string, validate prompt.Validator, theme Theme) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.SetValue(def)
	ti.CursorEnd()
	ti.Focus()
	return inputModel{title: title, input: ti, validate: validate, theme: theme}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) check(s string) string {
	if m.validate == nil {
		return ""
	}
	if err := m.validate(s); err != nil {
		return err.Error()
	}
	return ""
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.err = prompt.ErrInterrupted
			m.done = true
			return m, tea.Quit
		case "esc":
			m.err = prompt.ErrCancelled
			m.done = true
			return m, tea.Quit
		case "enter":
			v := m.input.Value()
			if m.msg = m.check(v); m.msg != "" {
				return m, nil
			}
			m.value = v
			m.done = true
			m.input.Blur()
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.msg = m.check(v)
	}
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		if m.err != nil {
			return ""
		}
		return m.theme.Faint(m.title+": ") + m.value + "\n"
	}
	s := m.theme.Title(m.title) + "\n" + m.input.View() + "\n"
	if m.msg != "" {
		s += m.theme.ErrorText(m.msg) + "\n"
	}
	s += m.theme.Faint("enter: submit, esc: back") + "\n"
	return s
}
