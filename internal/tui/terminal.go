// Package tui implements the interactive prompts and the final notification
// on top of Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/compgen/internal/prompt"
)

// Terminal runs each prompt as its own inline Bubble Tea program.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	theme Theme
}

// NewTerminal creates a prompter on the given streams; nil streams mean the
// process's stdin/stdout.
func NewTerminal(in io.Reader, out io.Writer, theme Theme) *Terminal {
	return &Terminal{in: in, out: out, theme: theme}
}

var _ prompt.Prompter = (*Terminal)(nil)

// ChooseOne shows a single-choice list.
func (t *Terminal) ChooseOne(ctx context.Context, items []prompt.Item, placeholder string) (string, error) {
	final, err := t.run(ctx, newChooseModel(placeholder, items, t.theme))
	if err != nil {
		return "", err
	}
	m := final.(chooseModel)
	if m.err != nil {
		return "", m.err
	}
	return m.chosen, nil
}

// InputText shows a single-line text prompt pre-filled with def.
func (t *Terminal) InputText(ctx context.Context, placeholder, def string, validate prompt.Validator) (string, error) {
	final, err := t.run(ctx, newInputModel(placeholder, def, validate, t.theme))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.err != nil {
		return "", m.err
	}
	return m.value, nil
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}
	if t.out != nil {
		opts = append(opts, tea.WithOutput(t.out))
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}
