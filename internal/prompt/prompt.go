// Package prompt defines the two interactive primitives the wizard is built
// on. Implementations live in package tui; tests use scripted fakes.
package prompt

import (
	"context"
	"errors"
)

var (
	// ErrCancelled reports that the user backed out of a prompt (esc). It is
	// a navigation signal, distinct from an empty answer.
	ErrCancelled = errors.New("prompt cancelled")
	// ErrInterrupted reports that the user asked to quit the whole run.
	ErrInterrupted = errors.New("interrupted")
)

// Item is one entry of a choice list.
type Item struct {
	Label       string
	Description string
	// Selected places the cursor on this item when the list opens.
	Selected bool
}

// Validator returns nil when s is acceptable, or an error whose message is
// shown to the user.
type Validator func(s string) error

// Prompter asks the user for input. Calls block until the user answers and
// never overlap.
type Prompter interface {
	// ChooseOne returns the label of the chosen item.
	ChooseOne(ctx context.Context, items []Item, placeholder string) (string, error)
	// InputText returns the submitted text. Input rejected by validate keeps
	// the prompt open; validate may be nil.
	InputText(ctx context.Context, placeholder, def string, validate Validator) (string, error)
}

const (
	// Back is the label of the explicit "go back" item appended to menus.
	Back = "Back"
	// CreateFolder is the folder menu item that asks for a new folder.
	CreateFolder = "Create new folder..."
)

// Reserved reports whether s is a menu label that can't double as a value.
func Reserved(s string) bool {
	return s == Back || s == CreateFolder
}
