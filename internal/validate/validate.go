// Package validate holds the name checks applied to wizard input.
package validate

import (
	"errors"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/interpretive-systems/compgen/internal/prompt"
)

var (
	componentRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	propRe      = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
)

// FolderName checks a target folder relative to the workspace root.
func FolderName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Folder name is required")
	}
	if prompt.Reserved(strings.TrimSpace(s)) {
		return errors.New("Folder name is reserved by the folder menu")
	}
	if filepath.IsAbs(s) || strings.HasPrefix(s, "/") {
		return errors.New("Folder must be relative to the workspace")
	}
	clean := path.Clean(filepath.ToSlash(s))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return errors.New("Folder must stay inside the workspace")
	}
	return nil
}

// ComponentName checks a component identifier.
func ComponentName(s string) error {
	if !componentRe.MatchString(s) {
		return errors.New("Component name should start with a capital letter and contain only alphanumeric characters")
	}
	return nil
}

// ComponentNameOrEmpty accepts the empty string, which the wizard reads as
// "go back".
func ComponentNameOrEmpty(s string) error {
	if s == "" {
		return nil
	}
	return ComponentName(s)
}

// PropName checks a prop identifier.
func PropName(s string) error {
	if !propRe.MatchString(s) {
		return errors.New("Prop name should start with a letter and contain only alphanumeric characters")
	}
	return nil
}

// PropNameOrEmpty accepts the empty string, which ends prop entry.
func PropNameOrEmpty(s string) error {
	if s == "" {
		return nil
	}
	return PropName(s)
}
