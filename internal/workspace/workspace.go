// Package workspace locates the project root that generated components are
// written under.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoWorkspace is returned when no project root can be found.
var ErrNoWorkspace = errors.New("no workspace folder open")

// Marker is the file that identifies a project root.
const Marker = "package.json"

// Root resolves the workspace. An explicit root wins and must be an existing
// directory. Otherwise the nearest ancestor of dir holding a package.json is
// used, then the enclosing git repository.
func Root(explicit, dir string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoWorkspace, err)
		}
		fi, err := os.Stat(abs)
		if err != nil || !fi.IsDir() {
			return "", fmt.Errorf("%w: %s is not a directory", ErrNoWorkspace, explicit)
		}
		return abs, nil
	}
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoWorkspace, err)
	}
	if root, ok := findMarker(abs); ok {
		return root, nil
	}
	if root, err := RepoRoot(abs); err == nil {
		return root, nil
	}
	return "", ErrNoWorkspace
}

func findMarker(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, Marker)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// RepoRoot resolves the git repository root from a given path (or current dir).
func RepoRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	cmd := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("rev-parse: %w", err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New("empty git root")
	}
	return root, nil
}
