// Package editor opens generated files in the user's editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/google/shlex"
)

// Editor runs a configured command with the file path appended.
type Editor struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// New returns an editor for command, e.g. "code -w" or "vim". The process's
// standard streams are handed to the editor so terminal editors work.
func New(command string, stdin io.Reader, stdout, stderr io.Writer) *Editor {
	return &Editor{command: command, stdin: stdin, stdout: stdout, stderr: stderr}
}

// Enabled reports whether an editor command is configured.
func (e *Editor) Enabled() bool { return e.command != "" }

// Command builds the process that would open path.
func (e *Editor) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	args, err := shlex.Split(e.command)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", e.command, err)
	}
	if len(args) == 0 {
		return nil, errors.New("empty editor command")
	}
	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	return cmd, nil
}

// Open runs the editor on path and waits for it. It is a no-op when no
// editor is configured.
func (e *Editor) Open(ctx context.Context, path string) error {
	if !e.Enabled() {
		return nil
	}
	cmd, err := e.Command(ctx, path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
