package editor

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_SplitsArguments(t *testing.T) {
	e := New(`code --wait "--profile=My Profile"`, nil, nil, nil)
	cmd, err := e.Command(context.Background(), "/ws/Card.tsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "--profile=My Profile", "/ws/Card.tsx"}, cmd.Args)
}

func TestCommand_Invalid(t *testing.T) {
	_, err := New(`vim "unterminated`, nil, nil, nil).Command(context.Background(), "x")
	assert.Error(t, err)

	_, err = New("   ", nil, nil, nil).Command(context.Background(), "x")
	assert.Error(t, err)
}

func TestOpen_Disabled(t *testing.T) {
	e := New("", nil, nil, nil)
	assert.False(t, e.Enabled())
	assert.NoError(t, e.Open(context.Background(), "anything"))
}

func TestOpen_RunsCommand(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	var out bytes.Buffer
	e := New("echo opened", nil, &out, &out)
	require.NoError(t, e.Open(context.Background(), "Card.tsx"))
	assert.Equal(t, "opened Card.tsx\n", out.String())
}

func TestOpen_ReportsFailure(t *testing.T) {
	e := New("compgen-editor-that-does-not-exist", nil, nil, nil)
	assert.Error(t, e.Open(context.Background(), "Card.tsx"))
}
