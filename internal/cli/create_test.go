package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/compgen/internal/config"
	"github.com/interpretive-systems/compgen/internal/editor"
	"github.com/interpretive-systems/compgen/internal/prefs"
	"github.com/interpretive-systems/compgen/internal/prompt"
	"github.com/interpretive-systems/compgen/internal/tui"
)

// replay returns ChooseOne/InputText results in order.
type replay struct {
	values []string
	errs   []error
}

func (a *replay) pop() (string, error) {
	if len(a.values) == 0 {
		return "", errors.New("no scripted answer left")
	}
	v, err := a.values[0], a.errs[0]
	a.values, a.errs = a.values[1:], a.errs[1:]
	return v, err
}

func (a *replay) ChooseOne(context.Context, []prompt.Item, string) (string, error) {
	return a.pop()
}

func (a *replay) InputText(context.Context, string, string, prompt.Validator) (string, error) {
	return a.pop()
}

func say(values ...string) *replay {
	return &replay{values: values, errs: make([]error, len(values))}
}

func testApp(t *testing.T, p prompt.Prompter) (*app, afero.Fs, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	cfg, err := config.Load(fs, filepath.FromSlash("/home/.compgen/config.yaml"))
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	var out bytes.Buffer
	return &app{
		root:     filepath.FromSlash("/ws"),
		fs:       fs,
		prompter: p,
		folders:  prefs.LoadSavedFolders(prefs.NewFileStore(cfg), nil),
		editor:   editor.New("", nil, nil, nil),
		log:      log,
		theme:    tui.DefaultTheme(),
		out:      &out,
	}, fs, &out
}

func TestRun_ScenarioA(t *testing.T) {
	a, fs, out := testApp(t, say("src/components", "Button", "No", "1"))
	require.NoError(t, a.run(context.Background()))

	b, err := afero.ReadFile(fs, filepath.FromSlash("/ws/src/components/Button.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "function Button() {")
	assert.Contains(t, string(b), "export default Button;")
	assert.Contains(t, ansi.Strip(out.String()), "Component Button created successfully in src/components")
}

func TestRun_ScenarioB(t *testing.T) {
	a, fs, _ := testApp(t, say(
		"src/components", "Card", "Yes",
		"title", "string",
		"onClick", "any",
		"",
		"4",
	))
	require.NoError(t, a.run(context.Background()))

	base := filepath.FromSlash("/ws/src/components/Card")
	for _, name := range []string{"Card.tsx", "index.tsx", "Card.css"} {
		ok, err := afero.Exists(fs, filepath.Join(base, name))
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
	b, err := afero.ReadFile(fs, filepath.Join(base, "Card.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "interface CardProps {\n  title: string;\n  onClick: any;\n}")
}

func TestRun_NewFolderIsRemembered(t *testing.T) {
	a, fs, _ := testApp(t, say("Create new folder...", "src/widgets", "Chip", "No", "2"))
	require.NoError(t, a.run(context.Background()))

	ok, err := afero.Exists(fs, filepath.FromSlash("/ws/src/widgets/Chip/index.tsx"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"src/components", "src/widgets"}, a.folders.List())
}

func TestRun_AbandonWritesNothing(t *testing.T) {
	a, fs, out := testApp(t, say(prompt.Back))
	require.NoError(t, a.run(context.Background()))

	ok, err := afero.DirExists(fs, filepath.FromSlash("/ws/src"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestRun_InterruptIsQuiet(t *testing.T) {
	p := &replay{values: []string{""}, errs: []error{prompt.ErrInterrupted}}
	a, _, out := testApp(t, p)
	require.NoError(t, a.run(context.Background()))
	assert.Empty(t, out.String())
}

func TestRun_WriteFailureSurfaces(t *testing.T) {
	a, _, out := testApp(t, say("src/components", "Button", "No", "1"))
	a.fs = afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := a.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create component Button")
	assert.NotContains(t, out.String(), "created successfully")
}

func TestRun_EditorFailureIsWarning(t *testing.T) {
	a, _, out := testApp(t, say("src/components", "Button", "No", "1"))
	a.editor = editor.New("compgen-editor-that-does-not-exist", nil, nil, nil)

	require.NoError(t, a.run(context.Background()))
	plain := ansi.Strip(out.String())
	assert.Contains(t, plain, "could not open editor")
	assert.Contains(t, plain, "created successfully")
}
