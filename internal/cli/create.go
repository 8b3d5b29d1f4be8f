package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/interpretive-systems/compgen/internal/config"
	"github.com/interpretive-systems/compgen/internal/editor"
	"github.com/interpretive-systems/compgen/internal/layout"
	"github.com/interpretive-systems/compgen/internal/logging"
	"github.com/interpretive-systems/compgen/internal/prefs"
	"github.com/interpretive-systems/compgen/internal/prompt"
	"github.com/interpretive-systems/compgen/internal/tui"
	"github.com/interpretive-systems/compgen/internal/wizard"
	"github.com/interpretive-systems/compgen/internal/workspace"
)

// app holds the collaborators of one run.
type app struct {
	root     string
	fs       afero.Fs
	prompter prompt.Prompter
	folders  wizard.Folders
	editor   *editor.Editor
	log      logrus.FieldLogger
	theme    tui.Theme
	out      io.Writer
}

func runCreate(cmd *cobra.Command, _ []string) error {
	osfs := afero.NewOsFs()
	cfg, err := config.Load(osfs, config.FilePath())
	if err != nil {
		return err
	}
	log, closer, err := logging.New(cfg.LogFile(), cfg.LogLevel())
	if err != nil {
		return err
	}
	defer closer.Close()

	root, err := workspace.Root(cfg.Workspace(), "")
	if err != nil {
		return err
	}
	log.WithField("root", root).Debug("workspace resolved")

	policy := prefs.AppendOnly
	if cfg.DedupeFolders() {
		policy = prefs.Dedupe
	}
	theme := tui.DefaultTheme()
	a := &app{
		root:     root,
		fs:       osfs,
		prompter: tui.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), theme),
		folders:  prefs.LoadSavedFolders(prefs.NewFileStore(cfg), policy),
		editor:   editor.New(cfg.Editor(), os.Stdin, os.Stdout, os.Stderr),
		log:      log,
		theme:    theme,
		out:      cmd.OutOrStdout(),
	}
	return a.run(cmd.Context())
}

func (a *app) run(ctx context.Context) error {
	m := wizard.New(a.prompter, a.folders, a.log)
	answers, err := m.Run(ctx)
	if errors.Is(err, prompt.ErrInterrupted) {
		a.log.Info("wizard interrupted")
		return nil
	}
	if err != nil {
		return err
	}
	if answers == nil {
		a.log.Info("wizard abandoned")
		return nil
	}

	written, err := layout.NewWriter(a.fs).Write(a.root, answers.TargetFolder, answers.Files())
	for _, p := range written {
		a.log.WithField("path", p).Info("file written")
	}
	if err != nil {
		return fmt.Errorf("create component %s: %w", answers.ComponentName, err)
	}
	m.Complete()

	if err := a.editor.Open(ctx, written[0]); err != nil {
		a.log.WithError(err).Warn("open editor")
		a.theme.Warn(a.out, fmt.Sprintf("could not open editor: %v", err))
	}
	a.theme.Success(a.out, tui.SuccessMessage(answers.ComponentName, answers.TargetFolder))
	return nil
}
