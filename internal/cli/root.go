package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/compgen/internal/tui"
)

// Execute runs the compgen command. Errors are printed to stderr before
// being returned.
func Execute() error {
	root := &cobra.Command{
		Use:   "compgen",
		Short: "Scaffold a React component interactively",
		Long: "compgen: Walk through a short wizard (folder, name, props, layout) and\n" +
			"generate a typed React component skeleton in the current workspace.\n\n" +
			"Settings live in ~/.compgen/config.yaml and can be overridden with\n" +
			"COMPGEN_* environment variables (COMPGEN_EDITOR, COMPGEN_WORKSPACE, ...).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCreate,
	}

	if err := root.ExecuteContext(context.Background()); err != nil {
		tui.DefaultTheme().Fail(os.Stderr, err)
		return err
	}
	return nil
}
