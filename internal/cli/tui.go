package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive view (the default without a subcommand)",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
	}
}

func (a *app) runTUI(ctx context.Context) error {
	return tui.Run(ctx, a.list, a.log.With("component", "tui"))
}
