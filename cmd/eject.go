package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hannahgnatheer/portfolio/internal/render"
)

func newEjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eject <dir>",
		Short: "Copies the built-in templates to dir for editing",
		Long: `eject writes the built-in templates to dir. Point "serve --dev --templates dir"
or "build --templates dir" at it to use the edited copies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.EjectTemplates(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Templates written to %s\n", args[0])
			return nil
		},
	}
}
