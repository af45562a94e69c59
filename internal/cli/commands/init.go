package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonibytes/searchbox/internal/cliutil"
)

func NewInitCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the searchbox tables in the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.CreateEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			fmt.Fprintln(cmd.OutOrStdout(), cliutil.SuccessStyle.Render("initialized"))
			return nil
		},
	}
}
