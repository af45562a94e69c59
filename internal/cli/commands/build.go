package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonibytes/searchbox/internal/cliutil"
)

func NewBuildCommand(app *App) *cobra.Command {
	var (
		typeID  string
		format  string
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "build <query>",
		Short: "Compile a query into search endpoint filter parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.OpenEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			ct, err := app.contentType(cmd.Context(), e, typeID)
			if err != nil {
				return err
			}
			out, err := e.Explain(cmd.Context(), app.Globals.Space, ct, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if explain {
				for _, step := range out.ExplainSteps {
					fmt.Fprintln(w, cliutil.DimStyle.Render(step))
				}
			}
			switch cliutil.ParseOutputFormat(format) {
			case cliutil.FormatJSON:
				cliutil.PrintJSON(w, out.Filter)
			case cliutil.FormatQuery:
				fmt.Fprintln(w, out.Filter.Encode())
			default:
				for _, k := range out.Filter.Keys() {
					fmt.Fprintf(w, "%s = %s\n", cliutil.KeyStyle.Render(k), cliutil.ValueStyle.Render(out.Filter[k]))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typeID, "type", "", "content type id")
	cmd.Flags().StringVar(&format, "format", "pretty", "output format: pretty|json|query")
	cmd.Flags().BoolVar(&explain, "explain", false, "print compilation steps")
	return cmd
}
