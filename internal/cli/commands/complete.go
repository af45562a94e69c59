package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonibytes/searchbox/internal/cliutil"
)

func NewCompleteCommand(app *App) *cobra.Command {
	var (
		cursor int
		typeID string
		format string
	)
	cmd := &cobra.Command{
		Use:   "complete <query>",
		Short: "List completions for the cursor position in a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := args[0]
			if cursor < 0 || cursor > len(q) {
				cursor = len(q)
			}

			e, err := app.OpenEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			ct, err := app.contentType(cmd.Context(), e, typeID)
			if err != nil {
				return err
			}
			items, err := e.OfferCompletion(cmd.Context(), app.Globals.Space, ct, q, cursor)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if cliutil.ParseOutputFormat(format) == cliutil.FormatJSON {
				if items == nil {
					items = []string{}
				}
				cliutil.PrintJSON(w, items)
				return nil
			}
			if sub, ok := e.CurrentSubToken(ct, q, cursor); ok {
				fmt.Fprintln(w, cliutil.DimStyle.Render(fmt.Sprintf("editing %s %q", sub.Part, sub.Node.Content)))
			}
			for _, it := range items {
				fmt.Fprintln(w, it)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cursor, "cursor", -1, "cursor byte offset (default: end of query)")
	cmd.Flags().StringVar(&typeID, "type", "", "content type id")
	cmd.Flags().StringVar(&format, "format", "pretty", "output format: pretty|json")
	return cmd
}
