package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nonibytes/searchbox/internal/cliutil"
	sberrors "github.com/nonibytes/searchbox/searchbox/errors"
	"github.com/nonibytes/searchbox/searchbox/schema"
)

func NewTypeCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Manage content types of a space",
	}
	cmd.AddCommand(newTypeImportCommand(app), newTypeListCommand(app), newTypeShowCommand(app))
	return cmd
}

func newTypeImportCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json|->",
		Short: "Import one content type or an array of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return sberrors.Wrap(sberrors.ErrIO, "read content types", err)
			}
			cts, err := schema.ListFromJSON(data)
			if err != nil {
				return err
			}

			e, err := app.OpenEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			for _, ct := range cts {
				if err := e.Store().PutContentType(cmd.Context(), app.Globals.Space, ct); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d fields)\n", ct.ID, len(ct.Fields))
			}
			return nil
		},
	}
}

func newTypeListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List content types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.OpenEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			cts, err := e.Store().ListContentTypes(cmd.Context(), app.Globals.Space)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, ct := range cts {
				fmt.Fprintf(w, "%s  %s\n", cliutil.KeyStyle.Render(ct.ID), cliutil.DimStyle.Render(ct.Name))
			}
			return nil
		},
	}
}

func newTypeShowCommand(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a content type and its search keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.OpenEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			ct, err := e.ContentType(cmd.Context(), app.Globals.Space, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if cliutil.ParseOutputFormat(format) == cliutil.FormatJSON {
				cliutil.PrintJSON(w, ct)
				return nil
			}

			fmt.Fprintln(w, cliutil.TitleStyle.Render(ct.ID))
			for _, f := range ct.Fields {
				line := fmt.Sprintf("  %-20s %-10s", f.ID, f.Type)
				if !f.Searchable() {
					fmt.Fprintln(w, cliutil.DimStyle.Render(line+" (not searchable)"))
					continue
				}
				fmt.Fprintln(w, cliutil.KeyStyle.Render(line))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format: pretty|json")
	return cmd
}
