package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nonibytes/searchbox/internal/cliutil"
	sberrors "github.com/nonibytes/searchbox/searchbox/errors"
	"github.com/nonibytes/searchbox/searchbox/userdir"
)

func NewUserCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the user directory of a space",
	}
	cmd.AddCommand(newUserAddCommand(app), newUserListCommand(app), newUserRemoveCommand(app))
	return cmd
}

func newUserAddCommand(app *App) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a user, or rename one when --id exists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if id == "" {
				id = uuid.NewString()
			}
			e, err := app.OpenEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.Store().PutUser(cmd.Context(), app.Globals.Space, userdir.User{ID: id, Name: name}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "user id (default: random UUID)")
	return cmd
}

func newUserListCommand(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the users of the space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.OpenEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			users, err := e.Store().ListUsers(cmd.Context(), app.Globals.Space)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if cliutil.ParseOutputFormat(format) == cliutil.FormatJSON {
				if users == nil {
					users = []userdir.User{}
				}
				cliutil.PrintJSON(w, users)
				return nil
			}
			for _, u := range users {
				fmt.Fprintf(w, "%s  %s\n", cliutil.DimStyle.Render(u.ID), u.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format: pretty|json")
	return cmd
}

func newUserRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>...",
		Short: "Remove users by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.OpenEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			n, err := e.Store().DeleteUsers(cmd.Context(), app.Globals.Space, args...)
			if err != nil {
				return err
			}
			if n == 0 {
				return sberrors.NotFoundError(fmt.Sprintf("users %s", strings.Join(args, ", ")))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", n)
			return nil
		},
	}
}
