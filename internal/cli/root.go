package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nonibytes/searchbox/internal/cli/commands"
	"github.com/nonibytes/searchbox/internal/cliopt"
	"github.com/nonibytes/searchbox/internal/logging"
)

// NewRootCommand builds the searchbox command tree. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	app := &commands.App{Globals: cliopt.DefaultGlobalOptions()}

	root := &cobra.Command{
		Use:           "searchbox",
		Short:         "Search box query completion and filter compilation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliopt.LoadConfig(app.Globals.ConfigPath)
			if err != nil {
				return err
			}
			app.Globals.ApplyConfig(cfg, cmd.Flags())

			level, err := logging.ParseLevel(app.Globals.LogLevel)
			if err != nil {
				return err
			}
			app.Logger = logging.New(logOut, app.Globals.LogFormat, level)
			return nil
		},
	}
	cliopt.BindGlobalFlags(root.PersistentFlags(), &app.Globals)

	root.AddCommand(
		commands.NewInitCommand(app),
		commands.NewUserCommand(app),
		commands.NewTypeCommand(app),
		commands.NewTokensCommand(app),
		commands.NewCompleteCommand(app),
		commands.NewBuildCommand(app),
	)
	return root
}

// Execute runs the CLI and returns an exit code.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stderr)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
