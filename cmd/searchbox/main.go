// Command searchbox inspects and compiles search box queries against a
// store of users and content types.
//
// Logging:
//   - The base logger is built by the root command from --log-level and
//     --log-format (or the config file) and written to stderr
//   - It is passed to all components via dependency injection
//   - No global slog configuration (no slog.SetDefault)
package main

import (
	"context"
	"os"
	"os/signal"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/nonibytes/searchbox/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
