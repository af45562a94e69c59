package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nonibytes/searchbox/internal/cliopt"
	sberrors "github.com/nonibytes/searchbox/searchbox/errors"
	"github.com/nonibytes/searchbox/searchbox/storage"
	"github.com/nonibytes/searchbox/searchbox/storage/postgres"
	"github.com/nonibytes/searchbox/searchbox/storage/sqlite"
)

type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatQuery  OutputFormat = "query"
	FormatJSON   OutputFormat = "json"
)

func ParseOutputFormat(s string) OutputFormat {
	switch OutputFormat(s) {
	case FormatPretty, FormatQuery, FormatJSON:
		return OutputFormat(s)
	default:
		return FormatPretty
	}
}

func PrintJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

// DefaultDBName is the file created inside a --sqlite-path directory.
const DefaultDBName = "searchbox.db"

// ResolveSQLitePath turns --sqlite-path into a database file: an explicit
// .db path or an existing file is used as-is, anything else is treated as
// a directory holding searchbox.db.
func ResolveSQLitePath(p string) string {
	if strings.HasSuffix(p, ".db") || strings.HasPrefix(p, "file:") {
		return p
	}
	if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
		return p
	}
	return filepath.Join(p, DefaultDBName)
}

// NewAdapter creates the storage adapter selected by the global options.
func NewAdapter(g cliopt.GlobalOptions) (storage.Adapter, error) {
	switch strings.ToLower(g.Backend) {
	case "", string(storage.BackendSQLite):
		switch g.SQLiteDriver {
		case "", sqlite.DriverModernc, sqlite.DriverMattn:
		default:
			return nil, sberrors.New(sberrors.ErrConfig, fmt.Sprintf("unknown sqlite driver %q", g.SQLiteDriver))
		}
		return sqlite.NewWithDriver(ResolveSQLitePath(g.SQLitePath), g.SQLiteDriver), nil
	case string(storage.BackendPostgres), "pg":
		if g.PostgresDSN == "" {
			return nil, sberrors.New(sberrors.ErrConfig, "postgres backend requires --pg-dsn")
		}
		return postgres.New(g.PostgresDSN, g.PostgresSchema), nil
	default:
		return nil, sberrors.New(sberrors.ErrConfig, fmt.Sprintf("unknown backend %q", g.Backend))
	}
}
