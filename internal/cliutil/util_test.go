package cliutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonibytes/searchbox/internal/cliopt"
	sberrors "github.com/nonibytes/searchbox/searchbox/errors"
	"github.com/nonibytes/searchbox/searchbox/storage"
	"github.com/nonibytes/searchbox/searchbox/storage/sqlite"
)

func TestResolveSQLitePath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, DefaultDBName), ResolveSQLitePath(dir))
	assert.Equal(t, "x/custom.db", ResolveSQLitePath("x/custom.db"))

	existing := filepath.Join(dir, "data.sqlite")
	require.NoError(t, os.WriteFile(existing, nil, 0644))
	assert.Equal(t, existing, ResolveSQLitePath(existing))
}

func TestNewAdapter(t *testing.T) {
	g := cliopt.DefaultGlobalOptions()
	g.SQLitePath = "a.db"
	g.SQLiteDriver = "sqlite3"
	a, err := NewAdapter(g)
	require.NoError(t, err)
	assert.Equal(t, storage.BackendSQLite, a.Backend())
	assert.Equal(t, sqlite.DriverMattn, a.(*sqlite.Adapter).DriverName)

	g.Backend = "postgres"
	_, err = NewAdapter(g)
	assert.True(t, sberrors.IsKind(err, sberrors.ErrConfig))

	g.PostgresDSN = "postgres://localhost/sb"
	a, err = NewAdapter(g)
	require.NoError(t, err)
	assert.Equal(t, "postgres:searchbox", a.StoreID())

	g.Backend = "redis"
	_, err = NewAdapter(g)
	assert.Error(t, err)

	g.Backend = "sqlite"
	g.SQLiteDriver = "duckdb"
	_, err = NewAdapter(g)
	assert.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseOutputFormat("json"))
	assert.Equal(t, FormatQuery, ParseOutputFormat("query"))
	assert.Equal(t, FormatPretty, ParseOutputFormat("whatever"))
}
