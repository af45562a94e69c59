package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonibytes/searchbox/searchbox/storage"
	"github.com/nonibytes/searchbox/searchbox/storage/sqlbuilder"
)

func TestSearchPathConfig(t *testing.T) {
	a := New("postgres://u:p@localhost:5432/db?sslmode=disable", "tenant_a")
	cfg, err := a.SearchPathConfig()
	require.NoError(t, err)
	assert.Equal(t, `"tenant_a",public`, cfg.RuntimeParams["search_path"])
	assert.Equal(t, "db", cfg.Database)

	assert.Equal(t, storage.BackendPostgres, a.Backend())
	assert.Equal(t, sqlbuilder.PlaceholderDollar, a.PlaceholderStyle())
	assert.Equal(t, "postgres:tenant_a", a.StoreID())
}

func TestValidateSchema(t *testing.T) {
	assert.NoError(t, ValidateSchema("searchbox"))
	assert.Error(t, ValidateSchema(""))
	assert.Error(t, ValidateSchema(`x"; DROP TABLE users; --`))
	assert.Error(t, ValidateSchema("1abc"))

	_, err := New("postgres://localhost/db", "bad-name").SearchPathConfig()
	assert.Error(t, err)
}
