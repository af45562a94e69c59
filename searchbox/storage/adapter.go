package storage

import (
	"context"
	"database/sql"

	"github.com/nonibytes/searchbox/searchbox/storage/sqlbuilder"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Magic and Version identify a searchbox database in the meta table.
const (
	Magic   = "searchbox"
	Version = "1"
)

// Adapter abstracts database-specific operations
type Adapter interface {
	Backend() Backend
	PlaceholderStyle() sqlbuilder.PlaceholderStyle
	StoreID() string

	Connect(ctx context.Context) (*sql.DB, error)
	Close() error

	// CreateStore creates the tables and stamps the meta rows.
	CreateStore(ctx context.Context, db *sql.DB) error
	// OpenStore checks that db was created by CreateStore.
	OpenStore(ctx context.Context, db *sql.DB) error

	SQL() SQL
}

// SQL holds prepared SQL templates for common operations
type SQL struct {
	GetMeta string
	SetMeta string

	UpsertUser string
	ListUsers  string
	DeleteUser string

	UpsertContentType string
	GetContentType    string
	ListContentTypes  string
	DeleteContentType string
}
