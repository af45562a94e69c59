package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// StampMeta writes the magic and version rows after the DDL has run.
func StampMeta(ctx context.Context, db *sql.DB, sqlt SQL) error {
	if _, err := db.ExecContext(ctx, sqlt.SetMeta, "searchbox_magic", Magic); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, sqlt.SetMeta, "searchbox_version", Version)
	return err
}

// CheckMeta verifies the magic row written by StampMeta.
func CheckMeta(ctx context.Context, db *sql.DB, sqlt SQL) error {
	var magic string
	if err := db.QueryRowContext(ctx, sqlt.GetMeta, "searchbox_magic").Scan(&magic); err != nil {
		return err
	}
	if magic != Magic {
		return fmt.Errorf("not a searchbox db")
	}
	return nil
}
