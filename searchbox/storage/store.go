package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/nonibytes/searchbox/internal/logging"
	sberrors "github.com/nonibytes/searchbox/searchbox/errors"
	"github.com/nonibytes/searchbox/searchbox/schema"
	"github.com/nonibytes/searchbox/searchbox/storage/sqlbuilder"
	"github.com/nonibytes/searchbox/searchbox/userdir"
)

// Store persists the user directory and content types, both scoped by
// space. It implements userdir.Directory.
type Store struct {
	db      *sql.DB
	adapter Adapter
	sqlt    SQL
	now     func() time.Time
	logger  *slog.Logger
}

var _ userdir.Directory = (*Store)(nil)

// NewStore wraps an open database prepared by adapter.
func NewStore(db *sql.DB, adapter Adapter, now func() time.Time, logger *slog.Logger) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		db:      db,
		adapter: adapter,
		sqlt:    adapter.SQL(),
		now:     now,
		logger:  logging.Default(logger).With("component", "store", "backend", string(adapter.Backend())),
	}
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB { return s.db }

// PutUser inserts a user or renames an existing one. A renamed user keeps
// its position in the directory.
func (s *Store) PutUser(ctx context.Context, space string, u userdir.User) error {
	if u.ID == "" {
		return sberrors.New(sberrors.ErrSchema, "user id is required")
	}
	if _, err := s.db.ExecContext(ctx, s.sqlt.UpsertUser, space, u.ID, u.Name, s.now().UnixMilli()); err != nil {
		return sberrors.Wrap(sberrors.ErrSQL, "put user", err)
	}
	s.logger.Debug("user stored", "space", space, "id", u.ID)
	return nil
}

// ListUsers returns the users of space in insertion order.
func (s *Store) ListUsers(ctx context.Context, space string) ([]userdir.User, error) {
	rows, err := s.db.QueryContext(ctx, s.sqlt.ListUsers, space)
	if err != nil {
		return nil, sberrors.Wrap(sberrors.ErrSQL, "list users", err)
	}
	defer rows.Close()

	var users []userdir.User
	for rows.Next() {
		var u userdir.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, sberrors.Wrap(sberrors.ErrSQL, "scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, sberrors.Wrap(sberrors.ErrSQL, "list users", err)
	}
	return users, nil
}

// DeleteUser removes one user.
func (s *Store) DeleteUser(ctx context.Context, space, id string) error {
	res, err := s.db.ExecContext(ctx, s.sqlt.DeleteUser, space, id)
	if err != nil {
		return sberrors.Wrap(sberrors.ErrSQL, "delete user", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sberrors.NotFoundError(fmt.Sprintf("user %s", id))
	}
	return nil
}

// DeleteUsers removes several users at once and returns how many existed.
func (s *Store) DeleteUsers(ctx context.Context, space string, ids ...string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	b := sqlbuilder.New(s.adapter.PlaceholderStyle())
	q := fmt.Sprintf("DELETE FROM users WHERE space = %s AND id IN (%s)", b.Arg(space), b.In(ids...))
	res, err := s.db.ExecContext(ctx, q, b.Args()...)
	if err != nil {
		return 0, sberrors.Wrap(sberrors.ErrSQL, "delete users", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// PutContentType validates and stores ct, replacing any previous version.
func (s *Store) PutContentType(ctx context.Context, space string, ct schema.ContentType) error {
	if err := ct.Validate(); err != nil {
		return err
	}
	b, err := ct.ToJSON()
	if err != nil {
		return sberrors.Wrap(sberrors.ErrSchema, "encode content type", err)
	}
	if _, err := s.db.ExecContext(ctx, s.sqlt.UpsertContentType, space, ct.ID, ct.Name, string(b), s.now().UnixMilli()); err != nil {
		return sberrors.Wrap(sberrors.ErrSQL, "put content type", err)
	}
	s.logger.Debug("content type stored", "space", space, "id", ct.ID, "fields", len(ct.Fields))
	return nil
}

// GetContentType loads one content type.
func (s *Store) GetContentType(ctx context.Context, space, id string) (*schema.ContentType, error) {
	var data string
	err := s.db.QueryRowContext(ctx, s.sqlt.GetContentType, space, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, sberrors.NotFoundError(fmt.Sprintf("content type %s", id))
	}
	if err != nil {
		return nil, sberrors.Wrap(sberrors.ErrSQL, "get content type", err)
	}
	ct, err := schema.FromJSON([]byte(data))
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// ListContentTypes returns the content types of space ordered by id.
func (s *Store) ListContentTypes(ctx context.Context, space string) ([]schema.ContentType, error) {
	rows, err := s.db.QueryContext(ctx, s.sqlt.ListContentTypes, space)
	if err != nil {
		return nil, sberrors.Wrap(sberrors.ErrSQL, "list content types", err)
	}
	defer rows.Close()

	var out []schema.ContentType
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, sberrors.Wrap(sberrors.ErrSQL, "scan content type", err)
		}
		ct, err := schema.FromJSON([]byte(data))
		if err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, sberrors.Wrap(sberrors.ErrSQL, "list content types", err)
	}
	return out, nil
}

// DeleteContentType removes one content type.
func (s *Store) DeleteContentType(ctx context.Context, space, id string) error {
	res, err := s.db.ExecContext(ctx, s.sqlt.DeleteContentType, space, id)
	if err != nil {
		return sberrors.Wrap(sberrors.ErrSQL, "delete content type", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sberrors.NotFoundError(fmt.Sprintf("content type %s", id))
	}
	return nil
}
