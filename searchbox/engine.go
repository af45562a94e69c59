package searchbox

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/nonibytes/searchbox/internal/logging"
	"github.com/nonibytes/searchbox/searchbox/ops"
	"github.com/nonibytes/searchbox/searchbox/planner"
	"github.com/nonibytes/searchbox/searchbox/pseudo"
	"github.com/nonibytes/searchbox/searchbox/query"
	"github.com/nonibytes/searchbox/searchbox/schema"
	"github.com/nonibytes/searchbox/searchbox/storage"
	"github.com/nonibytes/searchbox/searchbox/userdir"
)

// Engine serves one search box: it owns the parse cache, the pseudo field
// registry and the cached user directory.
type Engine struct {
	adapter storage.Adapter
	db      *sql.DB
	store   *storage.Store

	users    *userdir.Cache
	registry *pseudo.Registry
	compiler *planner.Compiler
	parses   *query.Cache

	opts   Options
	logger *slog.Logger
}

// NewEngine returns an engine without storage, looking users up in dir.
func NewEngine(dir userdir.Directory, opts Options) *Engine {
	opts = opts.withDefaults()
	logger := logging.Default(opts.Logger)

	e := &Engine{opts: opts, logger: logger.With("component", "engine")}
	if dir != nil {
		e.users = userdir.NewCache(dir, userdir.CacheOptions{TTL: opts.UserCacheTTL, Now: opts.Now, Logger: logger})
		e.registry = pseudo.Builtin(e.users, pseudo.Options{Now: opts.Now, Logger: logger})
	} else {
		e.registry = pseudo.Builtin(nil, pseudo.Options{Now: opts.Now, Logger: logger})
	}
	e.compiler = planner.NewCompiler(e.registry, logger)
	e.parses = query.NewCache(opts.Parser, logger)
	return e
}

// Create initializes a new store and returns an engine backed by it
func Create(ctx context.Context, adapter storage.Adapter, opts Options) (*Engine, error) {
	db, err := adapter.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrIO, "connect to database", err)
	}
	if err := adapter.CreateStore(ctx, db); err != nil {
		db.Close()
		return nil, Wrap(ErrSQL, "create store", err)
	}
	return newStoreEngine(adapter, db, opts), nil
}

// Open opens an existing store
func Open(ctx context.Context, adapter storage.Adapter, opts Options) (*Engine, error) {
	db, err := adapter.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrIO, "connect to database", err)
	}
	if err := adapter.OpenStore(ctx, db); err != nil {
		db.Close()
		return nil, Wrap(ErrSQL, "open store", err)
	}
	return newStoreEngine(adapter, db, opts), nil
}

func newStoreEngine(adapter storage.Adapter, db *sql.DB, opts Options) *Engine {
	opts = opts.withDefaults()
	store := storage.NewStore(db, adapter, opts.Now, opts.Logger)
	e := NewEngine(store, opts)
	e.adapter = adapter
	e.db = db
	e.store = store
	e.logger.Info("store opened", "backend", adapter.Backend(), "store", adapter.StoreID())
	return e
}

// Close closes the store, if any
func (e *Engine) Close() error {
	if e.db != nil {
		if err := e.db.Close(); err != nil {
			return Wrap(ErrIO, "close database", err)
		}
	}
	if e.adapter != nil {
		return e.adapter.Close()
	}
	return nil
}

// Store returns the backing store, or nil for an engine without storage.
func (e *Engine) Store() *storage.Store { return e.store }

// Registry returns the pseudo field registry.
func (e *Engine) Registry() *pseudo.Registry { return e.registry }

// ContentType loads a content type from the store.
func (e *Engine) ContentType(ctx context.Context, space, id string) (*schema.ContentType, error) {
	if e.store == nil {
		return nil, New(ErrBackend, "engine has no store")
	}
	return e.store.GetContentType(ctx, space, id)
}

// InvalidateUsers forgets the cached user list of space.
func (e *Engine) InvalidateUsers(space string) {
	if e.users != nil {
		e.users.Invalidate(space)
	}
}

// Parse returns the tokens of q along with any parser error.
func (e *Engine) Parse(q string) ([]query.Token, error) {
	return e.parses.Parse(q)
}

// Tokens returns the tokens of q; malformed input yields none.
func (e *Engine) Tokens(q string) []query.Token {
	return e.parses.Tokens(q)
}

// CurrentToken returns the token under the cursor.
func (e *Engine) CurrentToken(q string, cursor int) (query.Token, bool) {
	return query.CurrentToken(e.Tokens(q), cursor)
}

// CurrentSubToken returns the key, operator or value node under the
// cursor, or the free text token.
func (e *Engine) CurrentSubToken(ct *schema.ContentType, q string, cursor int) (query.SubToken, bool) {
	return query.CurrentSubToken(e.Tokens(q), cursor, ops.ValuesAvailable(e.registry, ct))
}

// OfferCompletion returns completion candidates for the cursor position.
func (e *Engine) OfferCompletion(ctx context.Context, space string, ct *schema.ContentType, q string, cursor int) ([]string, error) {
	env := ops.Env{Registry: e.registry, ContentType: ct, Space: space, Logger: e.logger}
	return ops.OfferCompletion(ctx, env, e.Tokens(q), cursor)
}

// BuildQuery compiles q into the search endpoint filter.
func (e *Engine) BuildQuery(ctx context.Context, space string, ct *schema.ContentType, q string) (planner.Filter, error) {
	out, err := e.Explain(ctx, space, ct, q)
	if err != nil {
		return nil, err
	}
	return out.Filter, nil
}

// Explain compiles q and also returns the compilation steps.
func (e *Engine) Explain(ctx context.Context, space string, ct *schema.ContentType, q string) (*planner.CompileOutput, error) {
	return e.compiler.Compile(ctx, ct, space, e.Tokens(q))
}
