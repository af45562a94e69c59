package ops

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/nonibytes/searchbox/internal/logging"
	"github.com/nonibytes/searchbox/searchbox/pseudo"
	"github.com/nonibytes/searchbox/searchbox/query"
	"github.com/nonibytes/searchbox/searchbox/schema"
)

// Env is what completion needs to know about the search box.
type Env struct {
	Registry    *pseudo.Registry
	ContentType *schema.ContentType // nil when no content type is selected
	Space       string
	Logger      *slog.Logger
}

// OfferCompletion returns the candidates for the cursor position: keys
// when no pair is under the cursor, otherwise operators or values for the
// pair's key. The only error returned is the context's.
func OfferCompletion(ctx context.Context, env Env, tokens []query.Token, cursor int) ([]string, error) {
	tok, ok := query.CurrentToken(tokens, cursor)
	if !ok {
		return KeyCompletions(env.Registry, env.ContentType), nil
	}
	pair, ok := tok.(query.Pair)
	if !ok {
		return KeyCompletions(env.Registry, env.ContentType), nil
	}

	key := pair.Key.Content
	pos := query.Classify(cursor, pair.Operator.Span)
	switch {
	case pos.Before:
		n := min(max(cursor-pair.Key.Offset, 0), len(key))
		return filterPrefix(KeyCompletions(env.Registry, env.ContentType), key[:n]), nil
	case pos.Pre():
		return OperatorCompletions(env.Registry, env.ContentType, key), nil
	case pos.End:
		values, err := ValueCompletions(ctx, env, key)
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			return values, nil
		}
		if ops := OperatorCompletions(env.Registry, env.ContentType, key); len(ops) > 1 {
			return ops, nil
		}
		return nil, nil
	default:
		return ValueCompletions(ctx, env, key)
	}
}

// KeyCompletions lists the searchable field ids of ct followed by the
// pseudo keys, without duplicates.
func KeyCompletions(reg *pseudo.Registry, ct *schema.ContentType) []string {
	ids := ct.SearchableFieldIDs()
	keys := make([]string, 0, len(ids)+4)
	seen := make(map[string]bool, len(ids)+4)
	for _, k := range append(ids, reg.Keys()...) {
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// OperatorCompletions returns the operators for key. Pseudo keys take
// precedence over content type fields.
func OperatorCompletions(reg *pseudo.Registry, ct *schema.ContentType, key string) []string {
	if f, ok := reg.Lookup(key); ok {
		return f.Operators
	}
	f, _ := ct.Resolve(key)
	return schema.OperatorCompletions(f.Type)
}

// ValueCompletions returns the values for key. Completer failures other
// than cancellation are logged and yield no values.
func ValueCompletions(ctx context.Context, env Env, key string) ([]string, error) {
	if f, ok := env.Registry.Lookup(key); ok {
		values, err := f.Values(ctx, env.ContentType, env.Space)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logging.Default(env.Logger).Warn("value completion failed", "key", key, "error", err)
			return nil, nil
		}
		return values, nil
	}
	if f, ok := env.ContentType.Resolve(key); ok {
		return schema.ValueCompletions(f), nil
	}
	return nil, nil
}

// ValuesAvailable reports, without I/O, whether key may have value
// completions. It backs query.CurrentSubToken.
func ValuesAvailable(reg *pseudo.Registry, ct *schema.ContentType) query.ValuesAvailable {
	return func(key string) bool {
		if f, ok := reg.Lookup(key); ok {
			return f.HasValues()
		}
		f, ok := ct.Resolve(key)
		return ok && len(schema.ValueCompletions(f)) > 0
	}
}

func filterPrefix(keys []string, prefix string) []string {
	if prefix == "" {
		return keys
	}
	fold := cases.Fold()
	prefix = fold.String(prefix)
	out := keys[:0]
	for _, k := range keys {
		if strings.HasPrefix(fold.String(k), prefix) {
			out = append(out, k)
		}
	}
	return out
}
