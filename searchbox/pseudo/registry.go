// Package pseudo holds the search keys whose completion and conversion are
// hard-coded rather than derived from content type fields.
package pseudo

import (
	"context"
	"log/slog"
	"time"

	"github.com/nonibytes/searchbox/internal/logging"
	"github.com/nonibytes/searchbox/searchbox/schema"
	"github.com/nonibytes/searchbox/searchbox/userdir"
)

// Fragment is one flat piece of the compiled filter.
type Fragment map[string]string

// ConvertFunc turns an operator and value into a fragment. The boolean is
// false when the pair contributes nothing.
type ConvertFunc func(ctx context.Context, op, value, space string) (Fragment, bool)

// ConvertRule says how a pair with a pseudo key becomes a fragment.
// It is one of FuncRule, LiteralRule or MapRule.
type ConvertRule interface {
	isConvertRule()
}

// FuncRule converts by calling Fn.
type FuncRule struct {
	Fn ConvertFunc
}

// LiteralRule always yields the same fragment.
type LiteralRule struct {
	Fragment Fragment
}

// MapRule selects a rule by the pair's value. Entries are FuncRule or
// LiteralRule.
type MapRule map[string]ConvertRule

func (FuncRule) isConvertRule()    {}
func (LiteralRule) isConvertRule() {}
func (MapRule) isConvertRule()     {}

// Completer supplies value completions. It is one of StaticValues or
// DynamicValues.
type Completer interface {
	isCompleter()
}

// StaticValues is a fixed completion list.
type StaticValues []string

// DynamicValues computes completions, possibly with I/O.
type DynamicValues func(ctx context.Context, ct *schema.ContentType, space string) ([]string, error)

func (StaticValues) isCompleter()  {}
func (DynamicValues) isCompleter() {}

// Field is the behavior of one pseudo key.
type Field struct {
	Key       string
	Operators []string
	Complete  Completer // nil when the key has no value completions
	Convert   ConvertRule
}

// HasValues reports whether value completions may exist without computing
// them: a non-empty static list or any dynamic completer.
func (f Field) HasValues() bool {
	switch c := f.Complete.(type) {
	case StaticValues:
		return len(c) > 0
	case DynamicValues:
		return c != nil
	default:
		return false
	}
}

// Values computes the value completions for the key.
func (f Field) Values(ctx context.Context, ct *schema.ContentType, space string) ([]string, error) {
	switch c := f.Complete.(type) {
	case StaticValues:
		return []string(c), nil
	case DynamicValues:
		if c == nil {
			return nil, nil
		}
		return c(ctx, ct, space)
	default:
		return nil, nil
	}
}

// Options configure the built-in pseudo fields.
type Options struct {
	Now    func() time.Time
	Logger *slog.Logger
}

// Registry is the ordered table of pseudo keys.
type Registry struct {
	fields []Field
	byKey  map[string]int
}

// NewRegistry returns a registry with the given fields, in order.
func NewRegistry(fields ...Field) *Registry {
	r := &Registry{byKey: make(map[string]int, len(fields))}
	for _, f := range fields {
		if i, ok := r.byKey[f.Key]; ok {
			r.fields[i] = f
			continue
		}
		r.byKey[f.Key] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	return r
}

// Builtin returns the standard table: updatedAt, createdAt, author, status.
func Builtin(users userdir.Directory, opts Options) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := logging.Default(opts.Logger).With("component", "pseudo")
	return NewRegistry(
		DateField("updatedAt", "sys.updatedAt", opts.Now),
		DateField("createdAt", "sys.createdAt", opts.Now),
		AuthorField(users, logger),
		StatusField(),
	)
}

// Lookup returns the pseudo field for key.
func (r *Registry) Lookup(key string) (Field, bool) {
	if r == nil {
		return Field{}, false
	}
	i, ok := r.byKey[key]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// Keys returns the pseudo keys in registration order.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}
