package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nonibytes/searchbox/internal/logging"
	"github.com/nonibytes/searchbox/searchbox/pseudo"
	"github.com/nonibytes/searchbox/searchbox/query"
	"github.com/nonibytes/searchbox/searchbox/schema"
)

// SysPrefix marks raw system attribute keys, which pass through unchanged.
const SysPrefix = "sys."

// CompileOutput is the result of compiling a token stream.
type CompileOutput struct {
	Filter       Filter
	ExplainSteps []string
}

// Compiler turns parsed search box input into a filter.
type Compiler struct {
	registry *pseudo.Registry
	logger   *slog.Logger
}

// NewCompiler returns a compiler resolving pseudo keys through registry.
func NewCompiler(registry *pseudo.Registry, logger *slog.Logger) *Compiler {
	return &Compiler{
		registry: registry,
		logger:   logging.Default(logger).With("component", "compiler"),
	}
}

// Compile builds the filter for tokens. ct may be nil. Pairs without a
// value and pairs that resolve to nothing are dropped; the only error
// returned is the context's.
func (c *Compiler) Compile(ctx context.Context, ct *schema.ContentType, space string, tokens []query.Token) (*CompileOutput, error) {
	out := &CompileOutput{Filter: Filter{}}
	if ct != nil {
		out.Filter[KeyContentType] = ct.ID
		out.ExplainSteps = append(out.ExplainSteps, fmt.Sprintf("CONTENT TYPE %s", ct.ID))
	}

	var pairs []query.Pair
	for _, p := range query.Pairs(tokens) {
		if p.Value.Content != "" {
			pairs = append(pairs, p)
		}
	}

	frags := make([]pseudo.Fragment, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range pairs {
		g.Go(func() error {
			frags[i] = c.convert(gctx, ct, space, p)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, p := range pairs {
		if frags[i] == nil {
			c.logger.Debug("pair dropped", "key", p.Key.Content, "operator", p.Operator.Content, "value", p.Value.Content)
			out.ExplainSteps = append(out.ExplainSteps, fmt.Sprintf("DROP %s", p))
			continue
		}
		out.Filter.merge(frags[i])
		for _, k := range Filter(frags[i]).Keys() {
			out.ExplainSteps = append(out.ExplainSteps, fmt.Sprintf("SET %s = %s", k, frags[i][k]))
		}
	}

	if n := len(tokens); n > 0 {
		if q, ok := tokens[n-1].(query.Query); ok {
			out.Filter[KeyQuery] = q.Content
			out.ExplainSteps = append(out.ExplainSteps, fmt.Sprintf("QUERY %q", q.Content))
		}
	}

	if _, ok := out.Filter[pseudo.ArchivedAttr]; !ok {
		out.Filter[pseudo.ArchivedAttr] = "false"
		out.ExplainSteps = append(out.ExplainSteps, "DEFAULT "+pseudo.ArchivedAttr+" = false")
	}
	return out, nil
}

func (c *Compiler) convert(ctx context.Context, ct *schema.ContentType, space string, p query.Pair) pseudo.Fragment {
	key, op, value := p.Key.Content, p.Operator.Content, p.Value.Content
	if f, ok := c.registry.Lookup(key); ok {
		return applyRule(ctx, f.Convert, op, value, space)
	}
	if strings.HasPrefix(key, SysPrefix) {
		return pseudo.Fragment{key: value}
	}
	return fieldFragment(ct, key, value)
}

func applyRule(ctx context.Context, rule pseudo.ConvertRule, op, value, space string) pseudo.Fragment {
	switch r := rule.(type) {
	case pseudo.FuncRule:
		if r.Fn == nil {
			return nil
		}
		frag, ok := r.Fn(ctx, op, value, space)
		if !ok {
			return nil
		}
		return frag
	case pseudo.LiteralRule:
		return r.Fragment
	case pseudo.MapRule:
		entry, ok := r[value]
		if !ok {
			return nil
		}
		switch e := entry.(type) {
		case pseudo.FuncRule, pseudo.LiteralRule:
			return applyRule(ctx, e, op, value, space)
		default:
			return nil
		}
	default:
		return nil
	}
}

// fieldFragment converts a pair on a content type field. Text fields
// match by substring; every other type matches exactly, whatever the
// operator.
func fieldFragment(ct *schema.ContentType, key, value string) pseudo.Fragment {
	f, ok := ct.Resolve(key)
	if !ok {
		return nil
	}
	name := "fields." + f.ID
	if f.Type == schema.TypeText {
		name += "[match]"
	}
	return pseudo.Fragment{name: value}
}
