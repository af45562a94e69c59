package searchbox

import (
	"log/slog"
	"time"

	"github.com/nonibytes/searchbox/searchbox/query"
)

// Options configures engine behavior
type Options struct {
	Now          func() time.Time
	UserCacheTTL time.Duration // default 5m
	Logger       *slog.Logger
	Parser       query.Parser // default query.DefaultParser
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		Now:          time.Now,
		UserCacheTTL: DefaultUserCacheTTL,
		Parser:       query.DefaultParser,
	}
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.UserCacheTTL <= 0 {
		o.UserCacheTTL = DefaultUserCacheTTL
	}
	if o.Parser == nil {
		o.Parser = query.DefaultParser
	}
	return o
}
