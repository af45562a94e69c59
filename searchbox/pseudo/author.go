package pseudo

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nonibytes/searchbox/internal/logging"
	"github.com/nonibytes/searchbox/searchbox/schema"
	"github.com/nonibytes/searchbox/searchbox/userdir"
)

// AuthorAttr is the filter key an author pair converts to.
const AuthorAttr = "sys.createdBy.sys.id"

// DisplayNames assigns every user a unique display name, in directory
// order. A user whose name was already taken gets " (<id>)" appended.
func DisplayNames(users []userdir.User) ([]string, map[string]userdir.User) {
	names := make([]string, 0, len(users))
	byName := make(map[string]userdir.User, len(users))
	for _, u := range users {
		name := u.Name
		if _, taken := byName[name]; taken {
			name = fmt.Sprintf("%s (%s)", name, u.ID)
		}
		if _, taken := byName[name]; !taken {
			names = append(names, name)
		}
		byName[name] = u
	}
	return names, byName
}

// AuthorField matches content records by the user who created them.
func AuthorField(users userdir.Directory, logger *slog.Logger) Field {
	logger = logging.Default(logger)
	load := func(ctx context.Context, space string) ([]string, map[string]userdir.User, bool) {
		if users == nil {
			return nil, nil, false
		}
		list, err := users.ListUsers(ctx, space)
		if err != nil {
			logger.Warn("list users failed", "space", space, "error", err)
			return nil, nil, false
		}
		names, byName := DisplayNames(list)
		return names, byName, true
	}

	return Field{
		Key:       "author",
		Operators: schema.MatchOperators,
		Complete: DynamicValues(func(ctx context.Context, _ *schema.ContentType, space string) ([]string, error) {
			names, _, ok := load(ctx, space)
			if !ok {
				return nil, nil
			}
			quoted := make([]string, len(names))
			for i, n := range names {
				quoted[i] = strconv.Quote(n)
			}
			return quoted, nil
		}),
		Convert: FuncRule{Fn: func(ctx context.Context, _, value, space string) (Fragment, bool) {
			_, byName, ok := load(ctx, space)
			if !ok {
				return nil, false
			}
			u, found := byName[value]
			if !found {
				return nil, false
			}
			return Fragment{AuthorAttr: u.ID}, true
		}},
	}
}
