// Package userdir provides the user directory consulted by the author
// search key, and a caching front for it.
package userdir

import "context"

// User is a member of a space.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Directory lists the users of a space.
type Directory interface {
	ListUsers(ctx context.Context, space string) ([]User, error)
}

// DirectoryFunc adapts a function to the Directory interface.
type DirectoryFunc func(ctx context.Context, space string) ([]User, error)

// ListUsers calls f(ctx, space).
func (f DirectoryFunc) ListUsers(ctx context.Context, space string) ([]User, error) {
	return f(ctx, space)
}

// Static is an in-memory Directory keyed by space.
type Static map[string][]User

// ListUsers returns the users registered for space.
func (s Static) ListUsers(_ context.Context, space string) ([]User, error) {
	return s[space], nil
}
