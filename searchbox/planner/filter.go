package planner

import (
	"maps"
	"net/url"
	"slices"

	"github.com/nonibytes/searchbox/searchbox/pseudo"
)

// Reserved filter keys.
const (
	KeyContentType = "content_type"
	KeyQuery       = "query"
)

// Filter is the flat parameter map sent to the search endpoint.
type Filter map[string]string

// merge copies frag into f; later keys win.
func (f Filter) merge(frag pseudo.Fragment) {
	maps.Copy(f, frag)
}

// Keys returns the filter keys sorted.
func (f Filter) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// Encode renders the filter as a URL query string with sorted keys.
func (f Filter) Encode() string {
	v := make(url.Values, len(f))
	for k, val := range f {
		v.Set(k, val)
	}
	return v.Encode()
}
