package query

import "fmt"

// Span is a half-open byte range [Offset, End) in the query string.
type Span struct {
	Offset int `json:"offset"`
	End    int `json:"end"`
}

// Node is a minimal spanned piece of a Pair: its key, operator or value.
type Node struct {
	Span
	Content string `json:"content"`
}

// Token is a parsed unit of the query string: either a Pair or a Query.
type Token interface {
	Bounds() Span
	isToken()
}

// Query is bare free text that is not part of a key/value pair.
type Query struct {
	Span
	Content string `json:"content"`
}

func (Query) isToken() {}

// Bounds returns the token span.
func (q Query) Bounds() Span { return q.Span }

func (q Query) String() string {
	return fmt.Sprintf("Query[%d,%d)(%q)", q.Offset, q.End, q.Content)
}

// Pair is a key/operator/value triple such as status:published.
type Pair struct {
	Span
	Key      Node `json:"key"`
	Operator Node `json:"operator"`
	Value    Node `json:"value"`
}

func (Pair) isToken() {}

// Bounds returns the token span.
func (p Pair) Bounds() Span { return p.Span }

func (p Pair) String() string {
	return fmt.Sprintf("Pair[%d,%d)(%q %q %q)", p.Offset, p.End, p.Key.Content, p.Operator.Content, p.Value.Content)
}

// Pairs returns the Pair tokens of a stream in document order.
func Pairs(tokens []Token) []Pair {
	var out []Pair
	for _, t := range tokens {
		if p, ok := t.(Pair); ok {
			out = append(out, p)
		}
	}
	return out
}
