package query

// Position classifies a cursor offset against a span.
//
// Exactly one of Before, Inside, After holds for a non-empty span; Start and
// End mark the boundaries. For a zero-width span Start and End are both true.
type Position struct {
	Before bool
	Start  bool
	Inside bool
	End    bool
	After  bool
}

// Classify classifies cursor against span. It is pure and never fails.
func Classify(cursor int, span Span) Position {
	return Position{
		Before: cursor < span.Offset,
		Start:  cursor == span.Offset,
		Inside: span.Offset < cursor && cursor < span.End,
		End:    cursor == span.End,
		After:  span.End < cursor,
	}
}

// Outside reports whether the cursor is strictly before or after the span.
func (p Position) Outside() bool { return p.Before || p.After }

// Pre reports whether the cursor is at the start of or inside the span.
func (p Position) Pre() bool { return p.Start || p.Inside }

// Post reports whether the cursor is inside or at the end of the span.
func (p Position) Post() bool { return p.Inside || p.End }

// Touch reports whether the cursor touches the span at all.
func (p Position) Touch() bool { return p.Pre() || p.Post() }

// CurrentToken returns the first token in document order that the cursor
// touches. Tokens the cursor has already passed are skipped.
func CurrentToken(tokens []Token, cursor int) (Token, bool) {
	for _, t := range tokens {
		pos := Classify(cursor, t.Bounds())
		if pos.After {
			continue
		}
		if pos.Touch() {
			return t, true
		}
	}
	return nil, false
}

// Part names the piece of a token the cursor is editing.
type Part int

const (
	PartQuery Part = iota
	PartKey
	PartOperator
	PartValue
)

func (p Part) String() string {
	switch p {
	case PartQuery:
		return "query"
	case PartKey:
		return "key"
	case PartOperator:
		return "operator"
	case PartValue:
		return "value"
	default:
		return "?"
	}
}

// SubToken is the node under the cursor together with its role.
type SubToken struct {
	Part Part
	Node Node
}

// ValuesAvailable reports whether value completions exist for a key.
type ValuesAvailable func(key string) bool

// ResolveSubToken picks the key, operator or value node of a Pair relative
// to the cursor. Only the operator span is consulted. When the cursor sits
// exactly at the end of the operator, the value node wins if values are
// available for the key, otherwise the operator node does. A Query token is
// returned as-is with PartQuery.
func ResolveSubToken(tok Token, cursor int, hasValues ValuesAvailable) SubToken {
	switch t := tok.(type) {
	case Pair:
		pos := Classify(cursor, t.Operator.Span)
		switch {
		case pos.Before:
			return SubToken{Part: PartKey, Node: t.Key}
		case pos.Pre():
			return SubToken{Part: PartOperator, Node: t.Operator}
		case pos.End:
			if hasValues != nil && hasValues(t.Key.Content) {
				return SubToken{Part: PartValue, Node: t.Value}
			}
			return SubToken{Part: PartOperator, Node: t.Operator}
		default:
			return SubToken{Part: PartValue, Node: t.Value}
		}
	case Query:
		return SubToken{Part: PartQuery, Node: Node{Span: t.Span, Content: t.Content}}
	default:
		return SubToken{}
	}
}

// CurrentSubToken locates the token under the cursor and resolves its part.
func CurrentSubToken(tokens []Token, cursor int, hasValues ValuesAvailable) (SubToken, bool) {
	tok, ok := CurrentToken(tokens, cursor)
	if !ok {
		return SubToken{}, false
	}
	return ResolveSubToken(tok, cursor, hasValues), true
}
