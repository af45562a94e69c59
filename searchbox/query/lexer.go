package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LexKind is the type of a lexeme
type LexKind int

const (
	LexWord LexKind = iota
	LexPair
	LexEOF
)

func (k LexKind) String() string {
	switch k {
	case LexWord:
		return "Word"
	case LexPair:
		return "Pair"
	case LexEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Operators recognised between a key and its value, longest first.
var Operators = []string{"<=", ">=", "==", "<", ">", ":", "="}

// Lexeme is one whitespace separated term of the query string
type Lexeme struct {
	Kind   LexKind
	Span   Span
	Word   string // unquoted content, LexWord only
	Quoted bool

	Key      Node
	Operator Node
	Value    Node
}

// Lexer splits a query string into words and key/operator/value terms.
// Positions are byte offsets into the input.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer for the input string
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Lex tokenizes the entire input
func Lex(input string) ([]Lexeme, error) {
	lexer := NewLexer(input)
	var out []Lexeme

	for {
		lx, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, lx)
		if lx.Kind == LexEOF {
			break
		}
	}

	return out, nil
}

// Pos returns the current byte offset.
func (l *Lexer) Pos() int { return l.pos }

// Next returns the next lexeme
func (l *Lexer) Next() (Lexeme, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Lexeme{Kind: LexEOF, Span: Span{Offset: l.pos, End: l.pos}}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	if ch == '"' {
		content, err := l.scanString()
		if err != nil {
			return Lexeme{}, err
		}
		return Lexeme{Kind: LexWord, Span: Span{Offset: start, End: l.pos}, Word: content, Quoted: true}, nil
	}

	if isKeyStart(ch) {
		for l.pos < len(l.input) && isKeyChar(l.input[l.pos]) {
			l.pos++
		}
		if op := l.matchOperator(); op != "" {
			return l.scanPair(start, op)
		}
	}

	l.skipWord()
	return Lexeme{Kind: LexWord, Span: Span{Offset: start, End: l.pos}, Word: l.input[start:l.pos]}, nil
}

// scanPair finishes a key/operator/value term; the key has been consumed.
func (l *Lexer) scanPair(start int, op string) (Lexeme, error) {
	key := Node{Span: Span{Offset: start, End: l.pos}, Content: l.input[start:l.pos]}
	opStart := l.pos
	l.pos += len(op)
	operator := Node{Span: Span{Offset: opStart, End: l.pos}, Content: op}

	valStart := l.pos
	var value Node
	switch {
	case l.pos < len(l.input) && l.input[l.pos] == '"':
		content, err := l.scanString()
		if err != nil {
			return Lexeme{}, err
		}
		value = Node{Span: Span{Offset: valStart, End: l.pos}, Content: content}
	default:
		l.skipWord()
		value = Node{Span: Span{Offset: valStart, End: l.pos}, Content: l.input[valStart:l.pos]}
	}

	return Lexeme{
		Kind:     LexPair,
		Span:     Span{Offset: start, End: l.pos},
		Key:      key,
		Operator: operator,
		Value:    value,
	}, nil
}

func (l *Lexer) matchOperator() string {
	rest := l.input[l.pos:]
	for _, op := range Operators {
		if strings.HasPrefix(rest, op) {
			return op
		}
	}
	return ""
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *Lexer) skipWord() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *Lexer) scanString() (string, error) {
	open := l.pos
	l.pos++ // consume opening quote
	var sb strings.Builder

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '"' {
			l.pos++ // consume closing quote
			return sb.String(), nil
		}
		if ch == '\\' && l.pos+1 < len(l.input) {
			l.pos++
			switch l.input[l.pos] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(l.input[l.pos])
			}
			l.pos++
			continue
		}
		sb.WriteByte(ch)
		l.pos++
	}

	return "", newParseError(open, ErrUnterminatedString, "unterminated string starting at %d", open)
}

func isKeyStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isKeyChar(ch byte) bool {
	return isKeyStart(ch) || (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' || ch == '[' || ch == ']'
}
