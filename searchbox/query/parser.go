package query

import "strings"

// Parser turns a raw query string into a token stream.
type Parser interface {
	Parse(input string) ([]Token, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(input string) ([]Token, error)

// Parse calls f(input).
func (f ParserFunc) Parse(input string) ([]Token, error) { return f(input) }

// DefaultParser is the built-in tokenizer.
var DefaultParser Parser = ParserFunc(Parse)

// Parse parses a query string into a token stream in document order.
// Consecutive bare words collapse into a single Query token.
func Parse(input string) ([]Token, error) {
	lexemes, err := Lex(input)
	if err != nil {
		return nil, err
	}

	p := &parser{}
	for _, lx := range lexemes {
		switch lx.Kind {
		case LexWord:
			p.addWord(lx)
		case LexPair:
			p.flush()
			p.tokens = append(p.tokens, Pair{
				Span:     lx.Span,
				Key:      lx.Key,
				Operator: lx.Operator,
				Value:    lx.Value,
			})
		case LexEOF:
			p.flush()
		}
	}
	return p.tokens, nil
}

type parser struct {
	tokens []Token
	words  []string
	span   Span
}

func (p *parser) addWord(lx Lexeme) {
	if len(p.words) == 0 {
		p.span.Offset = lx.Span.Offset
	}
	p.span.End = lx.Span.End
	p.words = append(p.words, lx.Word)
}

func (p *parser) flush() {
	if len(p.words) == 0 {
		return
	}
	p.tokens = append(p.tokens, Query{Span: p.span, Content: strings.Join(p.words, " ")})
	p.words = nil
	p.span = Span{}
}
