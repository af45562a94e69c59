package query

import (
	"log/slog"
	"sync"

	"github.com/nonibytes/searchbox/internal/logging"
)

// Cache memoizes the most recent parse. It holds exactly one generation:
// a different query string replaces the slot. Each search box owns its own
// Cache.
type Cache struct {
	parser Parser
	logger *slog.Logger

	mu     sync.Mutex
	valid  bool
	last   string
	tokens []Token
	err    error
}

// NewCache returns a Cache in front of parser. A nil parser uses DefaultParser.
func NewCache(parser Parser, logger *slog.Logger) *Cache {
	if parser == nil {
		parser = DefaultParser
	}
	return &Cache{
		parser: parser,
		logger: logging.Default(logger).With("component", "parse-cache"),
	}
}

// Parse returns the tokens for input, invoking the parser only when input
// differs from the previous call. Failed parses are cached as well.
func (c *Cache) Parse(input string) ([]Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.last == input {
		return c.tokens, c.err
	}

	tokens, err := c.parser.Parse(input)
	if err != nil {
		c.logger.Debug("parse failed", "query", input, "error", err)
		tokens = nil
	}
	c.valid = true
	c.last = input
	c.tokens = tokens
	c.err = err
	return tokens, err
}

// Tokens is Parse with the error discarded: a malformed query has no tokens.
func (c *Cache) Tokens(input string) []Token {
	tokens, _ := c.Parse(input)
	return tokens
}
