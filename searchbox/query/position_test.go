package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExhaustive(t *testing.T) {
	spans := []Span{{0, 1}, {2, 7}, {5, 6}, {10, 30}}
	for _, sp := range spans {
		for c := -2; c <= 35; c++ {
			p := Classify(c, sp)

			n := 0
			for _, b := range []bool{p.Before, p.Start, p.Inside, p.End, p.After} {
				n += boolToInt(b)
			}
			assert.Equal(t, 1, n, "c=%d span=%v", c, sp)
			assert.Equal(t, c == sp.Offset, p.Start)
			assert.Equal(t, c == sp.End, p.End)
			assert.Equal(t, !p.Outside(), p.Touch())
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestClassifyZeroWidth(t *testing.T) {
	p := Classify(4, Span{4, 4})
	assert.True(t, p.Start)
	assert.True(t, p.End)
	assert.False(t, p.Inside)
	assert.True(t, p.Touch())
}

func TestClassifyDerived(t *testing.T) {
	sp := Span{3, 6}
	assert.True(t, Classify(3, sp).Pre())
	assert.False(t, Classify(3, sp).Post())
	assert.True(t, Classify(4, sp).Pre())
	assert.True(t, Classify(4, sp).Post())
	assert.True(t, Classify(6, sp).Post())
	assert.False(t, Classify(6, sp).Pre())
	assert.True(t, Classify(2, sp).Outside())
	assert.True(t, Classify(7, sp).Outside())
}

func TestCurrentToken(t *testing.T) {
	tokens, err := Parse("status:published dogs")
	require.NoError(t, err)

	tok, ok := CurrentToken(tokens, 0)
	require.True(t, ok)
	pair, isPair := tok.(Pair)
	require.True(t, isPair)
	assert.Equal(t, "status", pair.Key.Content)

	tok, ok = CurrentToken(tokens, 16)
	require.True(t, ok)
	assert.IsType(t, Pair{}, tok)

	tok, ok = CurrentToken(tokens, 19)
	require.True(t, ok)
	assert.Equal(t, "dogs", tok.(Query).Content)

	_, ok = CurrentToken(tokens, 22)
	assert.False(t, ok, "cursor past the last token")

	_, ok = CurrentToken(nil, 0)
	assert.False(t, ok)
}

func TestCurrentTokenFirstWins(t *testing.T) {
	// Overlapping spans never come out of the parser but the scan order decides.
	tokens := []Token{
		Query{Span: Span{0, 4}, Content: "a"},
		Query{Span: Span{4, 8}, Content: "b"},
	}
	tok, ok := CurrentToken(tokens, 4)
	require.True(t, ok)
	assert.Equal(t, "a", tok.(Query).Content)
}

func TestResolveSubToken(t *testing.T) {
	tokens, err := Parse("updatedAt>=2020 status: title:x")
	require.NoError(t, err)
	never := func(string) bool { return false }
	always := func(string) bool { return true }

	cases := []struct {
		name   string
		cursor int
		has    ValuesAvailable
		part   Part
		text   string
	}{
		{"in key", 3, never, PartKey, "updatedAt"},
		{"key end is before operator", 8, never, PartKey, "updatedAt"},
		{"operator start", 9, never, PartOperator, ">="},
		{"operator inside", 10, never, PartOperator, ">="},
		{"operator end without values", 11, never, PartOperator, ">="},
		{"operator end with values", 11, always, PartValue, "2020"},
		{"in value", 13, never, PartValue, "2020"},
		{"empty value with values", 23, always, PartValue, ""},
		{"empty value without values", 23, never, PartOperator, ":"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := CurrentSubToken(tokens, tc.cursor, tc.has)
			require.True(t, ok)
			assert.Equal(t, tc.part, st.Part)
			assert.Equal(t, tc.text, st.Node.Content)
		})
	}
}

func TestResolveSubTokenQuery(t *testing.T) {
	tokens, err := Parse("hello world")
	require.NoError(t, err)

	st, ok := CurrentSubToken(tokens, 2, nil)
	require.True(t, ok)
	assert.Equal(t, PartQuery, st.Part)
	assert.Equal(t, Node{Span: Span{0, 11}, Content: "hello world"}, st.Node)

	_, ok = CurrentSubToken(tokens, 20, nil)
	assert.False(t, ok)
}
