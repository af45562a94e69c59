package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairAndQuery(t *testing.T) {
	tokens, err := Parse("status:published dogs")
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	pair, ok := tokens[0].(Pair)
	require.True(t, ok)
	assert.Equal(t, "status", pair.Key.Content)
	assert.Equal(t, "published", pair.Value.Content)

	q, ok := tokens[1].(Query)
	require.True(t, ok)
	assert.Equal(t, Query{Span: Span{17, 21}, Content: "dogs"}, q)
}

func TestParseMergesBareWords(t *testing.T) {
	tokens, err := Parse(`big "hairy dogs" status:draft bark loudly`)
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, Query{Span: Span{0, 16}, Content: "big hairy dogs"}, tokens[0])
	_, ok := tokens[1].(Pair)
	assert.True(t, ok)
	assert.Equal(t, Query{Span: Span{30, 41}, Content: "bark loudly"}, tokens[2])
}

func TestParseChildrenOrdered(t *testing.T) {
	tokens, err := Parse(`title:dogs author:"Jane Doe" updatedAt>=2020-01-01`)
	require.NoError(t, err)

	for _, p := range Pairs(tokens) {
		assert.LessOrEqual(t, p.Offset, p.Key.Offset)
		assert.LessOrEqual(t, p.Key.End, p.Operator.Offset)
		assert.LessOrEqual(t, p.Operator.End, p.Value.Offset)
		assert.LessOrEqual(t, p.Value.End, p.End)
	}
	assert.Len(t, Pairs(tokens), 3)
}

func TestParseEmpty(t *testing.T) {
	tokens, err := Parse("   ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestParseError(t *testing.T) {
	tokens, err := Parse(`"dangling`)
	assert.Error(t, err)
	assert.Nil(t, tokens)
}
