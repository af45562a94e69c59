package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderQuestion(t *testing.T) {
	b := New(PlaceholderQuestion)
	assert.Equal(t, "?", b.Arg("space"))
	assert.Equal(t, "?, ?", b.In("a", "b"))
	assert.Equal(t, []any{"space", "a", "b"}, b.Args())
	assert.Equal(t, 3, b.Len())
}

func TestBuilderDollar(t *testing.T) {
	b := New(PlaceholderDollar)
	assert.Equal(t, "$1", b.Arg("space"))
	assert.Equal(t, "$2, $3, $4", b.In("a", "b", "c"))
	assert.Equal(t, 4, b.Len())
}
