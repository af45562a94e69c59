package pseudo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonibytes/searchbox/searchbox/userdir"
)

var fixedNow = time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestBuiltinOrder(t *testing.T) {
	r := Builtin(nil, Options{Now: clock})
	assert.Equal(t, []string{"updatedAt", "createdAt", "author", "status"}, r.Keys())

	_, ok := r.Lookup("title")
	assert.False(t, ok)

	var none *Registry
	assert.Nil(t, none.Keys())
}

func TestNewRegistryReplacesDuplicates(t *testing.T) {
	r := NewRegistry(Field{Key: "a", Operators: []string{":"}}, Field{Key: "b"}, Field{Key: "a", Operators: []string{"<"}})
	assert.Equal(t, []string{"a", "b"}, r.Keys())
	f, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []string{"<"}, f.Operators)
}

func TestConvertDateRelative(t *testing.T) {
	f := DateField("updatedAt", "sys.updatedAt", clock)
	rule, ok := f.Convert.(FuncRule)
	require.True(t, ok)

	frag, ok := rule.Fn(context.Background(), ">", "7 days ago", "")
	require.True(t, ok)
	assert.Equal(t, Fragment{"sys.updatedAt[gt]": "2024-03-08T12:30:00.000Z"}, frag)

	frag, ok = rule.Fn(context.Background(), "<=", "3   DAYS   AGO", "")
	require.True(t, ok)
	assert.Equal(t, Fragment{"sys.updatedAt[lte]": "2024-03-12T12:30:00.000Z"}, frag)
}

func TestConvertDateRelativeWallClock(t *testing.T) {
	f := DateField("updatedAt", "sys.updatedAt", time.Now)
	frag, ok := f.Convert.(FuncRule).Fn(context.Background(), ">", "7 days ago", "")
	require.True(t, ok)

	got, err := time.Parse(ISOLayout, frag["sys.updatedAt[gt]"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), got, 5*time.Second)
}

func TestConvertDateAbsolute(t *testing.T) {
	cases := []struct {
		op, exp string
		want    Fragment
	}{
		{"<", "2020-01-02", Fragment{"sys.createdAt[lt]": "2020-01-02T00:00:00.000Z"}},
		{">=", "2020-01-02T10:11:12Z", Fragment{"sys.createdAt[gte]": "2020-01-02T10:11:12.000Z"}},
		{"==", "2020-01-02T10:11:12+02:00", Fragment{"sys.createdAt": "2020-01-02T08:11:12.000Z"}},
		{">", "Jan 2, 2020", Fragment{"sys.createdAt[gt]": "2020-01-02T00:00:00.000Z"}},
	}
	for _, tc := range cases {
		t.Run(tc.op+tc.exp, func(t *testing.T) {
			frag, ok := ConvertDate("sys.createdAt", tc.op, tc.exp, fixedNow)
			require.True(t, ok)
			assert.Equal(t, tc.want, frag)
		})
	}
}

func TestConvertDateFailures(t *testing.T) {
	_, ok := ConvertDate("sys.createdAt", ">", "last tuesday", fixedNow)
	assert.False(t, ok, "unparseable dates are dropped")

	_, ok = ConvertDate("sys.createdAt", ":", "2020-01-02", fixedNow)
	assert.False(t, ok, "unknown operators are dropped")
}

func TestDisplayNames(t *testing.T) {
	users := []userdir.User{
		{ID: "u1", Name: "Jane Doe"},
		{ID: "u2", Name: "John"},
		{ID: "u3", Name: "Jane Doe"},
		{ID: "u4", Name: "jane doe"},
	}
	names, byName := DisplayNames(users)
	assert.Equal(t, []string{"Jane Doe", "John", "Jane Doe (u3)", "jane doe"}, names)
	assert.Equal(t, "u3", byName["Jane Doe (u3)"].ID)
	assert.Equal(t, "u1", byName["Jane Doe"].ID)
}

func TestAuthorField(t *testing.T) {
	dir := userdir.Static{"space1": {
		{ID: "u1", Name: "Jane Doe"},
		{ID: "u3", Name: "Jane Doe"},
	}}
	f := AuthorField(dir, nil)
	require.True(t, f.HasValues())

	vals, err := f.Values(context.Background(), nil, "space1")
	require.NoError(t, err)
	assert.Equal(t, []string{`"Jane Doe"`, `"Jane Doe (u3)"`}, vals)

	conv := f.Convert.(FuncRule).Fn
	frag, ok := conv(context.Background(), ":", "Jane Doe (u3)", "space1")
	require.True(t, ok)
	assert.Equal(t, Fragment{AuthorAttr: "u3"}, frag)

	_, ok = conv(context.Background(), ":", "Nobody", "space1")
	assert.False(t, ok)

	_, ok = conv(context.Background(), ":", "Jane Doe", "other-space")
	assert.False(t, ok)
}

func TestAuthorFieldDirectoryFailure(t *testing.T) {
	dir := userdir.DirectoryFunc(func(context.Context, string) ([]userdir.User, error) {
		return nil, errors.New("offline")
	})
	f := AuthorField(dir, nil)

	vals, err := f.Values(context.Background(), nil, "s")
	require.NoError(t, err)
	assert.Empty(t, vals)

	_, ok := f.Convert.(FuncRule).Fn(context.Background(), ":", "Jane", "s")
	assert.False(t, ok)
}

func TestStatusField(t *testing.T) {
	f := StatusField()
	assert.Equal(t, []string{":"}, f.Operators)
	assert.True(t, f.HasValues())

	vals, err := f.Values(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"published", "changed", "draft", "archived"}, vals)

	m, ok := f.Convert.(MapRule)
	require.True(t, ok)
	draft, ok := m["draft"].(LiteralRule)
	require.True(t, ok)
	assert.Equal(t, Fragment{
		"sys.archivedAt[exists]":       "false",
		"sys.publishedVersion[exists]": "false",
		"changed":                      "true",
	}, draft.Fragment)
	assert.Equal(t, Fragment{"sys.archivedAt[exists]": "true"}, m["archived"].(LiteralRule).Fragment)
}

func TestHasValues(t *testing.T) {
	assert.False(t, Field{}.HasValues())
	assert.False(t, Field{Complete: StaticValues(nil)}.HasValues())
	assert.False(t, DateField("updatedAt", "sys.updatedAt", clock).HasValues())
}
