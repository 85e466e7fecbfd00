package locale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, s string) *Node {
	t.Helper()
	tree, err := DecodeJSON([]byte(s))
	require.NoError(t, err)
	return tree
}

func TestExtractKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []KeyPath
	}{
		{
			name:  "empty tree",
			input: `{}`,
			want:  []KeyPath{},
		},
		{
			name:  "flat map",
			input: `{"b": "2", "a": "1"}`,
			want:  []KeyPath{"b", "a"},
		},
		{
			name:  "nested map keeps insertion order",
			input: `{"nav": {"home": "首页", "services": "服务"}, "hero": {"title": {"main": "x", "sub": "y"}}}`,
			want:  []KeyPath{"nav.home", "nav.services", "hero.title.main", "hero.title.sub"},
		},
		{
			name:  "arrays and scalars are terminals",
			input: `{"contact": {"phone": {"details": ["+86 1", "+86 2"]}}, "count": 3, "on": true, "none": null}`,
			want:  []KeyPath{"contact.phone.details", "count", "on", "none"},
		},
		{
			name:  "empty branch contributes nothing",
			input: `{"a": {}, "b": "x"}`,
			want:  []KeyPath{"b"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractKeys(mustJSON(t, tc.input))
			require.NotNil(t, got)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ExtractKeys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractKeysResolvesBackToLeaves(t *testing.T) {
	tree := mustJSON(t, `{
		"nav": {"home": "首页", "cases": "案例展示"},
		"stats": {"vessels": "500+", "list": ["a"]},
		"footer": {"locations": {"shanghai": "上海", "busan": "釜山"}}
	}`)

	terminals := 0
	Walk(tree, func(path KeyPath, n *Node) {
		terminals++
		found, ok := tree.Lookup(path)
		require.True(t, ok, "path %s does not resolve", path)
		assert.Same(t, n, found)
	})

	keys := ExtractKeys(tree)
	assert.Len(t, keys, terminals)
	assert.Len(t, keys, 6)
}

func TestFlatten(t *testing.T) {
	tree := mustJSON(t, `{"a": {"b": "value", "c": {"d": "deep"}}, "port": 8080}`)

	got := Flatten(tree)
	assert.Equal(t, map[KeyPath]string{
		"a.b":   "value",
		"a.c.d": "deep",
		"port":  "8080",
	}, got)
	assert.Equal(t, []KeyPath{"a.b", "a.c.d", "port"}, SortedKeys(got))
}

func TestKeyPath(t *testing.T) {
	assert.Equal(t, KeyPath("nav"), KeyPath("").Join("nav"))
	assert.Equal(t, KeyPath("nav.home"), KeyPath("nav").Join("home"))
	assert.Equal(t, []string{"a", "b", "c"}, KeyPath("a.b.c").Split())
	assert.Nil(t, KeyPath("").Split())
	assert.Equal(t, KeyPath("a.b"), KeyPath("a.b.c").Parent())
	assert.Equal(t, KeyPath(""), KeyPath("a").Parent())
}

func TestIsValidKeyPath(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a.b", true},
		{"services.mechanical.title", true},
		{"key-with-dash.sub", true},
		{"key_with_under.sub", true},
		{"A.B", true},
		{"single", false},
		{"", false},
		{".leading", false},
		{"trailing.", false},
		{"double..dot", false},
		{"has space.key", false},
		{"has/slash.key", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidKeyPath(tc.input))
		})
	}
}
