package pathjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho-labs/pathjson/perrors"
)

func TestNewPatternRejectsEmpty(t *testing.T) {
	_, err := NewPattern("")
	require.Error(t, err)
	kind, ok := perrors.Of(err)
	require.True(t, ok)
	assert.Equal(t, perrors.Config, kind)
}

func TestNewPatternRejectsRecursiveDescent(t *testing.T) {
	_, err := NewPattern("$.a**.b")
	require.Error(t, err)
}

func TestPatternExactMatch(t *testing.T) {
	p, err := NewPattern("$.user.name")
	require.NoError(t, err)
	assert.True(t, p.Match("$.user.name"))
	assert.False(t, p.Match("$.user.name.first"))
	assert.False(t, p.Match("$.user"))
}

func TestPatternArrayWildcard(t *testing.T) {
	p, err := NewPattern("$.items[*]")
	require.NoError(t, err)
	assert.True(t, p.Match("$.items[0]"))
	assert.True(t, p.Match("$.items[42]"))
	assert.False(t, p.Match("$.items"))
	assert.False(t, p.Match("$.items[0].id"))
}

func TestPatternObjectWildcard(t *testing.T) {
	p, err := NewPattern("$.user.*")
	require.NoError(t, err)
	assert.True(t, p.Match("$.user.name"))
	assert.True(t, p.Match("$.user.age"))
	assert.False(t, p.Match("$.user.address.city"))
	assert.False(t, p.Match("$.user"))
}

func TestPatternAncestryAndDescendants(t *testing.T) {
	p, err := NewPattern("$.a.b.c")
	require.NoError(t, err)
	assert.True(t, p.IsAncestorOrMatch("$"))
	assert.True(t, p.IsAncestorOrMatch("$.a"))
	assert.True(t, p.IsAncestorOrMatch("$.a.b"))
	assert.True(t, p.HasMatchingDescendants("$.a.b"))
	assert.False(t, p.HasMatchingDescendants("$.a.b.c"))
	assert.False(t, p.IsAncestorOrMatch("$.x"))
	// "$.a.b" is not an ancestor of "$.a.bc": prefix comparison must
	// respect segment boundaries, not just byte prefixes.
	other, err := NewPattern("$.a.bc")
	require.NoError(t, err)
	assert.False(t, other.IsAncestorOrMatch("$.a.b"))
}

func TestPatternsString(t *testing.T) {
	ps, err := NewPatterns([]string{"$.a", "$.b[*]"})
	require.NoError(t, err)
	assert.Equal(t, "$.a, $.b[*]", ps.String())
}

func TestNewPatternsRejectsEmptyList(t *testing.T) {
	_, err := NewPatterns(nil)
	require.Error(t, err)
}
