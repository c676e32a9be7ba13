package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandAbsoluteName(t *testing.T) {
	e, err := NewExpander(nil, 0)
	require.NoError(t, err)

	fqdns := e.Expand("/chatter")
	assert.Equal(t, []string{"/chatter", "rt/chatter", "rq/chatter", "rr/chatter"}, fqdns)
}

func TestExpandRelativeName(t *testing.T) {
	e, err := NewExpander(nil, 0)
	require.NoError(t, err)

	// Relative names are not prefixed.
	assert.Equal(t, []string{"chatter"}, e.Expand("chatter"))
}

func TestExpandCustomPrefixes(t *testing.T) {
	e, err := NewExpander([]string{"ns1", "ns2"}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"/t", "ns1/t", "ns2/t"}, e.Expand("/t"))
	assert.Equal(t, []string{"ns1", "ns2"}, e.Prefixes())
}

func TestExpandIsMemoized(t *testing.T) {
	e, err := NewExpander(nil, 4)
	require.NoError(t, err)

	first := e.Expand("/chatter")
	second := e.Expand("/chatter")
	assert.Equal(t, first, second)

	// Evict by filling the cache, then expand again.
	e.Expand("/a")
	e.Expand("/b")
	e.Expand("/c")
	e.Expand("/d")
	assert.Equal(t, first, e.Expand("/chatter"))
}
