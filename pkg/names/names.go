// Package names expands a logical topic name into the fully-qualified
// spellings it may be registered under. A topic can be reachable both by its
// literal name and by each namespace-prefixed variant, so lookups have to
// consider every candidate.
package names

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPrefixes are the namespace prefixes recognized by default: topics,
// service requests and service replies.
var DefaultPrefixes = []string{"rt", "rq", "rr"}

const defaultCacheSize = 256

// Expander computes candidate FQDN lists for topic names. Expansions are
// memoized in a bounded LRU since the query path resolves the same handful
// of topics over and over.
type Expander struct {
	prefixes []string
	cache    *lru.Cache[string, []string]
}

// NewExpander builds an Expander over the given prefixes, in order. A nil
// prefix list selects DefaultPrefixes; cacheSize <= 0 selects a default.
func NewExpander(prefixes []string, cacheSize int) (*Expander, error) {
	if prefixes == nil {
		prefixes = DefaultPrefixes
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Expander{prefixes: prefixes, cache: cache}, nil
}

// Expand returns the ordered candidate list for topic: the literal name
// first, then one prefixed variant per configured prefix when the name is
// absolute (starts with '/'). Relative names expand to themselves only.
// The returned slice is shared across calls and must not be mutated.
func (e *Expander) Expand(topic string) []string {
	if fqdns, ok := e.cache.Get(topic); ok {
		return fqdns
	}

	fqdns := make([]string, 0, len(e.prefixes)+1)
	fqdns = append(fqdns, topic)
	if strings.HasPrefix(topic, "/") {
		for _, prefix := range e.prefixes {
			fqdns = append(fqdns, prefix+topic)
		}
	}

	e.cache.Add(topic, fqdns)
	return fqdns
}

// Prefixes returns the configured prefix list.
func (e *Expander) Prefixes() []string {
	return e.prefixes
}
