package vset

import (
	"sort"
	"strconv"
	"strings"
)

// Indexer supplies a stable dense index for a vertex of type V.
// *core.Graph[V] satisfies this interface.
type Indexer[V comparable] interface {
	Index(v V) (int, bool)
}

// Key is a canonical, order-independent identity for a Set: two Sets with
// equal members produce equal Keys regardless of insertion order, making Key
// directly usable as a map key for memoization.
type Key string

// CanonicalKey builds s's Key from idx's dense indices: the sorted index
// sequence, rendered as a delimited string. Vertices absent from idx (not a
// member of the graph the Indexer was built from) are skipped; callers are
// expected to only ever canonicalize sets drawn from that graph.
// Complexity: O(n log n) where n = s.Len().
func CanonicalKey[V comparable](idx Indexer[V], s Set[V]) Key {
	ints := make([]int, 0, len(s.m))
	for v := range s.m {
		if i, ok := idx.Index(v); ok {
			ints = append(ints, i)
		}
	}
	sort.Ints(ints)

	var b strings.Builder
	for i, n := range ints {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}

	return Key(b.String())
}
