package impsep

import (
	"strconv"

	"github.com/arborist-go/impsep/vset"
)

// instance bundles one recursive call's parameters: X and Y are the
// (possibly grown) source- and sink-side terminal sets, k is the remaining
// separator-size budget, and D is the set of vertices deleted so far.
type instance[V comparable] struct {
	x, y, d vset.Set[V]
	k       int
}

// key builds the canonical memoization key for inst. Per the enumerator's
// memoization contract, Y is constant across a single run but is still
// folded into the key so a single memo table remains correct even if reused
// across differing Y.
func (inst instance[V]) key(idx vset.Indexer[V]) vset.Key {
	var b []byte
	b = append(b, "X:"...)
	b = append(b, string(vset.CanonicalKey(idx, inst.x))...)
	b = append(b, "|Y:"...)
	b = append(b, string(vset.CanonicalKey(idx, inst.y))...)
	b = append(b, "|D:"...)
	b = append(b, string(vset.CanonicalKey(idx, inst.d))...)
	b = append(b, "|k:"...)
	b = append(b, strconv.Itoa(inst.k)...)

	return vset.Key(b)
}
