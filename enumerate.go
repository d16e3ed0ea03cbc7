package impsep

import (
	"context"

	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/flow"
	"github.com/arborist-go/impsep/reach"
	"github.com/arborist-go/impsep/vset"
)

// family is a deduplicated set of vertex sets, the return type of enum at
// every level of recursion. Membership is deduplicated by canonical key so
// that Branch A and Branch B's results merge correctly in step 7.
type family[V comparable] struct {
	byKey map[vset.Key]vset.Set[V]
}

func newFamily[V comparable]() family[V] {
	return family[V]{byKey: make(map[vset.Key]vset.Set[V])}
}

func (f family[V]) add(idx vset.Indexer[V], s vset.Set[V]) {
	f.byKey[vset.CanonicalKey(idx, s)] = s
}

func (f family[V]) merge(idx vset.Indexer[V], other family[V]) {
	for _, s := range other.byKey {
		f.add(idx, s)
	}
}

func (f family[V]) members() []vset.Set[V] {
	out := make([]vset.Set[V], 0, len(f.byKey))
	for _, s := range f.byKey {
		out = append(out, s)
	}

	return out
}

// enumerator owns the memo table and the debug-assertion switch for one
// top-level ImportantSeparators call; it never escapes that call.
type enumerator[V comparable] struct {
	g     *core.Graph[V]
	ctx   context.Context
	debug bool
	memo  map[vset.Key]family[V]
}

// enum implements the recursive enumerator's seven steps exactly.
func (e *enumerator[V]) enum(inst instance[V]) (family[V], error) {
	if err := e.ctx.Err(); err != nil {
		return family[V]{}, err
	}

	// Step 1: negative budget admits no separator.
	if inst.k < 0 {
		return newFamily[V](), nil
	}

	key := inst.key(e.g)
	if cached, ok := e.memo[key]; ok {
		return cached, nil
	}

	// Step 2: already separated -> the empty separator is the unique
	// important one.
	if !reach.Exists(e.g, inst.x, inst.y, inst.d) {
		result := newFamily[V]()
		result.add(e.g, vset.Empty[V]())
		e.memo[key] = result

		return result, nil
	}

	// Step 3: furthest min-cut; prune if it exceeds the budget.
	if inst.k == 0 {
		// No budget left and X,Y are not yet separated: no separator of
		// size <= k exists on this branch.
		e.memo[key] = newFamily[V]()

		return e.memo[key], nil
	}
	ok, rMax, err := flow.FurthestMinCut[V](e.g, inst.x, inst.y, inst.d, inst.k)
	if err != nil {
		return family[V]{}, err
	}
	if !ok {
		e.memo[key] = newFamily[V]()

		return e.memo[key], nil
	}

	// Step 4: pick a boundary vertex; none means no further branching.
	v, found := pickBoundary(e.g, rMax, inst.x, inst.y, inst.d)
	if !found {
		if e.debug {
			panic("impsep: boundary selector found no vertex on an instance where path_exists is true and lambda <= k")
		}
		result := newFamily[V]()
		result.add(e.g, vset.Empty[V]())
		e.memo[key] = result

		return result, nil
	}

	// Step 5: Branch A, "delete v".
	branchA, err := e.enum(instance[V]{x: inst.x, y: inst.y, k: inst.k - 1, d: inst.d.With(v)})
	if err != nil {
		return family[V]{}, err
	}
	result := newFamily[V]()
	for _, s := range branchA.members() {
		result.add(e.g, s.With(v))
	}

	// Step 6: Branch B, "protect v".
	branchB, err := e.enum(instance[V]{x: inst.x.With(v), y: inst.y, k: inst.k, d: inst.d})
	if err != nil {
		return family[V]{}, err
	}

	// Step 7: union, deduplicated.
	result.merge(e.g, branchB)

	e.memo[key] = result

	return result, nil
}
