package flow

import "errors"

// Sentinel errors for split-network construction and flow computation.
var (
	// ErrInvalidCapacity indicates BuildSplitNetwork was asked to use a
	// non-positive k.
	ErrInvalidCapacity = errors.New("flow: k must be positive")

	// ErrTerminalOverlap indicates X and Y were not disjoint.
	ErrTerminalOverlap = errors.New("flow: X and Y must be disjoint")
)

// NodeKind distinguishes the role a split-network Node plays.
type NodeKind uint8

const (
	// KindIn is the in-half of a split original vertex.
	KindIn NodeKind = iota
	// KindOut is the out-half of a split original vertex.
	KindOut
	// KindSrc is the single super-source.
	KindSrc
	// KindSnk is the single super-sink.
	KindSnk
)

// Node is a node of the split network: either the In or Out half of an
// original vertex (identified by its dense index Idx), or the super-source
// or super-sink (Idx is unused and always 0 for those).
type Node struct {
	Kind NodeKind
	Idx  int
}

// Src is the canonical super-source node.
var Src = Node{Kind: KindSrc}

// Snk is the canonical super-sink node.
var Snk = Node{Kind: KindSnk}

// In returns the in-half node for the original vertex at dense index idx.
func In(idx int) Node { return Node{Kind: KindIn, Idx: idx} }

// Out returns the out-half node for the original vertex at dense index idx.
func Out(idx int) Node { return Node{Kind: KindOut, Idx: idx} }

// Network is an integer-capacitated directed graph over Node, built by
// BuildSplitNetwork from a vertex-split reduction. It is a throwaway value:
// callers build one, run a maxflow algorithm over it, and discard it.
type Network struct {
	cap map[Node]map[Node]int
	src Node
	snk Node
}

func newNetwork() *Network {
	return &Network{
		cap: make(map[Node]map[Node]int),
		src: Src,
		snk: Snk,
	}
}

// addArc adds capacity c to the arc u->v, creating a reverse 0-capacity arc
// v->u if neither direction exists yet. Calling addArc again on the same
// ordered pair accumulates: capacities add rather than overwrite, so
// repeated inserts for the same pair collapse into one arc of summed
// capacity instead of silently replacing each other.
func (n *Network) addArc(u, v Node, c int) {
	if n.cap[u] == nil {
		n.cap[u] = make(map[Node]int)
	}
	if n.cap[v] == nil {
		n.cap[v] = make(map[Node]int)
	}
	if _, ok := n.cap[u][v]; !ok {
		n.cap[u][v] = 0
	}
	if _, ok := n.cap[v][u]; !ok {
		n.cap[v][u] = 0
	}
	n.cap[u][v] += c
}

// clone returns a deep copy of n's capacity map, leaving n itself untouched.
// Maxflow algorithms mutate a clone so a Network can be reused or inspected
// by the caller after a run.
func (n *Network) clone() map[Node]map[Node]int {
	out := make(map[Node]map[Node]int, len(n.cap))
	for u, row := range n.cap {
		r := make(map[Node]int, len(row))
		for v, c := range row {
			r[v] = c
		}
		out[u] = r
	}

	return out
}

// neighbors returns the nodes adjacent to u in n.cap (both full and
// saturated arcs; a zero residual arc is still a valid edge to traverse in
// level-graph construction until its capacity is checked).
func neighbors(residual map[Node]map[Node]int, u Node) []Node {
	row := residual[u]
	out := make([]Node, 0, len(row))
	for v := range row {
		out = append(out, v)
	}

	return out
}
