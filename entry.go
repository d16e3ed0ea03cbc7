package impsep

import (
	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/vset"
)

// ImportantSeparators enumerates the complete family of important (s,t)
// vertex separators of g with size at most k.
//
//   - s == t returns {∅}.
//   - s or t absent from g fails with ErrInvalidInput.
//   - k < 0 returns the empty family (no separator fits).
//   - otherwise returns enum({s}, {t}, k, ∅).
//
// The returned slice's order is unspecified but its contents are
// deterministic for a fixed g, s, t, k.
func ImportantSeparators[V comparable](g *core.Graph[V], s, t V, k int, opts ...Option) ([]vset.Set[V], error) {
	if s == t {
		return []vset.Set[V]{vset.Empty[V]()}, nil
	}
	if !g.HasVertex(s) || !g.HasVertex(t) {
		return nil, ErrInvalidInput
	}
	if k < 0 {
		return nil, nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &enumerator[V]{
		g:     g,
		ctx:   cfg.ctx,
		debug: cfg.debug,
		memo:  make(map[vset.Key]family[V]),
	}

	result, err := e.enum(instance[V]{x: vset.Of(s), y: vset.Of(t), k: k, d: vset.Empty[V]()})
	if err != nil {
		return nil, err
	}

	return result.members(), nil
}
