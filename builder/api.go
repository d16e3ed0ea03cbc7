// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order => identical
//     graphs.
//   - Safety: never panic; return sentinel errors from constructors.
package builder

import (
	"fmt"

	"github.com/arborist-go/impsep/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph[string], cfg *builderConfig) error

// BuildGraph creates a new core.Graph[string], resolves the builder
// configuration from bopts, and applies all constructors in order. Any
// constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted by design.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n >= 3).
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n >= 2).
//func Path(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1).
//func Complete(n int) Constructor

// CompleteBipartite builds simple K_{n1,n2} with left IDs "L0".. and right IDs "R0"..
// (cfg.idFn is not used).
//func CompleteBipartite(n1, n2 int) Constructor

// RandomSparse builds an Erdos-Renyi-like sparse graph. Requires cfg.rng != nil
// and 0 <= p <= 1. Deterministic for a fixed seed and option set.
//func RandomSparse(n int, p float64) Constructor

// RandomRegular builds a d-regular simple graph via stub-matching with
// bounded retries. Requires cfg.rng != nil.
//func RandomRegular(n, d int) Constructor
