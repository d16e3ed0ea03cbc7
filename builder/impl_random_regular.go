// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Model: d-regular simple graph via stub-matching (pairing) with bounded
// retries. Stubs are shuffled per the supplied RNG; a pairing is validated
// against the no-self-loop, no-parallel-edge constraints of core.Graph
// before it is applied. An invalid pairing triggers a reshuffle, up to
// maxStubMatchingAttempts.
//
// Contract:
//   - n >= 1; 0 <= d < n; n*d must be even (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Returns ErrConstructFailed if no valid pairing is found within the
//     attempt budget.
package builder

import (
	"fmt"

	"github.com/arborist-go/impsep/core"
)

const (
	minRRVertices           = 1
	maxStubMatchingAttempts = 8
)

// RandomRegular returns a Constructor that builds an undirected d-regular
// graph using stub-matching with bounded retries.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph[string], cfg *builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		ids := addVerticesWithIDFn(g, n, cfg.idFn)

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			valid := true
			seen := make(map[[2]int]struct{}, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				u, v := ids[stubs[i]], ids[stubs[i+1]]
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodRandomRegular, u, v, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w", MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
