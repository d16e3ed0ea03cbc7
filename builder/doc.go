// Package builder provides reusable, functional-options-style topology
// constructors over core.Graph[string], used to assemble fixtures for the
// enumerator's property tests (random small graphs, regular graphs,
// complete graphs) without hand-wiring vertices and edges at every call
// site.
//
// Key components:
//
//   - Configuration: BuilderOption mutates an unexported builderConfig
//     (RNG source, vertex-ID scheme) before construction begins.
//   - Vertex-ID schemes (IDFn implementations): DefaultIDFn, SymbolIDFn,
//     ExcelColumnIDFn, AlphanumericIDFn, HexIDFn, SymbolNumberIDFn.
//   - Topology constructors: Path, Cycle, Complete, CompleteBipartite,
//     RandomSparse, RandomRegular — each a Constructor applied by BuildGraph.
//   - Validation helpers (validateMin, validatePartition,
//     validateProbability) returning errors that wrap the sentinels; option
//     constructors ignore nil input (nil idFn, nil rng) rather than
//     panicking.
//
// Guarantees: idempotent vertex insertion (re-adding an existing vertex is
// a no-op), deterministic output for a fixed option set and seed, and
// sentinel errors (via errors.Is) rather than string-matched failures.
package builder
