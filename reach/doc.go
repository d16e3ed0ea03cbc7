// Package reach answers a single question: with D already deleted, is
// there still a path in g from some vertex in X to some vertex in Y?
//
// Exists is a breadth-first frontier search trimmed to a boolean contract --
// no hooks, no depth limit, no parent tracking -- because the enumerator
// only ever needs the yes/no answer, not the path itself.
package reach
