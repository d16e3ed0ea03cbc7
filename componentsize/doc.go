// Package componentsize answers one question, independently of the
// enumerator: given a graph, a vertex s, and a separator S, how large is
// s's connected component in G - S? It is a deliberately separate,
// independently-implemented BFS so that a demo CLI can rank candidate
// separators by the component size they leave behind without the
// enumerator's internals being able to influence the measurement.
package componentsize
