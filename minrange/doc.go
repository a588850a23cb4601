// Package minrange computes the minimum-range spanning tree of an undirected
// pipe network: among all spanning trees, the one whose heaviest and lightest
// edges are closest in weight.
//
// What & Why
//
//   - Junctions 1..n are joined by pipes of integer capacity 1..10000.
//     Upgrading a spanning set of pipes so that flow stays even means picking
//     a spanning tree with the smallest (max − min) capacity.
//
//   - The answer is an integer range, or NoTree (−1) when the junctions
//     cannot all be connected.
//
// Algorithm
//
//  1. Sort all pipes ascending by weight once (stable, so equal weights keep
//     input order).
//  2. For each window floor i (the suffix sorted[i:]), reset a dsu.Set and
//     run one Kruskal pass over the window (Span): accept a pipe iff its
//     endpoints lie in different components.
//  3. If the pass spans all junctions, its range is Max − sorted[i].Weight;
//     keep the smallest.
//
// A minimum-range tree uses some pipe e as its lightest edge. With e's weight
// fixed as the floor, Kruskal over the pipes at or above the floor minimizes
// the heaviest accepted weight (bottleneck property of MSTs), so scanning
// every floor is exhaustive.
//
// Pruning
//
//	By default Search stops early when the outcome can no longer improve:
//	  - a pass fails to span: every later window is a subset of this one;
//	  - fewer than n−1 pipes remain in the window;
//	  - the best range is already 0.
//	WithExhaustive disables all three; the result is identical.
//
// Complexity
//
//   - Time: O(E log E) sort + O(E · (E + n)) for up to E passes.
//   - Space: O(E + n).
//
// Error Conditions
//
//	MinRange validates the instance first and returns a wrapped sentinel:
//	  - ErrTooFewJunctions    n < 2
//	  - ErrTooManyEdges       m > n(n−1)/2
//	  - ErrJunctionOutOfRange an endpoint outside [1, n]
//	  - ErrSelfLoop           a pipe joining a junction to itself
//	  - ErrWeightOutOfRange   a weight outside [1, 10000]
//	A disconnected network is not an error: Result.Range == NoTree.
package minrange
