// Package dsu provides a compact Disjoint-Set (Union-Find) over junctions
// identified by the integers 1..n.
//
// What & Why
//
//   - A Set tracks a partition of junctions into components and answers
//     "are x and y connected?" while components are merged one pipe at a time.
//     Kruskal-style spanning tree builders call Find on both endpoints of an
//     edge and Union when they differ.
//
// Representation
//
//	Each junction owns one signed code:
//	  - code ≤ 0 → the junction is a root and -code is its component size;
//	  - code > 0 → the junction's parent is junction #code.
//	A fresh Set stores -1 for every junction (n singleton components).
//
// Union by size
//
//	The root representing more junctions survives. On equal sizes the root
//	of the first argument is attached under the root of the second, so the
//	resulting shape is fully deterministic for a given call sequence.
//
// Find
//
//	Iterative walk to the root followed by a second walk that points every
//	visited junction straight at the root (path compression). The returned
//	root is the same as without compression.
//
// Complexity
//
//   - New/Reset: O(n) time, O(n) memory (one int per junction).
//   - Find/Union: amortized O(α(n)).
//
// Junction ids outside [1, n] are programming errors and panic with an
// index-out-of-range error; Set performs no validation of its own.
package dsu
