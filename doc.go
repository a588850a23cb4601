// Package evenflow solves the "even flow" pipe upgrade problem: given
// junctions joined by pipes of integer capacity, choose pipes connecting
// every junction so that the spread between the largest and smallest chosen
// capacity is as small as possible.
//
// What's inside
//
//	dsu/          — Disjoint-Set (union by size, signed parent-or-size codes)
//	minrange/     — Kruskal pass + sliding-window minimum-range search
//	instance/     — data-set reader ("n m" + triples, "0 0" sentinel) and writers
//	batch/        — ordered multi-data-set solving, worker pool, metrics
//	gen/          — deterministic instance generators
//	cmd/evenflow/ — the CLI: solve, generate, version
//
// Quick example:
//
//	1 ──1── 2
//	│       │
//	4       2
//	│       │
//	4 ──3── 3
//
// Dropping the heaviest pipe leaves capacities {1,2,3}; the answer is 2.
package evenflow
