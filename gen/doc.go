// SPDX-License-Identifier: MIT
// Package: evenflow/gen
//
// Package gen builds deterministic pipe-network instances for tests,
// benchmarks and the `evenflow generate` command.
//
// Contract:
//   - Every constructor returns a minrange.Instance that passes
//     minrange.Validate (junctions 1..n, no self-loops, no duplicate pairs,
//     weights inside the configured range).
//   - Determinism: the same constructor, parameters and seed always yield the
//     same pipes in the same order.
//   - Constructors never panic; invalid parameters return wrapped sentinels
//     (check with errors.Is).
//
// Constructors:
//   - Path(n)            1-2-…-n chain, n ≥ 2.
//   - Cycle(n)           chain closed by n-1, n ≥ 3.
//   - Complete(n)        every pair (i<j) once, n ≥ 2.
//   - RandomSparse(n, p) each pair (i<j) kept with probability p.
//   - Disconnected(n)    two chains with no pipe between them, n ≥ 2.
//
// Options:
//   - WithSeed(seed)            RNG seed (default DefaultSeed).
//   - WithWeightRange(lo, hi)   inclusive capacity range (default 1..100).
package gen
