// SPDX-License-Identifier: MIT
// Package: evenflow/gen
//
// gen.go — topology constructors.
//
// Emission order is stable: chains in ascending index, pair scans with
// i ascending then j ascending. Weights are drawn in emission order.

package gen

import (
	"fmt"

	"github.com/katalvlaran/evenflow/minrange"
)

// File-local method tags and domains.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodDisconnected = "Disconnected"

	minChain = 2
	minCycle = 3
)

// Path returns the chain 1-2-…-n.
func Path(n int, opts ...Option) (minrange.Instance, error) {
	if n < minChain {
		return minrange.Instance{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minChain, ErrTooFewJunctions)
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return minrange.Instance{}, fmt.Errorf("%s: %w", methodPath, err)
	}

	inst := minrange.Instance{Junctions: n, Edges: make([]minrange.Edge, 0, n-1)}
	inst.Edges = appendChain(inst.Edges, 1, n, cfg)

	return inst, nil
}

// Cycle returns the ring 1-2-…-n-1.
func Cycle(n int, opts ...Option) (minrange.Instance, error) {
	if n < minCycle {
		return minrange.Instance{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycle, ErrTooFewJunctions)
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return minrange.Instance{}, fmt.Errorf("%s: %w", methodCycle, err)
	}

	inst := minrange.Instance{Junctions: n, Edges: make([]minrange.Edge, 0, n)}
	inst.Edges = appendChain(inst.Edges, 1, n, cfg)
	inst.Edges = append(inst.Edges, minrange.Edge{From: n, To: 1, Weight: cfg.weight()})

	return inst, nil
}

// Complete returns every pair (i<j) once: n(n−1)/2 pipes.
func Complete(n int, opts ...Option) (minrange.Instance, error) {
	if n < minChain {
		return minrange.Instance{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minChain, ErrTooFewJunctions)
	}

	return sample(methodComplete, n, 1.0, opts)
}

// RandomSparse keeps each pair (i<j) independently with probability p.
// The result may be disconnected.
func RandomSparse(n int, p float64, opts ...Option) (minrange.Instance, error) {
	if n < minChain {
		return minrange.Instance{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minChain, ErrTooFewJunctions)
	}
	if p < 0 || p > 1 {
		return minrange.Instance{}, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}

	return sample(methodRandomSparse, n, p, opts)
}

// Disconnected returns two chains 1..⌊n/2⌋ and ⌊n/2⌋+1..n with no pipe
// between them, so no spanning tree exists.
func Disconnected(n int, opts ...Option) (minrange.Instance, error) {
	if n < minChain {
		return minrange.Instance{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodDisconnected, n, minChain, ErrTooFewJunctions)
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return minrange.Instance{}, fmt.Errorf("%s: %w", methodDisconnected, err)
	}

	half := n / 2
	inst := minrange.Instance{Junctions: n, Edges: make([]minrange.Edge, 0, n-2)}
	inst.Edges = appendChain(inst.Edges, 1, half, cfg)
	inst.Edges = appendChain(inst.Edges, half+1, n, cfg)

	return inst, nil
}

// appendChain adds lo-(lo+1)-…-hi to edges.
func appendChain(edges []minrange.Edge, lo, hi int, cfg config) []minrange.Edge {
	for v := lo; v < hi; v++ {
		edges = append(edges, minrange.Edge{From: v, To: v + 1, Weight: cfg.weight()})
	}

	return edges
}

// sample scans pairs (i<j) and keeps each with probability p.
// p == 1 consumes no RNG draws for the coin flip.
func sample(method string, n int, p float64, opts []Option) (minrange.Instance, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return minrange.Instance{}, fmt.Errorf("%s: %w", method, err)
	}

	inst := minrange.Instance{Junctions: n}
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if p < 1 && cfg.rng.Float64() >= p {
				continue
			}
			inst.Edges = append(inst.Edges, minrange.Edge{From: i, To: j, Weight: cfg.weight()})
		}
	}

	return inst, nil
}
