package minrange

import (
	"fmt"
	"math"
)

// Validate checks inst against the supported input domain:
//   - Junctions ≥ MinJunctions;
//   - len(Edges) ≤ n(n−1)/2;
//   - every endpoint in [1, n] and distinct;
//   - every weight in [MinWeight, MaxWeight].
//
// Per-pipe errors wrap the sentinel with the 0-based pipe index.
// Complexity: O(E).
func Validate(inst Instance) error {
	n := inst.Junctions
	if n < MinJunctions {
		return fmt.Errorf("%w: got %d", ErrTooFewJunctions, n)
	}
	if limit := MaxEdges(n); len(inst.Edges) > limit {
		return fmt.Errorf("%w: %d > %d", ErrTooManyEdges, len(inst.Edges), limit)
	}

	for i, e := range inst.Edges {
		if e.From < 1 || e.From > n || e.To < 1 || e.To > n {
			return fmt.Errorf("pipe %d (%d-%d): %w [1,%d]", i, e.From, e.To, ErrJunctionOutOfRange, n)
		}
		if e.From == e.To {
			return fmt.Errorf("pipe %d (%d-%d): %w", i, e.From, e.To, ErrSelfLoop)
		}
		if e.Weight < MinWeight || e.Weight > MaxWeight {
			return fmt.Errorf("pipe %d (%d-%d): %w: %d", i, e.From, e.To, ErrWeightOutOfRange, e.Weight)
		}
	}

	return nil
}

// MaxEdges returns n(n−1)/2, the pipe count of a complete graph on n
// junctions. The product saturates at math.MaxInt instead of overflowing,
// which only happens for n far beyond any count that fits in memory.
// Returns 0 for n < 2.
func MaxEdges(n int) int {
	if n < MinJunctions {
		return 0
	}
	// n(n−1) would overflow int.
	if n-1 > math.MaxInt/n {
		return math.MaxInt
	}

	return n * (n - 1) / 2
}
