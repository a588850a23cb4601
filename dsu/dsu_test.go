package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/evenflow/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Singletons verifies that a fresh Set holds n roots of size 1.
func TestNew_Singletons(t *testing.T) {
	s := dsu.New(5)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 5, s.Components())
	for x := 1; x <= 5; x++ {
		assert.Equal(t, x, s.Find(x)) // every junction is its own root
		assert.Equal(t, 1, s.Size(x))
	}
	assert.False(t, s.Spanning())
}

// TestUnion_TieAttachesFirstUnderSecond pins the deterministic tie rule.
func TestUnion_TieAttachesFirstUnderSecond(t *testing.T) {
	s := dsu.New(4)
	s.Union(1, 2)
	assert.Equal(t, 2, s.Find(1))
	assert.Equal(t, 2, s.Find(2))
	assert.Equal(t, 2, s.Size(1))

	s.Union(4, 3)
	assert.Equal(t, 3, s.Find(4))

	// Two components of size 2: root of 1 (=2) goes under root of 3 (=3).
	s.Union(1, 4)
	assert.Equal(t, 3, s.Find(1))
	assert.Equal(t, 4, s.Size(2))
	assert.True(t, s.Spanning())
}

// TestUnion_LargerSurvives verifies that the larger component's root is kept
// regardless of argument order.
func TestUnion_LargerSurvives(t *testing.T) {
	s := dsu.New(3)
	s.Union(1, 2) // root 2, size 2

	s.Union(3, 1)
	assert.Equal(t, 2, s.Find(3))

	s2 := dsu.New(3)
	s2.Union(1, 2)
	s2.Union(2, 3)
	assert.Equal(t, 2, s2.Find(3))
	assert.Equal(t, 3, s2.Size(3))
}

// TestUnion_SameComponentIsNoop checks that repeated unions leave counts intact.
func TestUnion_SameComponentIsNoop(t *testing.T) {
	s := dsu.New(3)
	s.Union(1, 2)
	s.Union(2, 1)
	assert.Equal(t, 2, s.Components())
	assert.Equal(t, 2, s.Size(1))
}

// TestReset_ReusesAndClears verifies that Reset restores singletons,
// including when shrinking and growing.
func TestReset_ReusesAndClears(t *testing.T) {
	s := dsu.New(4)
	s.Union(1, 2)
	s.Union(3, 4)

	s.Reset(4)
	assert.Equal(t, 4, s.Components())
	assert.False(t, s.Connected(1, 2))

	s.Reset(2)
	assert.Equal(t, 2, s.Len())
	s.Reset(6)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 6, s.Find(6))
}

// TestZeroValue_Empty verifies an empty Set reports no spanning component.
func TestZeroValue_Empty(t *testing.T) {
	var s dsu.Set
	assert.Zero(t, s.Len())
	assert.False(t, s.Spanning())
	s.Reset(-3)
	assert.Zero(t, s.Len())
}

// TestFind_OutOfRangePanics documents that invalid ids are programming errors.
func TestFind_OutOfRangePanics(t *testing.T) {
	s := dsu.New(2)
	assert.Panics(t, func() { s.Find(0) })
	assert.Panics(t, func() { s.Find(3) })
}

// TestRandomUnions_Invariants cross-checks Set against a naive labeling and
// verifies that component sizes always sum to n.
func TestRandomUnions_Invariants(t *testing.T) {
	const n = 60
	r := rand.New(rand.NewSource(7))
	s := dsu.New(n)

	// label[i] is a naive component label for junction i.
	label := make([]int, n+1)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for step := 0; step < 200; step++ {
		x, y := r.Intn(n)+1, r.Intn(n)+1
		require.Equal(t, label[x] == label[y], s.Connected(x, y), "step %d", step)
		if label[x] != label[y] {
			s.Union(x, y)
			relabel(label[x], label[y])
		}

		// Sizes of distinct roots must sum to n.
		seen := make(map[int]bool)
		total := 0
		for v := 1; v <= n; v++ {
			root := s.Find(v)
			if !seen[root] {
				seen[root] = true
				total += s.Size(root)
			}
		}
		require.Equal(t, n, total)
		require.Equal(t, len(seen), s.Components())
	}
}
