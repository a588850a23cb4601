package dsu

// Set is a Disjoint-Set over junctions 1..n.
// The zero value holds no junctions; call Reset before use.
// A Set is not safe for concurrent use.
type Set struct {
	// codes[i] is the parent-or-size code of junction i+1.
	codes []int

	// components is the number of disjoint components currently tracked.
	components int
}

// New returns a Set of n singleton components.
// Complexity: O(n).
func New(n int) *Set {
	s := &Set{}
	s.Reset(n)

	return s
}

// Reset reinitializes s for n junctions, each its own root of size 1.
// The backing slice is reused when its capacity allows, so repeated passes
// over the same instance do not allocate.
// Complexity: O(n).
func (s *Set) Reset(n int) {
	if n < 0 {
		n = 0
	}
	if cap(s.codes) >= n {
		s.codes = s.codes[:n]
	} else {
		s.codes = make([]int, n)
	}
	for i := range s.codes {
		s.codes[i] = -1 // singleton root: size 1 encoded as -1
	}
	s.components = n
}

// Len returns the number of junctions tracked by s.
func (s *Set) Len() int {
	return len(s.codes)
}

// Components returns the number of disjoint components.
func (s *Set) Components() int {
	return s.components
}

// Find returns the root junction of x's component.
// Path compression is applied on the way back; the root returned is the
// same one an uncompressed walk would reach.
func (s *Set) Find(x int) int {
	// 1. Walk parent pointers until a non-positive code (a root).
	root := x
	for s.codes[root-1] > 0 {
		root = s.codes[root-1]
	}

	// 2. Point every junction on the path directly at root.
	for x != root {
		next := s.codes[x-1]
		s.codes[x-1] = root
		x = next
	}

	return root
}

// Union merges the components of x and y by size.
// The larger component's root survives; on equal sizes x's root is attached
// under y's root. If x and y already share a root, Union does nothing.
func (s *Set) Union(x, y int) {
	// 1. Resolve both roots.
	a := s.Find(x)
	b := s.Find(y)
	if a == b {
		// Same component; nothing to merge.
		return
	}

	// 2. More negative code ⇒ larger component; it absorbs the other.
	if s.codes[a-1] < s.codes[b-1] {
		s.codes[a-1] += s.codes[b-1] // a's size grows by b's
		s.codes[b-1] = a             // b now points at a
	} else {
		// Ties land here too: x's root goes under y's root.
		s.codes[b-1] += s.codes[a-1]
		s.codes[a-1] = b
	}

	// 3. One fewer component.
	s.components--
}

// Connected reports whether x and y belong to the same component.
func (s *Set) Connected(x, y int) bool {
	return s.Find(x) == s.Find(y)
}

// Size returns the number of junctions in x's component.
func (s *Set) Size(x int) int {
	return -s.codes[s.Find(x)-1]
}

// Spanning reports whether every junction is in a single component.
// An empty Set is not spanning.
func (s *Set) Spanning() bool {
	return len(s.codes) > 0 && s.components == 1
}
