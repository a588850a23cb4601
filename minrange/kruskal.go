package minrange

import (
	"sort"

	"github.com/katalvlaran/evenflow/dsu"
)

// SortEdges returns a copy of edges sorted ascending by Weight.
// The sort is stable: pipes of equal weight keep their input order.
// Complexity: O(E log E) time, O(E) memory.
func SortEdges(edges []Edge) []Edge {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	return sorted
}

// Span runs one Kruskal pass over window, which must be sorted ascending by
// weight. set is reset to n singletons first, then every pipe whose endpoints
// lie in different components is accepted and its endpoints are united.
//
// Steps:
//  1. Reset set to n singleton components; an empty window spans nothing.
//  2. Seed Max with the window floor weight and reserve n−1 tree slots.
//  3. Scan the window: skip pipes whose endpoints share a root, otherwise
//     union them, keep the pipe and raise Max.
//  4. Stop once n−1 pipes are accepted since no later pipe can join two
//     different components.
//  5. Report the tree, Max and whether the set became one component.
//
// Complexity: O(len(window) · α(n)) time after the O(n) reset.
func Span(set *dsu.Set, n int, window []Edge) Pass {
	// 1. Fresh singletons for this pass.
	set.Reset(n)
	if len(window) == 0 {
		// No pipes: spanning only if the set is trivially whole.
		return Pass{Spanning: set.Spanning()}
	}

	// 2. The floor pipe is always the lightest candidate.
	var (
		tree     = make([]Edge, 0, max(n-1, 0)) // accepted pipes
		heaviest = window[0].Weight             // running Max
	)

	// 3. Greedy scan in ascending weight order.
	for _, e := range window {
		if set.Find(e.From) == set.Find(e.To) {
			// Would close a cycle.
			continue
		}
		set.Union(e.From, e.To)
		tree = append(tree, e)
		if e.Weight > heaviest {
			heaviest = e.Weight
		}
		// 4. A tree on n junctions has exactly n−1 pipes.
		if len(tree) == n-1 {
			break
		}
	}

	// 5. Spanning iff every junction ended up in one component.
	return Pass{
		Tree:     tree,
		Max:      heaviest,
		Spanning: set.Spanning(),
	}
}
