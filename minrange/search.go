package minrange

import (
	"github.com/katalvlaran/evenflow/dsu"
)

// Search finds the minimum-range spanning tree over sorted, which must be
// ordered ascending by weight (see SortEdges). It performs no validation.
//
// Steps:
//  1. Resolve options; reuse one dsu.Set for all passes.
//  2. Slide the floor i up while the window sorted[i:] is non-empty.
//  3. Unless Options.Exhaustive, stop once fewer than n−1 pipes remain.
//  4. Run Span over the window and report it to Options.OnPass.
//  5. A pass that fails to span is skipped; unless Options.Exhaustive the
//     search stops there.
//  6. Record Max − sorted[i].Weight when it beats best (or best is NoTree).
//  7. Unless Options.Exhaustive, stop once best reaches 0.
//
// Ties between equal ranges keep the earliest (lowest floor) tree.
// Complexity: O(E · (E + n)) time, O(E + n) memory.
func Search(n int, sorted []Edge, opts ...Option) Result {
	// 1. Resolve options; one Set serves every pass.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		res = Result{Range: NoTree}
		set = dsu.New(n)
	)

	// 2. Slide the floor up through the sorted pipes.
	for floor := 0; floor < len(sorted); floor++ {
		window := sorted[floor:]
		// 3. Fewer than n−1 pipes cannot form a tree.
		if !o.Exhaustive && len(window) < n-1 {
			break
		}

		// 4. One Kruskal pass over the window.
		pass := Span(set, n, window)
		res.Passes++
		lo := window[0].Weight // floor weight is the tree minimum

		if o.OnPass != nil {
			o.OnPass(PassInfo{
				Floor:    floor,
				Min:      lo,
				Max:      pass.Max,
				Accepted: len(pass.Tree),
				Spanning: pass.Spanning,
			})
		}

		// 5. Every later window is a subset of this one, so none spans either.
		if !pass.Spanning {
			if o.Exhaustive {
				continue
			}
			break
		}

		// 6. Strictly smaller ranges only: ties keep the lower floor.
		if r := pass.Max - lo; res.Range == NoTree || r < res.Range {
			res.Range = r
			res.Min = lo
			res.Max = pass.Max
			res.Tree = pass.Tree
		}
		// 7. Nothing beats a zero range.
		if !o.Exhaustive && res.Range == 0 {
			break
		}
	}

	return res
}

// MinRange validates inst, sorts its pipes and runs Search.
// A disconnected instance yields Result.Range == NoTree and a nil error.
func MinRange(inst Instance, opts ...Option) (Result, error) {
	if err := Validate(inst); err != nil {
		return Result{Range: NoTree}, err
	}

	return Search(inst.Junctions, SortEdges(inst.Edges), opts...), nil
}

// Range is a shorthand returning only the minimal range, or NoTree.
// Invalid instances also yield NoTree; use MinRange to observe the error.
func Range(inst Instance) int {
	res, err := MinRange(inst)
	if err != nil {
		return NoTree
	}

	return res.Range
}
