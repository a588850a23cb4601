package minrange

import "errors"

// Bounds of the supported input domain.
const (
	// MinWeight is the smallest accepted pipe capacity.
	MinWeight = 1
	// MaxWeight is the largest accepted pipe capacity.
	MaxWeight = 10000
	// MinJunctions is the smallest supported junction count.
	MinJunctions = 2
	// NoTree is the range reported when no spanning tree exists.
	NoTree = -1
)

var (
	// ErrTooFewJunctions indicates an instance with fewer than MinJunctions junctions.
	ErrTooFewJunctions = errors.New("minrange: at least 2 junctions required")
	// ErrTooManyEdges indicates more pipes than a simple graph on n junctions can hold.
	ErrTooManyEdges = errors.New("minrange: edge count exceeds n(n-1)/2")
	// ErrJunctionOutOfRange indicates a pipe endpoint outside [1, n].
	ErrJunctionOutOfRange = errors.New("minrange: junction out of range")
	// ErrWeightOutOfRange indicates a pipe capacity outside [MinWeight, MaxWeight].
	ErrWeightOutOfRange = errors.New("minrange: weight out of range")
	// ErrSelfLoop indicates a pipe whose endpoints are the same junction.
	ErrSelfLoop = errors.New("minrange: pipe connects a junction to itself")
)

// Edge is a pipe between two junctions with a positive integer capacity.
// Edges are compared by Weight only.
type Edge struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

// Instance is one data set: the junction count and its full pipe list.
type Instance struct {
	Junctions int
	Edges     []Edge
}

// Result is the outcome of a minimum-range search.
type Result struct {
	// Range is Max − Min of the best tree, or NoTree.
	Range int

	// Min and Max are the lightest and heaviest weights in Tree (0 when Range == NoTree).
	Min int
	Max int

	// Tree holds the n−1 pipes of the best tree in acceptance order, nil when Range == NoTree.
	Tree []Edge

	// Passes is the number of Kruskal passes run.
	Passes int
}

// Spanning reports whether a spanning tree was found.
func (r Result) Spanning() bool {
	return r.Range != NoTree
}

// Pass is the outcome of one Kruskal pass over a window.
type Pass struct {
	// Tree holds the accepted pipes in acceptance order.
	Tree []Edge
	// Max is the heaviest accepted weight, starting from the window floor.
	Max int
	// Spanning is true when all junctions ended in one component.
	Spanning bool
}

// PassInfo describes a finished pass to an OnPass hook.
type PassInfo struct {
	Floor    int // index of the window's first pipe in the sorted list
	Min      int // window floor weight
	Max      int // heaviest accepted weight
	Accepted int // number of accepted pipes
	Spanning bool
}

// Options configures Search.
type Options struct {
	// Exhaustive disables early termination; every window is examined.
	Exhaustive bool

	// OnPass, if non-nil, is invoked after every Kruskal pass.
	OnPass func(PassInfo)
}

// Option configures Options.
type Option func(*Options)

// WithExhaustive returns an Option that examines every window.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// WithOnPass returns an Option that installs fn as a per-pass hook.
func WithOnPass(fn func(PassInfo)) Option {
	return func(o *Options) {
		o.OnPass = fn
	}
}

// DefaultOptions returns pruning search with no hook.
func DefaultOptions() Options {
	return Options{
		Exhaustive: false,
		OnPass:     nil,
	}
}
