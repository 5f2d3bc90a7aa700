package dfs

import (
	"context"
	"errors"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// Visitation states of a person.
const (
	White = iota // not visited yet
	Gray         // on the current walk stack
	Black        // fully explored
)

var (
	// ErrViewNil is returned when a nil view is passed.
	ErrViewNil = errors.New("dfs: view is nil")

	// ErrGraphNil is returned when a nil family graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start person is not in the view.
	ErrStartNotFound = errors.New("dfs: start person not found")

	// ErrCycleDetected indicates a parent-child cycle.
	ErrCycleDetected = errors.New("dfs: lineage cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a person is discovered (pre-order)
	// with its depth. Returning an error aborts traversal.
	OnVisit func(id string, depth int) error

	// OnExit, if non-nil, is invoked once every descendant of a person has
	// been explored (post-order), before it is appended to Result.Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits traversal depth. 0 visits only the
	// start person. Default -1 (no limit).
	MaxDepth int

	// FilterArc, if non-nil, decides whether an arc may be walked.
	FilterArc func(a family.Arc) bool

	// FullTraversal restarts from every unvisited person in view order.
	FullTraversal bool

	// SkippedArcs counts arcs rejected by FilterArc.
	SkippedArcs int
}

// DefaultOptions returns Background context, no hooks, no depth limit, no
// filter and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterArc skips arcs for which fn returns false.
func WithFilterArc(fn func(a family.Arc) bool) Option {
	return func(o *Options) {
		o.FilterArc = fn
	}
}

// WithFullTraversal covers every component of the view.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records persons in the sequence they finished (post-order).
	Order []string

	// Depth maps each visited person to its distance from its root.
	Depth map[string]int

	// Parent maps each visited person to the person it was discovered from.
	// Roots are absent.
	Parent map[string]string

	// Visited flags the persons reached.
	Visited map[string]bool

	// SkippedArcs reports arcs rejected by FilterArc.
	SkippedArcs int
}
