package bfs

import (
	"errors"
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyID is returned when the source or target ID is empty.
	ErrEmptyID = errors.New("bfs: person ID is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of one search.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this many edges.
	MaxDepth int

	// Kinds restricts the walked relationship kinds; empty means all.
	Kinds []family.Kind

	err error
}

// DefaultOptions returns no depth limit and every kind.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxDepth limits the search depth.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithKinds walks only relationships of the given kinds, e.g. blood lines only:
//
//	bfs.WithKinds(family.ParentChild, family.Sibling)
func WithKinds(kinds ...family.Kind) Option {
	return func(o *Options) {
		o.Kinds = append([]family.Kind(nil), kinds...)
	}
}

// Result holds the outcome of a traversal:
//   - Order:  persons in visit sequence.
//   - Depth:  person → number of edges from the start.
//   - Parent: person → the arc that first discovered it (walked from its parent).
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]family.Arc
}

// PathTo rebuilds the discovered path from Start to dest. It returns the zero
// Path when dest was not reached or dest == Start.
func (r *Result) PathTo(dest string) family.Path {
	if _, ok := r.Depth[dest]; !ok || dest == r.Start {
		return family.Path{}
	}
	// collect arcs backward
	arcs := make([]family.Arc, 0, r.Depth[dest])
	for cur := dest; cur != r.Start; {
		a := r.Parent[cur]
		arcs = append(arcs, a)
		cur, _ = a.Rel.Opposite(a.Neighbor)
	}
	for i, j := 0, len(arcs)-1; i < j; i, j = i+1, j-1 {
		arcs[i], arcs[j] = arcs[j], arcs[i]
	}

	return family.PathFromArcs(r.Start, arcs)
}
