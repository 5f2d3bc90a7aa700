package bellman_ford

import (
	"errors"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// Sentinel errors for Bellman-Ford.
var (
	// ErrNilView indicates that a nil *family.AdjacencyView was passed.
	ErrNilView = errors.New("bellman_ford: adjacency view is nil")

	// ErrEmptySource indicates an empty source or target person ID.
	ErrEmptySource = errors.New("bellman_ford: person ID is empty")
)

// Result is the outcome of one Bellman-Ford query.
type Result struct {
	// Path is the minimum-weight path; empty when unreachable or when
	// NegativeCycle is set.
	Path family.Path

	// NegativeCycle reports a negative-weight cycle reachable from the source.
	NegativeCycle bool

	// Rounds is the number of relaxation rounds performed before detection.
	Rounds int
}

// arc is a flattened view arc used by the relaxation rounds.
type arc struct {
	from, to string
	weight   int64
}
