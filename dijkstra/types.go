package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilView indicates that a nil *family.AdjacencyView was passed.
	ErrNilView = errors.New("dijkstra: adjacency view is nil")

	// ErrEmptySource indicates that the provided source person ID is empty.
	ErrEmptySource = errors.New("dijkstra: source person ID is empty")

	// ErrVertexNotFound indicates that the source person is not in the view.
	ErrVertexNotFound = errors.New("dijkstra: source person not found in view")

	// ErrNegativeWeight indicates that a negative relationship weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would make every relationship impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting person ID (required).
// Target           – optional person ID; the search stops once it is settled.
// MaxDistance      – persons farther than this are not explored. Default math.MaxInt64.
// InfEdgeThreshold – relationships with weight ≥ threshold are impassable. Default math.MaxInt64.
type Options struct {
	Source           string
	Target           string
	MaxDistance      int64
	InfEdgeThreshold int64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting person. Must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget stops the search as soon as id has a final distance.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithMaxDistance sets a maximum distance threshold. Negative values cause
// ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats relationships with weight ≥ threshold as
// non-traversable. Non-positive values cause ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no target, no
// distance cap and no impassable relationships.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
