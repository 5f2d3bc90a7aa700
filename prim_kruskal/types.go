package prim_kruskal

import (
	"errors"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// ErrGraphNil indicates that a nil *family.Graph was passed.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that the Prim root is not a person of the family.
var ErrRootNotFound = errors.New("prim_kruskal: root person not found")

// ErrUnknownMethod indicates an MSTOptions.Method outside MethodPrim/MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
//
//	Method string: MethodPrim or MethodKruskal.
//	Root   string: start person for Prim; "" means the first person. Ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting person for Prim; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim from the first person.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Compute runs the MST algorithm named by opts.Method.
func Compute(g *family.Graph, opts ...Option) ([]family.Relationship, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, WithRoot(o.Root))
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// Subfamily is one group of a Partition.
type Subfamily struct {
	// Index is the 0-based subfamily id.
	Index int

	// Members lists person IDs in snapshot order.
	Members []string

	// Relationships lists every relationship with both endpoints in Members,
	// in snapshot order.
	Relationships []family.Relationship
}

// Partition is the result of PartitionIntoSubfamilies.
type Partition struct {
	// Assignment maps each person ID to its subfamily index.
	Assignment map[string]int

	// Subfamilies is indexed by subfamily id.
	Subfamilies []Subfamily

	// Tree is the spanning forest the split was cut from.
	Tree []family.Relationship

	// Removed lists the cut tree edges, heaviest first.
	Removed []family.Relationship
}

// Len returns the number of subfamilies.
func (p Partition) Len() int { return len(p.Subfamilies) }
