package family

// Arc is one walkable step out of a person in an AdjacencyView.
type Arc struct {
	// Neighbor is the person reached by walking Rel in Direction.
	Neighbor string

	// Rel is the stored relationship backing this arc.
	Rel Relationship

	// Direction is Forward when walking Rel.From→Rel.To, Reverse otherwise.
	Direction Direction
}

// ViewOption configures BuildAdjacency.
type ViewOption func(*viewOptions)

type viewOptions struct {
	connectivity bool
	kinds        map[Kind]bool // nil means every kind
}

// WithConnectivity registers every relationship in both directions,
// ignoring Kind.Policy. Use it for pure reachability questions.
func WithConnectivity() ViewOption {
	return func(o *viewOptions) { o.connectivity = true }
}

// WithKinds keeps only relationships of the given kinds.
// Calling it with no kinds keeps every kind.
func WithKinds(kinds ...Kind) ViewOption {
	return func(o *viewOptions) {
		if len(kinds) == 0 {
			o.kinds = nil
			return
		}
		o.kinds = make(map[Kind]bool, len(kinds))
		for _, k := range kinds {
			o.kinds[k] = true
		}
	}
}

// AdjacencyView maps each person to the arcs leaving it.
//
// A view is derived from one Graph for one query and is never mutated after
// BuildAdjacency returns. Build a new one instead of caching it.
type AdjacencyView struct {
	order []string         // person IDs in snapshot order
	arcs  map[string][]Arc // person ID → outgoing arcs in relationship order
}

// BuildAdjacency derives a view from g in one pass over its relationships.
//
// Each relationship contributes a Forward arc From→To. A Reverse arc To→From
// is added when the kind's policy is PolicyBidirectional, or for every kind
// under WithConnectivity. Relationships whose endpoints are unknown are
// skipped. A nil graph yields an empty view.
//
// Complexity: O(V + E).
func BuildAdjacency(g *Graph, opts ...ViewOption) *AdjacencyView {
	var o viewOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := &AdjacencyView{arcs: make(map[string][]Arc)}
	if g == nil {
		return v
	}

	v.order = g.PersonIDs()
	for _, id := range v.order {
		v.arcs[id] = nil
	}

	for _, r := range g.rels {
		if o.kinds != nil && !o.kinds[r.Kind] {
			continue
		}
		if !g.HasPerson(r.From) || !g.HasPerson(r.To) {
			continue
		}
		v.arcs[r.From] = append(v.arcs[r.From], Arc{Neighbor: r.To, Rel: r, Direction: Forward})
		if r.From == r.To {
			continue
		}
		if o.connectivity || r.Kind.Policy() == PolicyBidirectional {
			v.arcs[r.To] = append(v.arcs[r.To], Arc{Neighbor: r.From, Rel: r, Direction: Reverse})
		}
	}

	return v
}

// PersonIDs returns the persons of the view in snapshot order.
func (v *AdjacencyView) PersonIDs() []string { return v.order }

// Has reports whether id is a person of the view.
func (v *AdjacencyView) Has(id string) bool {
	_, ok := v.arcs[id]
	return ok
}

// Arcs returns the arcs leaving id, in relationship order.
func (v *AdjacencyView) Arcs(id string) []Arc { return v.arcs[id] }

// Len returns the number of persons in the view.
func (v *AdjacencyView) Len() int { return len(v.order) }

// ArcCount returns the total number of arcs.
func (v *AdjacencyView) ArcCount() int {
	n := 0
	for _, a := range v.arcs {
		n += len(a)
	}

	return n
}

// Equal reports whether two views hold the same persons and the same arcs in
// the same order. Relationship metadata is not compared.
func (v *AdjacencyView) Equal(other *AdjacencyView) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.order) != len(other.order) || len(v.arcs) != len(other.arcs) {
		return false
	}
	for i, id := range v.order {
		if other.order[i] != id {
			return false
		}
	}
	for id, arcs := range v.arcs {
		theirs, ok := other.arcs[id]
		if !ok || len(theirs) != len(arcs) {
			return false
		}
		for i, a := range arcs {
			b := theirs[i]
			if a.Neighbor != b.Neighbor || a.Direction != b.Direction || !sameRel(a.Rel, b.Rel) {
				return false
			}
		}
	}

	return true
}

func sameRel(a, b Relationship) bool {
	return a.ID == b.ID && a.From == b.From && a.To == b.To && a.Kind == b.Kind && a.Weight == b.Weight
}
