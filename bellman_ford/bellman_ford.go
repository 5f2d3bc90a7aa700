package bellman_ford

import (
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// Distances runs Bellman-Ford from source over every arc of view.
//
// It returns the distance and predecessor maps, the number of rounds run,
// and whether a negative cycle is reachable from source. Unknown sources
// yield every person at family.Infinity.
func Distances(view *family.AdjacencyView, source string) (map[string]int64, map[string]string, int, bool, error) {
	if view == nil {
		return nil, nil, 0, false, ErrNilView
	}
	if source == "" {
		return nil, nil, 0, false, ErrEmptySource
	}

	ids := view.PersonIDs()
	arcs := flatten(view)
	dist := make(map[string]int64, len(ids))
	prev := make(map[string]string, len(ids))
	for _, id := range ids {
		dist[id] = family.Infinity
	}
	if !view.Has(source) {
		return dist, prev, 0, false, nil
	}
	dist[source] = 0

	rounds := 0
	for i := 0; i < len(ids)-1; i++ {
		rounds++
		if !relaxAll(arcs, dist, prev) {
			break
		}
	}

	// detection pass
	for _, a := range arcs {
		du := dist[a.from]
		if du == family.Infinity || overflows(du, a.weight) {
			continue
		}
		if du+a.weight < dist[a.to] {
			return dist, prev, rounds, true, nil
		}
	}

	return dist, prev, rounds, false, nil
}

// ShortestPath returns the minimum-weight path from source to target, or a
// Result with NegativeCycle set.
func ShortestPath(view *family.AdjacencyView, source, target string, rels []family.Relationship) (Result, error) {
	if view == nil {
		return Result{}, ErrNilView
	}
	if source == "" || target == "" {
		return Result{}, ErrEmptySource
	}

	dist, prev, rounds, negative, err := Distances(view, source)
	if err != nil {
		return Result{}, err
	}
	if negative {
		return Result{NegativeCycle: true, Rounds: rounds}, nil
	}
	if source == target && view.Has(source) {
		return Result{Rounds: rounds}, nil
	}

	d, ok := dist[target]
	if !ok || d == family.Infinity {
		return Result{Path: family.Path{Weight: family.Infinity}, Rounds: rounds}, nil
	}
	p, ok := family.ReconstructPath(prev, source, target, rels, d)
	if !ok {
		return Result{Path: family.Path{Weight: family.Infinity}, Rounds: rounds}, nil
	}

	return Result{Path: p, Rounds: rounds}, nil
}

// relaxAll runs one round over every arc and reports whether anything changed.
func relaxAll(arcs []arc, dist map[string]int64, prev map[string]string) bool {
	changed := false
	for _, a := range arcs {
		du := dist[a.from]
		if du == family.Infinity {
			continue
		}
		if overflows(du, a.weight) {
			continue
		}
		if nd := du + a.weight; nd < dist[a.to] {
			dist[a.to] = nd
			prev[a.to] = a.from
			changed = true
		}
	}

	return changed
}

// overflows reports whether du+w would pass family.Infinity. A negative du
// leaves headroom for any weight.
func overflows(du, w int64) bool {
	return du > 0 && w > 0 && w > family.Infinity-du
}

// flatten lists the arcs of view in person order, then arc order.
func flatten(view *family.AdjacencyView) []arc {
	out := make([]arc, 0, view.ArcCount())
	for _, id := range view.PersonIDs() {
		for _, a := range view.Arcs(id) {
			out = append(out, arc{from: id, to: a.Neighbor, weight: a.Rel.Weight})
		}
	}

	return out
}
