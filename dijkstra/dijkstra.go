package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// Dijkstra computes shortest distances from Options.Source to every person of
// the view reachable along its arcs.
//
// Returns:
//
//   - dist: person ID → minimum distance (family.Infinity if unreachable).
//   - prev: person ID → predecessor on the chosen path ("" for the source and
//     for unreachable persons).
//   - err:  validation failure or ErrNegativeWeight.
//
// Validation order: options, empty source, nil view, unknown source,
// negative weights.
func Dijkstra(view *family.AdjacencyView, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if view == nil {
		return nil, nil, ErrNilView
	}
	if !view.Has(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if err := checkWeights(view); err != nil {
		return nil, nil, err
	}

	r := newRunner(view, cfg)
	r.process()

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight path from source to target and
// resolves each step against rels.
//
// source == target yields the zero Path with Weight 0. An unknown or
// unreachable target yields the zero Path with Weight family.Infinity.
func ShortestPath(view *family.AdjacencyView, source, target string, rels []family.Relationship) (family.Path, error) {
	if view == nil {
		return family.Path{}, ErrNilView
	}
	if source == "" || target == "" {
		return family.Path{}, ErrEmptySource
	}
	if err := checkWeights(view); err != nil {
		return family.Path{}, err
	}
	if !view.Has(source) || !view.Has(target) {
		return family.Path{Weight: family.Infinity}, nil
	}
	if source == target {
		return family.Path{}, nil
	}

	cfg := DefaultOptions(source)
	cfg.Target = target
	r := newRunner(view, cfg)
	r.process()

	d := r.dist[target]
	if d == family.Infinity {
		return family.Path{Weight: family.Infinity}, nil
	}
	p, ok := family.ReconstructPath(r.prev, source, target, rels, d)
	if !ok {
		return family.Path{Weight: family.Infinity}, nil
	}

	return p, nil
}

// checkWeights fails fast on the first negative arc.
func checkWeights(view *family.AdjacencyView) error {
	for _, id := range view.PersonIDs() {
		for _, a := range view.Arcs(id) {
			if a.Rel.Weight < 0 {
				return fmt.Errorf("%w: relationship %q %s→%s weight=%d",
					ErrNegativeWeight, a.Rel.ID, a.Rel.From, a.Rel.To, a.Rel.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	view    *family.AdjacencyView
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     uint64 // push counter, breaks distance ties in FIFO order
}

func newRunner(view *family.AdjacencyView, cfg Options) *runner {
	n := view.Len()
	r := &runner{
		view:    view,
		options: cfg,
		dist:    make(map[string]int64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for _, id := range view.PersonIDs() {
		r.dist[id] = family.Infinity
		r.prev[id] = ""
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	r.push(cfg.Source, 0)

	return r
}

func (r *runner) push(id string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process settles persons in order of distance until the heap is empty, the
// target is settled, or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.options.Target {
			return
		}
		r.relax(u)
	}
}

// relax improves the distances of u's neighbors through u.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for _, a := range r.view.Arcs(u) {
		v, w := a.Neighbor, a.Rel.Weight
		if w >= r.options.InfEdgeThreshold || r.visited[v] {
			continue
		}
		if w > family.Infinity-du {
			continue // would overflow
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}

// nodeItem is a heap entry: a person and a tentative distance.
type nodeItem struct {
	id   string
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
