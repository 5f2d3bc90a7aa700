package bfs

import (
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// queueItem pairs a person ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one query.
type walker struct {
	view   *family.AdjacencyView
	opts   Options
	target string // stop as soon as this person is discovered; "" explores everything
	queue  []queueItem
	res    *Result
}

// ShortestPath returns the path with the fewest relationships from source to
// target, walking every relationship in both directions.
//
// It returns the zero Path (and a nil error) when source == target, when
// either person is unknown, or when target is unreachable.
func ShortestPath(g *family.Graph, source, target string, opts ...Option) (family.Path, error) {
	if g == nil {
		return family.Path{}, ErrGraphNil
	}
	if source == "" || target == "" {
		return family.Path{}, ErrEmptyID
	}
	o, err := buildOptions(opts)
	if err != nil {
		return family.Path{}, err
	}
	if source == target || !g.HasPerson(source) || !g.HasPerson(target) {
		return family.Path{}, nil
	}

	w := newWalker(g, source, target, o)
	w.loop()

	return w.res.PathTo(target), nil
}

// Traverse runs a full breadth-first traversal from source. An unknown source
// yields an empty Result.
func Traverse(g *family.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if source == "" {
		return nil, ErrEmptyID
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasPerson(source) {
		return &Result{Start: source, Depth: map[string]int{}, Parent: map[string]family.Arc{}}, nil
	}

	w := newWalker(g, source, "", o)
	w.loop()

	return w.res, nil
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g *family.Graph, source, target string, o Options) *walker {
	view := family.BuildAdjacency(g, family.WithConnectivity(), family.WithKinds(o.Kinds...))
	n := view.Len()
	w := &walker{
		view:   view,
		opts:   o,
		target: target,
		queue:  make([]queueItem, 0, n),
		res: &Result{
			Start:  source,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]family.Arc, n),
		},
	}
	w.res.Depth[source] = 0
	w.queue = append(w.queue, queueItem{id: source})

	return w
}

// loop processes the queue until it is empty or the target is discovered.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if w.expand(item) {
			return
		}
	}
}

// expand discovers the unseen neighbors of item and reports whether the
// target was among them.
func (w *walker) expand(item queueItem) bool {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return false
	}
	for _, a := range w.view.Arcs(item.id) {
		if _, seen := w.res.Depth[a.Neighbor]; seen {
			continue
		}
		w.res.Depth[a.Neighbor] = next
		w.res.Parent[a.Neighbor] = a
		if a.Neighbor == w.target {
			return true
		}
		w.queue = append(w.queue, queueItem{id: a.Neighbor, depth: next})
	}

	return false
}
