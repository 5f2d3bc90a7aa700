package dfs

import (
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// walker encapsulates state during DFS.
type walker struct {
	view *family.AdjacencyView
	opts Options
	res  *Result
}

// frame is one person on the explicit DFS stack; next indexes the arc to
// try when the walk returns to it.
type frame struct {
	id    string
	depth int
	next  int
}

// DFS performs depth-first search on view from start, or over every
// component with WithFullTraversal (start is then ignored).
//
// The walk keeps its own stack, so deep lineages do not grow the goroutine
// stack. On a hook error or cancellation the partial Result is returned with
// the error and Order cleared.
func DFS(view *family.AdjacencyView, start string, opts ...Option) (*Result, error) {
	if view == nil {
		return nil, ErrViewNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !view.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := view.Len()
	res := &Result{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	w := &walker{view: view, opts: o, res: res}

	if o.FullTraversal {
		for _, id := range view.PersonIDs() {
			if !res.Visited[id] {
				if err := w.traverse(id); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start); err != nil {
		return res, err
	}
	res.SkippedArcs = w.opts.SkippedArcs

	return res, nil
}

func (w *walker) traverse(root string) error {
	if err := w.enter(root, 0); err != nil {
		return err
	}
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		arcs := w.view.Arcs(top.id)
		if top.next < len(arcs) {
			a := arcs[top.next]
			top.next++
			if !w.follow(top.depth, top.id, a) {
				continue
			}
			parent, depth := top.id, top.depth+1
			w.res.Parent[a.Neighbor] = parent
			if err := w.enter(a.Neighbor, depth); err != nil {
				return err
			}
			stack = append(stack, frame{id: a.Neighbor, depth: depth})
			continue
		}

		id := top.id
		stack = stack[:len(stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				w.res.Order = nil
				return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

// enter marks id discovered at depth and runs the pre-order hook.
func (w *walker) enter(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		w.res.Order = nil
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	return nil
}

// follow reports whether arc a out of id, found at depth, leads to a person
// still to be discovered. Arcs rejected by FilterArc are counted.
func (w *walker) follow(depth int, id string, a family.Arc) bool {
	if a.Neighbor == id {
		return false
	}
	if w.opts.FilterArc != nil && !w.opts.FilterArc(a) {
		w.opts.SkippedArcs++
		return false
	}
	if w.res.Visited[a.Neighbor] {
		return false
	}

	return w.opts.MaxDepth < 0 || depth+1 <= w.opts.MaxDepth
}

// Ancestors walks parent-child relationships from id towards its parents.
// Depth in the result is the number of generations above id.
func Ancestors(g *family.Graph, id string, opts ...Option) (*Result, error) {
	return lineage(g, id, family.Reverse, opts)
}

// Descendants walks parent-child relationships from id towards its children.
func Descendants(g *family.Graph, id string, opts ...Option) (*Result, error) {
	return lineage(g, id, family.Forward, opts)
}

func lineage(g *family.Graph, id string, dir family.Direction, opts []Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	view := family.BuildAdjacency(g, family.WithKinds(family.ParentChild), family.WithConnectivity())
	only := WithFilterArc(func(a family.Arc) bool { return a.Direction == dir })

	return DFS(view, id, append(opts, only)...)
}
