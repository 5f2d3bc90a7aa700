package dfs

import (
	"context"
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// TopoOption configures Generations.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Generations orders every person of g so that each parent comes before all
// of its children. Only parent-child relationships are considered; persons
// without any are placed by the snapshot order of the walk.
//
// A parent-child cycle yields an error wrapping ErrCycleDetected that names
// the person where the cycle was closed.
func Generations(g *family.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&o)
	}

	view := family.BuildAdjacency(g, family.WithKinds(family.ParentChild))
	state := make(map[string]int, view.Len())
	order := make([]string, 0, view.Len())
	for _, id := range view.PersonIDs() {
		if state[id] != White {
			continue
		}
		var err error
		if order, err = finish(o.ctx, view, id, state, order); err != nil {
			return nil, err
		}
	}

	// reverse post-order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// finish walks every person reachable from root with an explicit stack and
// appends them to order as they turn Black.
func finish(ctx context.Context, view *family.AdjacencyView, root string, state map[string]int, order []string) ([]string, error) {
	state[root] = Gray
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return order, ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		arcs := view.Arcs(top.id)
		if top.next == len(arcs) {
			state[top.id] = Black
			order = append(order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		next := arcs[top.next].Neighbor
		top.next++
		switch state[next] {
		case Gray:
			return order, fmt.Errorf("%w: %q is their own ancestor", ErrCycleDetected, next)
		case White:
			state[next] = Gray
			stack = append(stack, frame{id: next})
		}
	}

	return order, nil
}
