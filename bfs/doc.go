// Package bfs finds the relationship path with the fewest edges between two
// persons of a family.Graph, and exposes the underlying breadth-first
// traversal (visit order, depth and parent arcs).
//
// What
//
//   - ShortestPath(g, source, target): fewest-edge family.Path, or the zero Path.
//   - Traverse(g, source): full breadth-first layering from source.
//   - Every relationship kind is walked in both directions: the search runs on
//     a family.WithConnectivity view and is not generation-aware.
//
// Determinism
//
//	Arcs are expanded in snapshot relationship order and the first discovery
//	of a person wins, so among equal-length paths the one built from earlier
//	relationships is returned. Two runs on the same Graph agree.
//
// Not-found is not an error
//
//	source == target, an unknown source or target, and an unreachable target
//	all yield the zero Path with a nil error. Only structural misuse is an
//	error: a nil graph (ErrGraphNil), an empty ID (ErrEmptyID) or an invalid
//	option (ErrOptionViolation).
//
// Options
//
//   - WithMaxDepth(d): do not walk beyond d edges (d > 0); 0 means no limit.
//   - WithKinds(k...): walk only the given relationship kinds.
//
// Complexity (V = |persons|, E = |relationships|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the view, O(V) for queue, depth and parent maps.
package bfs
