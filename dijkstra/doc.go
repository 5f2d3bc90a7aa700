// Package dijkstra computes minimum-weight relationship paths over a
// family.AdjacencyView whose weights are all non-negative.
//
// Overview:
//
//   - Dijkstra(view, Source(id), ...) returns distances (and predecessors) from
//     one person to every reachable person.
//   - ShortestPath(view, source, target, rels) stops as soon as target is settled
//     and rebuilds the family.Path from the predecessor chain, resolving each
//     step against rels in either orientation.
//   - The view decides which way each relationship may be walked; build it with
//     family.WithConnectivity() to ignore generation direction.
//
// Tie-breaking:
//
//	The min-heap orders entries by distance, then by push sequence, so among
//	equal tentative distances the person reached first is settled first. A
//	predecessor is only replaced by a strictly shorter distance.
//
// Unreachable targets:
//
//	ShortestPath returns the zero Path with Weight == family.Infinity and a nil
//	error. Unknown persons are treated the same way.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilView:         the view pointer is nil.
//   - ErrEmptySource:     the source ID is empty.
//   - ErrVertexNotFound:  Dijkstra's source is not in the view.
//   - ErrNegativeWeight:  an arc has a negative weight; use bellman_ford instead.
//   - ErrBadMaxDistance:  WithMaxDistance received a negative value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold received a non-positive value.
package dijkstra
