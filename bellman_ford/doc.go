// Package bellman_ford computes minimum-weight relationship paths over a
// family.AdjacencyView that may carry negative weights, and reports negative
// cycles reachable from the source.
//
// Algorithm:
//
//  1. dist[source] = 0, every other person = family.Infinity.
//  2. Relax every arc of the view, at most |V|-1 rounds; stop early when a
//     round changes nothing.
//  3. Run one more round. If any arc out of a reached person still relaxes,
//     a negative cycle is reachable from the source.
//
// A reachable negative cycle is a signal, not an error: Result.NegativeCycle
// is set and Result.Path is left empty, because no minimum-weight path is
// defined. An unreachable target yields the zero Path with Weight
// family.Infinity and NegativeCycle == false.
//
// Note that a Spouse or Sibling relationship with a negative weight is a
// negative cycle on its own (there and back), as is any negative relationship
// in a family.WithConnectivity view.
//
// Complexity: O(V·E) time, O(V) space.
package bellman_ford
