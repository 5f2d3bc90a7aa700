// Package prim_kruskal computes the minimal connecting skeleton of a family
// and splits a family into cohesive subfamilies.
//
// What & Why
//
//   - Every relationship is treated as an undirected weighted edge. A low
//     weight is a close tie (parent/child = 1), a high weight a loose one.
//   - The minimum spanning tree keeps the closest ties that still connect
//     everybody; its heaviest edges are the weakest bridges between branches
//     of the family, so cutting them yields subfamilies.
//
// Algorithms Provided
//
//   - Prim(g, opts...) ([]family.Relationship, int64, error)
//     Grows one tree from the first person of the snapshot (or WithRoot) with
//     a min-heap of crossing relationships. Persons outside the root's
//     component are left out: the result is a tree of that component only.
//     Time O(E log E), space O(V + E).
//
//   - MinimumSpanningTree(g) is Prim from the first person.
//
//   - Kruskal(g) ([]family.Relationship, int64, error)
//     Stable ascending sort of all relationships, then union-find. Covers
//     every component, so on a disconnected family the result is a spanning
//     forest. Time O(E log E + α(V)·E), space O(V + E).
//
//   - PartitionIntoSubfamilies(g, k) (Partition, error)
//     Kruskal forest, then the k-1 heaviest forest edges are cut. Existing
//     components stay apart, so a disconnected family yields more than k
//     groups. Subfamily indices are 0-based and assigned in snapshot order
//     of each group's first member.
//
// Determinism
//
//	Ties between equal weights keep snapshot relationship order in every
//	algorithm, so repeated runs return identical results.
//
// Edge Cases
//
//   - Empty family: empty tree, empty partition, no error.
//   - Self-loops never enter a tree.
//   - k is clamped into [1, |persons|].
//
// Errors
//
//   - ErrGraphNil     nil graph.
//   - ErrRootNotFound WithRoot names a person absent from the family.
//   - ErrUnknownMethod unknown MSTOptions.Method in Compute.
package prim_kruskal
