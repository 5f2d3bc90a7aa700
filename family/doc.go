// Package family defines the typed family graph consumed by every algorithm
// in this module: persons, relationships, the immutable Graph snapshot, the
// per-query AdjacencyView and the Path result.
//
// What
//
//   - Person:       a family member (vertex) with optional birth/death year and gender.
//   - Relationship: a typed, weighted, stored-as-directed edge (parent→child for ParentChild).
//   - Graph:        an immutable snapshot of persons and relationships, in caller order.
//   - AdjacencyView: person ID → ordered arcs, derived from a Graph for one query.
//   - Path:         ordered person IDs plus the relationships walked between them.
//
// Traversal policy
//
//	Every Kind carries a Policy that is resolved once, when a view is built:
//	  - ParentChild, Other → PolicyForward       (arc from→to only)
//	  - Spouse, Sibling    → PolicyBidirectional (arcs from→to and to→from)
//	Algorithms that need plain connectivity build their view WithConnectivity(),
//	which registers both directions for every kind. Algorithms never re-decide
//	direction on their own.
//
// Data quality
//
//	The snapshot is externally owned and may be imperfect. NewGraph keeps the
//	first person per ID, the first relationship per ID, and drops relationships
//	whose endpoints are unknown. Nothing here fails on such input; the dropped
//	records are counted in Graph.Anomalies().
//
// Determinism
//
//	Persons(), Relationships() and every arc list follow snapshot order, so two
//	views built from the same Graph are structurally equal.
//
// Complexity (V = |persons|, E = |relationships|)
//
//   - NewGraph:        O(V + E)
//   - BuildAdjacency:  O(V + E)
//   - ReconstructPath: O(L·E) for a path of L steps
package family
