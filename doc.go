// Package genealogy is a family relationship graph engine: it finds how two
// persons are related and how a family splits into cohesive subfamilies.
//
// A family is an immutable snapshot of persons and typed, weighted
// relationships (parent-child, spouse, sibling, other). Every query builds
// its own adjacency view from the snapshot, so queries are pure and safe to
// run concurrently.
//
// Packages:
//
//	family/        Person, Relationship, Graph snapshot, AdjacencyView, Path
//	unionfind/     disjoint sets with path compression and union by rank
//	bfs/           fewest-relationships path
//	dijkstra/      minimum-weight path, non-negative weights
//	bellman_ford/  minimum-weight path with negative weights and cycle detection
//	search/        one entry point over dijkstra and bellman_ford
//	dfs/           depth-first walks, ancestors and descendants, lineage checks
//	prim_kruskal/  minimum spanning tree and subfamily partitioning
//	kinship/       path to label: grandmother, cousin, brother-in-law, ...
//	snapshot/      YAML/JSON family files
//	report/        concurrent pairwise kinship tables
//	cmd/kinship/   command-line front end
//
// Quick example:
//
//	    Mara
//	     │
//	    Jon ═ Ivy
//	       │
//	     Theo
//
//	kinship describe theo mara -f family.yaml
//	Mara is the grandmother of Theo
package genealogy
