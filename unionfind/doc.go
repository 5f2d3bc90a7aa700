// Package unionfind implements a disjoint-set forest keyed by person ID.
//
// Find compresses paths (every visited node is re-parented directly to the
// root) and Union merges by rank, so both run in O(α(n)) amortized time.
//
// Unknown IDs are tolerated: Find on an ID never passed to MakeSet returns the
// ID itself, and Union registers unknown IDs on the fly. Kruskal and the
// subfamily partitioner rely on this when the edge list mentions persons that
// were not initialized up front.
//
// A Set is not safe for concurrent use; give each query its own.
package unionfind
