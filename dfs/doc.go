// Package dfs implements depth-first traversal over a family.AdjacencyView
// and the lineage checks built on it: ancestor and descendant walks,
// generation ordering and detection of impossible parent-child cycles.
//
// What:
//
//   - DFS(view, start, opts...): explores as far as possible along each
//     relationship before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Arc filtering
//   - Full traversal of every component
//   - Ancestors / Descendants: DFS restricted to parent-child relationships,
//     walked child→parent or parent→child.
//   - DetectCycles: lists the cycles closed by back arcs of a view, using
//     White/Gray/Black coloring; LineageCycles applies it to parent-child
//     links, where any cycle means someone is recorded as their own ancestor.
//   - Generations: orders persons so that every parent precedes each of its
//     children, returning ErrCycleDetected when the lineage has a cycle.
//
// Every walk keeps an explicit stack of frames instead of recursing.
//
// Determinism:
//
//	Roots are tried in snapshot order and arcs in view order, so results are
//	identical across runs.
//
// Complexity:
//
//   - DFS, Generations: Time O(V+E), Memory O(V)
//   - DetectCycles:     Time O(V+E + C·L), Memory O(V+L_max)
//     (C = #cycles, L = average cycle length)
//
// Errors:
//
//   - ErrViewNil        view pointer is nil
//   - ErrGraphNil       graph pointer is nil
//   - ErrStartNotFound  start person not in the view
//   - ErrCycleDetected  Generations found a lineage cycle
//   - context.Canceled  traversal canceled via context
//   - hook errors       propagated from OnVisit or OnExit
package dfs
