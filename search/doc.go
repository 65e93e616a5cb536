// Package search implements a single generalized Dijkstra engine, reused
// for plain shortest-path queries, all-reachable-node exploration,
// connected-component labeling, and landmark table precomputation.
//
// Overview:
//
//   - Engine owns a read-only *roadgraph.Graph, a visited-round label map,
//     and a round counter. The label map persists across calls on the same
//     Engine; that is what makes component discovery linear in the size of
//     the graph instead of quadratic in the number of components.
//   - Search runs a min-heap priority-queue Dijkstra loop with lazy
//     decrease-key: entries are pushed freely and a stale entry (one whose
//     recorded distance no longer matches the best known distance for that
//     node) is discarded the moment it is popped, rather than located and
//     updated in place.
//   - When a Heuristic is supplied, Search becomes A*: the priority used for
//     ordering is g(v) + h(v) instead of g(v) alone, but the stale-entry
//     check still compares against g(v), so admissibility of h is all that
//     is required for correctness.
//   - FindLargestComponent and PruneToLargestComponent are built entirely out
//     of repeated Search calls with no target; they do not re-implement
//     traversal.
//
// Complexity: Search is O((V + E) log V) per call. FindLargestComponent is
// O(V + E) total across however many component-discovery rounds it takes,
// since every node is seeded into exactly one round.
//
// Thread safety: an Engine is not safe for concurrent use by multiple
// goroutines (the label map and round counter are mutated in place).
// Independent searches over the same *roadgraph.Graph, including parallel
// landmark precomputation, must each use their own Engine.
package search
