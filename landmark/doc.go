// Package landmark builds the ALT (A*, Landmarks, Triangle inequality)
// acceleration layer on top of search.Engine: landmark selection,
// one-to-all distance table precomputation per landmark, and derivation of
// an admissible, consistent per-target heuristic from those tables.
//
// Selection policy: the naive "first K nodes in iteration order" is a poor
// choice, since nodes close together in ID space are often close together
// geographically, giving landmarks that cluster instead of spread out.
// SelectFarthestPoint instead uses farthest-point sampling, picking each
// landmark to maximize its minimum distance to landmarks already chosen,
// which tends to place landmarks near the graph's periphery and gives
// tighter heuristic bounds.
//
// PrecomputeFor and PrecomputeParallel produce the same Tables for the same
// landmark set; the parallel variant exists purely as a throughput optimization, since the K
// landmark searches are independent single-source Dijkstra runs over an
// immutable graph, each requiring its own search.Engine.
package landmark
