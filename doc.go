// Package bastrouting is a research/teaching-grade road-routing kernel:
// it builds a routable graph from an OpenStreetMap extract and answers
// point-to-point shortest-travel-time queries over it.
//
// The module is organized leaves-first:
//
//	extcost/   — the saturating extended-cost algebra used as every
//	             priority key and distance value in the search loop.
//	roadgraph/ — the undirected, weighted road graph: node set plus
//	             symmetric adjacency, built once and read-only thereafter
//	             except for component pruning.
//	search/    — the single generalized Dijkstra engine, reused for plain
//	             shortest-path queries, all-reachable-node exploration,
//	             connected-component labeling, and landmark precomputation.
//	landmark/  — the ALT (A*, Landmarks, Triangle inequality) layer:
//	             landmark selection, distance-table precomputation, and
//	             per-target heuristic derivation.
//	ingest/    — the OSM PBF adapter that turns a stream of nodes and ways
//	             into a roadgraph.Graph.
//	builder/   — synthetic road-network fixtures (grids, chains, cycles,
//	             random sparse graphs, disconnected islands) for tests and
//	             examples that don't need a real OSM extract.
//
// A typical pipeline:
//
//	g, err := ingest.BuildGraph(ctx, "extract.osm.pbf")
//	e := search.NewEngine(g)
//	e.PruneToLargestComponent()
//	tables := landmark.Precompute(g, 16)
//	h := landmark.HeuristicFor(tables, target)
//	result := search.NewEngine(g).Search(source, target, h)
package bastrouting
