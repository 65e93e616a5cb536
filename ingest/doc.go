// Package ingest builds a *roadgraph.Graph from an OpenStreetMap PBF
// extract. It consumes nodes and ways in a single pass over the decoded
// object stream (paulmach/osm/osmpbf's Scanner delivers nodes before the
// ways that reference them in a well-formed PBF file), assigns a travel
// speed to each way from its highway tag, and derives per-segment edge
// costs from great-circle distance and that speed.
//
// BuildGraph(ctx, path) is the primary entry point. Stream, Node and Way
// exist so the core conversion logic (BuildFromStream) can be tested
// without a real PBF file on disk.
package ingest
