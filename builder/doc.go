// Package builder assembles synthetic *roadgraph.Graph fixtures for tests
// and examples that don't need a real OSM extract: grids, chains, cycles,
// and Erdos-Renyi-style random sparse graphs.
//
// BuildGraph is the single entry point; it resolves BuilderOptions into a
// builderConfig and applies a sequence of Constructors in order, the same
// composition model used throughout this module's other packages. Pass
// WithSeed to get reproducible random topologies, and WithCostFn to assign
// non-uniform edge costs (e.g. a random range standing in for travel time).
package builder
