// Package extcost implements the extended-cost algebra the search engine
// relies on: a totally ordered, additive, saturating monoid over {finite
// non-negative integer seconds, +∞}.
//
// Treating "unreached" as a first-class +∞ value removes branching on
// "have we seen this node yet?" from the Dijkstra inner loop and gives the
// priority queue a well-defined ordering regardless of initialization
// order. Addition saturates rather than wraps: adding two finite costs
// whose sum would overflow the underlying 32-bit unsigned range yields +∞.
package extcost
