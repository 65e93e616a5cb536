package roadgraph

import "sort"

// HasNode reports whether id is a member of the graph's node set.
//
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the number of nodes in the graph.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges (unordered pairs) in the
// graph.
//
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.edges {
		total += len(nbrs)
	}
	return total / 2
}

// Nodes returns every node id in ascending order. The order is deterministic
// given the graph's content, which landmark selection and component
// discovery rely on for reproducibility.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Neighbor reports the cost of the edge between u and v, if one exists.
//
// Complexity: O(1).
func (g *Graph) Neighbor(u, v NodeID) (Seconds, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.edges[u]
	if !ok {
		return 0, false
	}
	cost, ok := nbrs[v]
	return cost, ok
}

// AdjacencyList exposes the internal node→(neighbor→cost) mapping directly
// for read-only use by algorithm packages. Callers must not mutate the
// returned map; it is shared with the graph's own storage, which is safe
// only because the graph is treated as read-only after construction (see
// the package doc comment).
//
// Complexity: O(1).
func (g *Graph) AdjacencyList() map[NodeID]map[NodeID]Seconds {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
