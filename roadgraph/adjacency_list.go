package roadgraph

// AddEdge installs an undirected edge {u,v} with the given cost in seconds.
// Both endpoints are added to the node set if absent. A self-loop (u == v)
// is silently ignored: the road-graph invariant forbids them and the
// builder never has a legitimate reason to ask for one. When an edge
// between u and v already exists, the new cost overwrites it (last writer
// wins), matching the way the graph builder resolves duplicate way
// segments.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID, cost Seconds) {
	if u == v {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNodeLocked(u)
	g.ensureNodeLocked(v)
	g.edges[u][v] = cost
	g.edges[v][u] = cost
}

// ensureNodeLocked adds id to the node set and gives it an empty adjacency
// row if it is not already present. Caller must hold g.mu for writing.
func (g *Graph) ensureNodeLocked(id NodeID) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.edges[id] = make(map[NodeID]Seconds)
}

// Retain keeps only the nodes present in keep, dropping every other node
// and every edge incident to it. This is the only mutation the graph
// undergoes after construction; the search engine uses it to prune to the
// largest connected component.
//
// Complexity: O(V + E).
func (g *Graph) Retain(keep map[NodeID]struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id := range g.nodes {
		if _, ok := keep[id]; !ok {
			delete(g.nodes, id)
			delete(g.edges, id)
		}
	}
	for _, nbrs := range g.edges {
		for v := range nbrs {
			if _, ok := keep[v]; !ok {
				delete(nbrs, v)
			}
		}
	}
}
