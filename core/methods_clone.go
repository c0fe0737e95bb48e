// File: methods_clone.go
// Role: Cloning and releasing graph instances.
// Concurrency:
//   - Read locks for snapshotting; Close takes both write locks.

package core

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Cloning a closed graph yields a closed, empty graph.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		autoExtend: g.autoExtend,
		n:          g.n,
		closed:     g.closed,
		edges:      make([]Edge, len(g.edges)),
	}
	copy(clone.edges, g.edges)
	clone.adjacencyList = make([][]int, len(g.adjacencyList))
	for v, bucket := range g.adjacencyList {
		clone.adjacencyList[v] = append([]int(nil), bucket...)
	}

	return clone
}

// Close releases the graph's storage. It is idempotent and always returns nil;
// the error result lets *Graph satisfy io.Closer-style handle interfaces.
// After Close, counts report zero and mutations return ErrGraphClosed.
//
// Complexity: O(1)
func (g *Graph) Close() error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.closed = true
	g.n = 0
	g.edges = nil
	g.adjacencyList = nil

	return nil
}

// Closed reports whether Close has been called.
func (g *Graph) Closed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.closed
}
