// File: methods_edges.go
// Role: Edge insertion and edge catalog queries.
//
// Determinism:
//   - Edge IDs follow insertion order; Edges() and EdgeList() return them in that order.
//
// Concurrency:
//   - AddEdges validates and inserts under muVert (read) -> muEdgeAdj (write),
//     so a batch is either fully applied or not applied at all.

package core

// AddEdge inserts a single edge from 'from' to 'to' and returns its ID.
//
// Errors:
//   - ErrInvalidVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrGraphClosed.
//
// Complexity: O(1), or O(deg) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to int) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if g.closed {
		return 0, ErrGraphClosed
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if err := g.checkEdge(from, to, nil); err != nil {
		return 0, err
	}

	return g.insertEdge(from, to), nil
}

// AddEdges appends every (edges[2i], edges[2i+1]) pair as a new edge.
//
// Implementation:
//   - Stage 1: Reject odd-length lists (ErrInvalidEdgeVector).
//   - Stage 2: Validate every pair against the vertex range and the loop and
//     multi-edge policies, including pairs earlier in the same batch.
//   - Stage 3: Insert all pairs in order.
//
// Behavior highlights:
//   - Atomic: on any error the graph is left unchanged.
//
// Errors:
//   - ErrInvalidEdgeVector, ErrInvalidVertexID, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed, ErrGraphClosed.
//
// Complexity:
//   - Time O(E) with multi-edges allowed, Space O(E).
func (g *Graph) AddEdges(edges []int) error {
	if len(edges)%2 != 0 {
		return ErrInvalidEdgeVector
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if g.closed {
		return ErrGraphClosed
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// pending tracks pairs of this batch for the multi-edge check.
	var pending map[[2]int]struct{}
	if !g.allowMulti {
		pending = make(map[[2]int]struct{}, len(edges)/2)
	}
	for i := 0; i < len(edges); i += 2 {
		if err := g.checkEdge(edges[i], edges[i+1], pending); err != nil {
			return err
		}
		if pending != nil {
			pending[g.pairKey(edges[i], edges[i+1])] = struct{}{}
		}
	}
	for i := 0; i < len(edges); i += 2 {
		g.insertEdge(edges[i], edges[i+1])
	}

	return nil
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the edge catalog in ID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeList returns the flat edge list (from0, to0, from1, to1, ...) in ID order.
// Complexity: O(E).
func (g *Graph) EdgeList() []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, 0, 2*len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.From, e.To)
	}

	return out
}

// checkEdge validates one pair; caller holds muVert (read) and muEdgeAdj.
func (g *Graph) checkEdge(from, to int, pending map[[2]int]struct{}) error {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return ErrInvalidVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti {
		if _, dup := pending[g.pairKey(from, to)]; dup {
			return ErrMultiEdgeNotAllowed
		}
		if g.hasEdgeLocked(from, to) {
			return ErrMultiEdgeNotAllowed
		}
	}

	return nil
}

// insertEdge appends the edge and records adjacency; caller holds muEdgeAdj.
func (g *Graph) insertEdge(from, to int) int {
	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to})
	g.adjacencyList[from] = append(g.adjacencyList[from], eid)
	// Undirected edges are mirrored on the other endpoint (loops skip the mirror).
	if !g.directed && from != to {
		g.adjacencyList[to] = append(g.adjacencyList[to], eid)
	}

	return eid
}

// pairKey normalizes an endpoint pair for undirected graphs.
func (g *Graph) pairKey(from, to int) [2]int {
	if !g.directed && from > to {
		from, to = to, from
	}

	return [2]int{from, to}
}
