// File: methods_vertices.go
// Role: Vertex count and per-vertex queries.
//
// Concurrency:
//   - Vertex count protected by muVert.
//   - Adjacency growth under muEdgeAdj (lock order muVert -> muEdgeAdj).

package core

// AddVertices appends k isolated vertices; their ids continue the dense range.
//
// Implementation:
//   - Stage 1: Validate k (ErrNegativeVertexCount).
//   - Stage 2: Under muVert write lock, reject a closed graph and grow n.
//   - Stage 3: Under muEdgeAdj write lock, grow adjacencyList to match.
//
// Returns:
//   - int: the id of the first added vertex.
//   - error: ErrNegativeVertexCount or ErrGraphClosed.
//
// Complexity:
//   - Time O(k) amortized, Space O(k).
func (g *Graph) AddVertices(k int) (int, error) {
	if k < 0 {
		return 0, ErrNegativeVertexCount
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if g.closed {
		return 0, ErrGraphClosed
	}

	first := g.n
	g.n += k

	g.muEdgeAdj.Lock()
	for i := 0; i < k; i++ {
		g.adjacencyList = append(g.adjacencyList, nil)
	}
	g.muEdgeAdj.Unlock()

	return first, nil
}

// HasVertex reports whether id lies in [0, VertexCount()).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return id >= 0 && id < g.n
}

// VertexCount returns the current number of vertices in the graph.
// A closed graph reports zero.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.n
}

// Degree returns the number of edge endpoints incident to id.
//
// Policy:
//   - Undirected self-loop contributes 2 (classic graph-theory convention).
//   - Directed edges contribute to both their source and their target.
//
// Errors:
//   - ErrInvalidVertexID: id outside [0, n).
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if id < 0 || id >= g.n {
		return 0, ErrInvalidVertexID
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	deg := 0
	for _, e := range g.edges {
		if e.From == id {
			deg++
		}
		if e.To == id {
			deg++
		}
	}

	return deg, nil
}
