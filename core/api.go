// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public constructors and read-only getters.
// Policy:
//   - Constructors validate their whole input before allocating the graph.
//   - Every exported function documents complexity and locking strategy.

package core

// Create builds a graph with n vertices from a flat edge list.
//
// Implementation:
//   - Stage 1: Apply options and validate n (ErrNegativeVertexCount).
//   - Stage 2: Validate the edge list length is even (ErrInvalidEdgeVector).
//   - Stage 3: With WithAutoExtend, grow n to cover the largest referenced id.
//   - Stage 4: Allocate n vertices and insert all edges via AddEdges.
//
// Behavior highlights:
//   - Edge i connects edges[2i] and edges[2i+1]; edge IDs follow list order.
//   - The caller's slice is not retained.
//
// Errors:
//   - ErrNegativeVertexCount: n < 0.
//   - ErrInvalidEdgeVector: len(edges) is odd.
//   - ErrInvalidVertexID: an id is outside [0, n) (or negative with auto-extend).
//   - ErrLoopNotAllowed / ErrMultiEdgeNotAllowed: policy violations.
//
// Complexity:
//   - Time O(n + E·d) where d is the endpoint degree checked for multi-edges
//     (O(n + E) when multi-edges are allowed), Space O(n + E).
func Create(edges []int, n int, opts ...GraphOption) (*Graph, error) {
	g := newGraph(opts...)
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	if len(edges)%2 != 0 {
		return nil, ErrInvalidEdgeVector
	}
	if g.autoExtend {
		for _, id := range edges {
			if id < 0 {
				return nil, ErrInvalidVertexID
			}
			if id >= n {
				n = id + 1
			}
		}
	}

	g.n = n
	g.adjacencyList = make([][]int, n)
	g.edges = make([]Edge, 0, len(edges)/2)
	if err := g.AddEdges(edges); err != nil {
		return nil, err
	}

	return g, nil
}

// Empty creates a graph with n isolated vertices and no edges.
//
// Errors:
//   - ErrNegativeVertexCount: n < 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func Empty(n int, opts ...GraphOption) (*Graph, error) {
	return Create(nil, n, opts...)
}

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and count loops, then release.
//
// Notes:
//   - Avoids holding both locks simultaneously.
//   - A closed graph reports zero counts.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
		VertexCount: g.n,
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
