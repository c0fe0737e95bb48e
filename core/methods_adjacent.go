// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, HasEdge) and adjacency helpers.
// Determinism:
//   - Neighbors() returns unique ids sorted ascending.

package core

import "sort"

// Neighbors returns the unique vertices adjacent to id, sorted ascending.
//
// Neighborhood policy:
//   - Directed edges: only targets of outgoing edges.
//   - Undirected edges: the opposite endpoint; a self-loop lists id itself.
//
// Errors:
//   - ErrInvalidVertexID: id outside [0, n).
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if id < 0 || id >= g.n {
		return nil, ErrInvalidVertexID
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[int]struct{}, len(g.adjacencyList[id]))
	for _, eid := range g.adjacencyList[id] {
		e := g.edges[eid]
		if e.From == id {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists
// (in either orientation for undirected graphs).
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return false
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// hasEdgeLocked scans the adjacency bucket of from; caller holds muEdgeAdj.
func (g *Graph) hasEdgeLocked(from, to int) bool {
	for _, eid := range g.adjacencyList[from] {
		e := g.edges[eid]
		if e.From == from && e.To == to {
			return true
		}
		if !g.directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}
