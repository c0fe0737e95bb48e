// Package core defines the central Graph and Edge types and provides the
// thread-safe construction primitive used to turn a flat edge list into an
// in-memory graph.
//
// Vertices are dense integers in [0, VertexCount()). An edge list is a flat
// []int where positions 2i and 2i+1 hold the endpoints of edge i.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for the
// vertex count and lifecycle, muEdgeAdj for edges and adjacency), so a graph
// can be queried across goroutines with minimal contention.
//
// Errors:
//
//	ErrNegativeVertexCount - vertex count below zero.
//	ErrInvalidVertexID     - an edge references a vertex outside [0, n).
//	ErrInvalidEdgeVector   - edge list has odd length.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrGraphClosed         - the graph has been released.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates a vertex count below zero was requested.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrInvalidVertexID indicates an edge referenced a vertex outside [0, n).
	ErrInvalidVertexID = errors.New("core: invalid vertex id")

	// ErrInvalidEdgeVector indicates an edge list whose length is not even.
	ErrInvalidEdgeVector = errors.New("core: invalid edge vector length")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrGraphClosed indicates an operation on a graph that has already been released.
	ErrGraphClosed = errors.New("core: graph is closed")
)

// Edge represents a connection between two vertices.
//
// ID is the position of the edge in insertion order, starting at zero.
// For undirected graphs From/To keep the orientation given at insertion.
type Edge struct {
	// ID is the zero-based insertion index of this edge.
	ID int

	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithoutLoops rejects self-loops (edges from a vertex to itself).
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithoutMultiEdges rejects parallel edges between the same vertices.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// WithAutoExtend makes Create grow the vertex count to cover the largest
// vertex id in the edge list instead of rejecting it with ErrInvalidVertexID.
// Negative ids are still rejected.
func WithAutoExtend() GraphOption {
	return func(g *Graph) { g.autoExtend = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected edges, parallel edges and self-loops.
// muVert protects the vertex count and the closed flag; muEdgeAdj protects
// edges and adjacencyList. Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards n, closed
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // edge orientation
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	autoExtend bool // grow n on Create instead of rejecting ids

	// Storage
	n      int    // number of vertices
	closed bool   // set once by Close
	edges  []Edge // edge catalog, indexed by Edge.ID

	// adjacencyList[v] lists the IDs of edges incident to v.
	// Directed edges are recorded on their source only; undirected edges on
	// both endpoints (a loop is recorded once).
	adjacencyList [][]int
}

// newGraph allocates an empty Graph and applies options.
// By default, Graph is undirected, allows loops and allows multi-edges.
// Complexity: O(len(opts))
func newGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowMulti: true,
		allowLoops: true,
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	AllowsLoops bool
	AllowsMulti bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}
