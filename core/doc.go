// Package core provides a thread-safe in-memory Graph over dense integer
// vertex ids together with the construction primitive used by the edge-list
// builder.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops and parallel edges, both allowed by default
//     (WithoutLoops, WithoutMultiEdges to restrict)
//   - Construction from a flat edge list: Create(edges, n)
//   - Optional vertex-count growth on construction (WithAutoExtend)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Construction:
//
//	Create(edges []int, n int, opts ...GraphOption) (*Graph, error)
//	Empty(n int, opts ...GraphOption) (*Graph, error)
//
// Edge lists are flat: edges[2i] is the start and edges[2i+1] the end of
// edge i. An odd-length list is rejected with ErrInvalidEdgeVector and an id
// outside [0, n) with ErrInvalidVertexID.
//
// Core Methods:
//
//	AddVertices(k int) (first int, err error)   // O(k)
//	AddEdge(from, to int) (edgeID int, err error)
//	AddEdges(edges []int) error                  // atomic batch
//	VertexCount() int, EdgeCount() int           // O(1)
//	Edges() []Edge, EdgeList() []int             // O(E), insertion order
//	Neighbors(id int) ([]int, error)             // sorted ascending
//	Degree(id int) (int, error)
//	Stats() *GraphStats
//	Clone() *Graph
//	Close() error                                // release, idempotent
//
// A Graph is a handle: callers that construct one should defer Close.
//
//	g, err := core.Create([]int{0, 1, 1, 2}, 3)
//	if err != nil {
//		return err
//	}
//	defer g.Close()
package core
