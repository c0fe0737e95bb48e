// Package bfs walks a core.Graph breadth-first.
//
// BFS returns a Tree rooted at the start vertex: visit order plus dense
// Depth and Parent slices indexed by vertex id, with -1 marking vertices
// outside the tree. Levels groups the reached vertices by distance and
// PathTo rebuilds the tree path to any reached vertex.
//
// Components counts weakly connected components with a single flood fill
// over a compressed adjacency, so it stays linear in V + E even when most
// vertices are isolated.
//
// core.Graph.Neighbors returns ids sorted ascending and BFS enqueues them in
// that order, so visit order is reproducible.
//
// Usage
//
//	tree, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	for d, level := range tree.Levels() { ... }
//	n, err := bfs.Components(ctx, g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for a negative MaxDepth.
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - ErrNotReached           from Tree.PathTo for a vertex outside the tree.
//   - Wrapped OnVisit errors and ctx.Err() on cancellation.
package bfs
