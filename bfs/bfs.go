package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ocegraph/core"
)

// cancelCheckMask sets how often Components polls its context (every 1024 vertices).
const cancelCheckMask = 1<<10 - 1

// BFS builds the breadth-first tree of g rooted at start.
//
// Neighbors are taken from core.Graph.Neighbors, so directed graphs are
// followed along edge orientation and the visit order is deterministic.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, ctx.Err() and wrapped OnVisit errors.
//
// Complexity: O(V + E log d) time, O(V) extra space.
func BFS(g *core.Graph, start int, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := newSettings(opts)
	if s.err != nil {
		return nil, s.err
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}

	t := &Tree{Start: start, Depth: make([]int, n), Parent: make([]int, n)}
	for v := range t.Depth {
		t.Depth[v], t.Parent[v] = -1, -1
	}
	t.Depth[start] = 0

	queue := []int{start}
	for head := 0; head < len(queue); head++ {
		select {
		case <-s.ctx.Done():
			return t, s.ctx.Err()
		default:
		}

		cur := queue[head]
		t.Order = append(t.Order, cur)
		if s.onVisit != nil {
			if err := s.onVisit(cur, t.Depth[cur]); err != nil {
				return t, fmt.Errorf("bfs: visit %d: %w", cur, err)
			}
		}
		if s.maxDepth > 0 && t.Depth[cur] >= s.maxDepth {
			continue
		}

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return t, fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, cur, err)
		}
		for _, nb := range nbrs {
			// the graph may have grown since n was read
			if nb >= n || t.Depth[nb] >= 0 {
				continue
			}
			t.Depth[nb] = t.Depth[cur] + 1
			t.Parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	return t, nil
}

// Components returns the number of weakly connected components of g.
// Every edge joins its endpoints regardless of direction; isolated vertices
// count as one component each and an empty graph has none.
//
// Implementation:
//   - Stage 1: Snapshot the edge list, then the vertex count.
//   - Stage 2: Build a compressed undirected adjacency (offsets + targets).
//   - Stage 3: Flood-fill from every unvisited vertex with one shared queue.
//
// Complexity: O(V + E) time and space.
func Components(ctx context.Context, g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Vertices are never removed from a live graph, so reading the count
	// after the edges keeps every endpoint in range.
	buf := g.EdgeList()
	n := g.VertexCount()

	offsets := make([]int, n+1)
	for i := 0; i+1 < len(buf); i += 2 {
		a, b := buf[i], buf[i+1]
		if a >= n || b >= n || a == b {
			continue
		}
		offsets[a+1]++
		offsets[b+1]++
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}
	targets := make([]int, offsets[n])
	next := append([]int(nil), offsets[:n]...)
	for i := 0; i+1 < len(buf); i += 2 {
		a, b := buf[i], buf[i+1]
		if a >= n || b >= n || a == b {
			continue
		}
		targets[next[a]] = b
		next[a]++
		targets[next[b]] = a
		next[b]++
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	count, popped := 0, 0
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		count++
		visited[root] = true
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			if popped&cancelCheckMask == 0 {
				if err := ctx.Err(); err != nil {
					return 0, err
				}
			}
			popped++

			v := queue[head]
			for _, w := range targets[offsets[v]:offsets[v+1]] {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
	}

	return count, nil
}
