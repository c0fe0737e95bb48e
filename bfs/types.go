package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start id is outside [0, V).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when the graph cannot list a vertex's neighbors.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNotReached is returned by Tree.PathTo for a vertex outside the tree.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures a traversal.
type Option func(*settings)

// settings is the resolved option set; err records the first invalid option.
type settings struct {
	ctx      context.Context
	maxDepth int
	onVisit  func(id, depth int) error
	err      error
}

func newSettings(opts []Option) settings {
	s := settings{ctx: context.Background()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithMaxDepth limits the tree to vertices at most d edges from the start.
// Zero means no limit; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(s *settings) {
		if d < 0 {
			s.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		s.maxDepth = d
	}
}

// WithOnVisit calls fn for every vertex as it leaves the queue. A non-nil
// error aborts the traversal and is returned wrapped.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(s *settings) { s.onVisit = fn }
}

// Tree is a breadth-first tree over the dense vertex range of a graph.
//
// Depth[v] and Parent[v] are -1 for vertices that were not reached; the
// start vertex has depth 0 and parent -1. Order lists reached vertices in
// visit order.
type Tree struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v is part of the tree.
func (t *Tree) Reached(v int) bool {
	return v >= 0 && v < len(t.Depth) && t.Depth[v] >= 0
}

// PathTo returns the tree path from Start to v, both ends included.
func (t *Tree) PathTo(v int) ([]int, error) {
	if !t.Reached(v) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, v)
	}
	path := make([]int, t.Depth[v]+1)
	for i, cur := len(path)-1, v; i >= 0; i, cur = i-1, t.Parent[cur] {
		path[i] = cur
	}
	return path, nil
}

// Levels groups the reached vertices by depth, each level in visit order.
func (t *Tree) Levels() [][]int {
	var levels [][]int
	for _, v := range t.Order {
		d := t.Depth[v]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], v)
	}
	return levels
}
