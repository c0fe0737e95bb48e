package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/ocegraph/bfs"
	"github.com/katalvlaran/ocegraph/core"
)

// mustGraph builds a graph or fails the test.
func mustGraph(t *testing.T, edges []int, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.Create(edges, n, opts...)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, nil, 1)
	for _, start := range []int{-1, 1, 5} {
		if _, err := bfs.BFS(g, start); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("start %d: want ErrStartVertexNotFound, got %v", start, err)
		}
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestTree_CycleDepthsAndPath covers a simple cycle.
func TestTree_CycleDepthsAndPath(t *testing.T) {
	// 0-1-2-3-0 undirected cycle plus isolated 4
	g := mustGraph(t, []int{0, 1, 1, 2, 2, 3, 3, 0}, 5)

	tree, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(tree.Order, want) {
		t.Errorf("Order = %v; want %v", tree.Order, want)
	}
	if want := []int{0, 1, 2, 1, -1}; !reflect.DeepEqual(tree.Depth, want) {
		t.Errorf("Depth = %v; want %v", tree.Depth, want)
	}
	if want := []int{-1, 0, 1, 0, -1}; !reflect.DeepEqual(tree.Parent, want) {
		t.Errorf("Parent = %v; want %v", tree.Parent, want)
	}
	if path, _ := tree.PathTo(2); !reflect.DeepEqual(path, []int{0, 1, 2}) {
		t.Errorf("PathTo(2) = %v; want [0 1 2]", path)
	}
	if path, _ := tree.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo(0) = %v; want [0]", path)
	}
	for _, v := range []int{4, -1, 9} {
		if tree.Reached(v) {
			t.Errorf("Reached(%d) = true", v)
		}
		if _, err := tree.PathTo(v); !errors.Is(err, bfs.ErrNotReached) {
			t.Errorf("PathTo(%d): want ErrNotReached, got %v", v, err)
		}
	}
	if want := [][]int{{0}, {1, 3}, {2}}; !reflect.DeepEqual(tree.Levels(), want) {
		t.Errorf("Levels = %v; want %v", tree.Levels(), want)
	}
}

// TestBFS_Directed follows edges only in their orientation.
func TestBFS_Directed(t *testing.T) {
	g := mustGraph(t, []int{1, 0, 1, 2}, 3, core.WithDirected(true))
	tree, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(tree.Order, []int{0}) {
		t.Errorf("from 0: got %v; want [0]", tree.Order)
	}
	tree, _ = bfs.BFS(g, 1)
	if !reflect.DeepEqual(tree.Order, []int{1, 0, 2}) {
		t.Errorf("from 1: got %v; want [1 0 2]", tree.Order)
	}
}

// TestBFS_MaxDepth verifies depth limiting.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustGraph(t, []int{0, 1, 1, 2}, 3)
	tree, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	if !reflect.DeepEqual(tree.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", tree.Order)
	}
	if tree.Reached(2) {
		t.Errorf("MaxDepth=1: vertex 2 should be outside the tree")
	}
	if tree, _ = bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(tree.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", tree.Order)
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not visit twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := mustGraph(t, []int{0, 0, 0, 1, 0, 1}, 2)
	var seen []int
	tree, _ := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		seen = append(seen, id)
		return nil
	}))
	if want := []int{0, 1}; !reflect.DeepEqual(tree.Order, want) || !reflect.DeepEqual(seen, want) {
		t.Errorf("SelfLoop/Parallel: got order %v visits %v; want %v", tree.Order, seen, want)
	}
}

// TestBFS_VisitErrorAndCancellation covers both abort paths.
func TestBFS_VisitErrorAndCancellation(t *testing.T) {
	g := mustGraph(t, []int{0, 1, 1, 2}, 3)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) || !strings.Contains(err.Error(), "visit 1") {
		t.Errorf("OnVisit abort: got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("BFS cancellation: want context.Canceled, got %v", err)
	}
	if _, err := bfs.Components(ctx, g); !errors.Is(err, context.Canceled) {
		t.Errorf("Components cancellation: want context.Canceled, got %v", err)
	}
}

// TestComponents counts components on undirected, directed and empty graphs.
func TestComponents(t *testing.T) {
	cases := []struct {
		name  string
		edges []int
		n     int
		opts  []core.GraphOption
		want  int
	}{
		{name: "empty", n: 0, want: 0},
		{name: "isolated", n: 3, want: 3},
		{name: "path with loop", edges: []int{0, 1, 1, 2, 2, 3, 2, 2}, n: 4, want: 1},
		{name: "two islands", edges: []int{0, 1, 2, 3}, n: 5, want: 3},
		{name: "parallel edges", edges: []int{0, 1, 1, 0, 0, 1}, n: 3, want: 2},
		{name: "directed weak", edges: []int{1, 0, 2, 1}, n: 3,
			opts: []core.GraphOption{core.WithDirected(true)}, want: 1},
		{name: "directed sinks", edges: []int{0, 2, 1, 2, 3, 4}, n: 6,
			opts: []core.GraphOption{core.WithDirected(true)}, want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.edges, tc.n, tc.opts...)
			got, err := bfs.Components(context.Background(), g)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Components = %d; want %d", got, tc.want)
			}
		})
	}

	if _, err := bfs.Components(context.Background(), nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestComponents_ManyIsolated checks that counting stays linear when no
// vertex has an edge.
func TestComponents_ManyIsolated(t *testing.T) {
	const n = 100000
	g, err := core.Empty(n)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })

	began := time.Now()
	got, err := bfs.Components(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Errorf("Components = %d; want %d", got, n)
	}
	if el := time.Since(began); el > 2*time.Second {
		t.Errorf("Components took %v for %d isolated vertices", el, n)
	}
}

// TestComponents_LongChain exercises one large component.
func TestComponents_LongChain(t *testing.T) {
	const n = 50000
	edges := make([]int, 0, 2*(n-1))
	for v := 0; v+1 < n; v++ {
		edges = append(edges, v, v+1)
	}
	g := mustGraph(t, edges, n)
	if got, err := bfs.Components(context.Background(), g); err != nil || got != 1 {
		t.Errorf("Components = %d, %v; want 1, nil", got, err)
	}
}
