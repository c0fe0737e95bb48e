package edgelist_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ocegraph/edgelist"
)

// ExampleGraphSize builds a four-vertex path with a loop on vertex 2.
func ExampleGraphSize() {
	n, err := edgelist.GraphSize(vertices(4), edges(
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{2, 2},
	))
	fmt.Println(n, err)

	// Output:
	// 4 <nil>
}

// ExampleBuilder_EdgeList shows the flat buffer layout.
func ExampleBuilder_EdgeList() {
	b := edgelist.NewBuilder()
	buf, _ := b.EdgeList(edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{2, 2}))
	pairs, _ := edgelist.Pairs(buf)
	fmt.Println(buf)
	fmt.Println(pairs)

	// Output:
	// [0 1 1 2 2 3 2 2]
	// [[0 1] [1 2] [2 3] [2 2]]
}

// ExampleBuilder_Build_errors walks the distinct failure kinds.
func ExampleBuilder_Build_errors() {
	b := edgelist.NewBuilder()

	_, err := b.Build(nil, edges([2]int{0, 1}))
	fmt.Println(errors.Is(err, edgelist.ErrInvalidTopology))

	_, err = b.Build(vertices(3), edges([2]int{0, 1}, [2]int{1, 4}))
	fmt.Println(errors.Is(err, edgelist.ErrInvalidVertexRef))

	_, err = b.Build([]edgelist.Vertex{nil}, nil)
	fmt.Println(errors.Is(err, edgelist.ErrInputLookup), err)

	// Output:
	// true
	// true
	// true edgelist: vertex[0].element: edgelist: descriptor is nil
}
