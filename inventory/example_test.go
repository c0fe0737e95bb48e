package inventory_test

import (
	"fmt"

	"github.com/katalvlaran/ocegraph/edgelist"
	"github.com/katalvlaran/ocegraph/inventory"
)

// ExampleSample prints the sample links as unique-id pairs and the graph size.
func ExampleSample() {
	inv := inventory.Sample()
	for _, l := range inv.Links()[:3] {
		fmt.Printf("%d:%d\n", l.Start.UniqueID(), l.End.UniqueID())
	}

	n, err := edgelist.GraphSize(inv.Vertices(), inv.Edges())
	fmt.Println(n, err)

	// Output:
	// 0:1
	// 0:2
	// 1:3
	// 11 <nil>
}

// ExampleIndex builds a hierarchy from resource keys.
func ExampleIndex() {
	x := inventory.NewIndex()
	_, _ = x.Node("node-7", "if-3")
	_, _ = x.Node("node-7", "if-4")

	for _, l := range x.Inventory().Links() {
		fmt.Println(l.Start, "->", l.End)
	}

	// Output:
	// node-7(1) -> node-7/if-3(0)
	// node-7(1) -> node-7/if-4(2)
}
