// Package ocegraph turns network inventory (devices, cards, ports and the
// links between them) into graphs and reports their size.
//
// Packages:
//
//	core/       thread-safe Graph built from a flat edge list
//	edgelist/   descriptor → edge-list builder with scoped graph release
//	bfs/        breadth-first traversal and component counting
//	inventory/  topology model, resource-key index, YAML/HCL documents
//	notation/   compact "4: 0-1, 1-2" edge notation
//	store/      badger-backed inventory snapshots
//	connector/  request/response facade over the builder
//	config/     YAML application configuration
//	numeric/    floating-point predicates
//
// Quick example:
//
//	inv := inventory.Sample()
//	n, err := edgelist.GraphSize(inv.Vertices(), inv.Edges())
//	// n == 11
//
// The ocegraph command in cmd/ocegraph wires all of the above.
package ocegraph
