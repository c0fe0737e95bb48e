// Package edgelist converts caller-owned vertex and edge descriptors into a
// flat edge-list buffer, hands it to a graph-construction primitive and
// reports the resulting vertex count.
//
// Buffer layout
//
//	buf[2i]   = start vertex id of edge i
//	buf[2i+1] = end vertex id of edge i
//
// for every edge i in input order; len(buf) == 2·len(edges).
//
// Pipeline (Builder.Build)
//
//  1. V == 0 with E > 0 fails with ErrInvalidTopology before any lookup.
//  2. Every vertex descriptor must resolve (ErrInputLookup otherwise).
//  3. E == 0 requests an empty graph of V vertices; no buffer is built.
//  4. Otherwise the buffer is filled with an edge index and an independent
//     write index, then passed to Constructor.Create.
//  5. A constructor that succeeds without a graph fails with ErrNilHandle;
//     otherwise the handle's vertex count must equal V (ErrVertexCountMismatch).
//  6. The handle is released on every path once it exists.
//
// Errors
//
//   - ErrInvalidTopology      edges present with zero vertices.
//   - ErrInputLookup          a descriptor (nil or typed nil) or one of its accessors is unavailable (*LookupError).
//   - ErrInvalidVertexRef     an edge references an id outside [0, V) (from the constructor).
//   - ErrMalformedEdgeList    odd-length buffer (from the constructor or Pairs).
//   - ErrVertexCountMismatch  constructed graph disagrees with V (*MismatchError).
//   - ErrNilHandle            constructor returned a nil handle and no error.
//
// Constructor errors are returned unchanged so callers can tell bad input
// from an unexpected result of the graph library.
package edgelist
