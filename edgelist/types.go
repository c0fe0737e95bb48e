package edgelist

import "reflect"

// Vertex is a caller-owned vertex descriptor.
//
// VertexID is the small non-negative id used as the dense index space for
// graph construction. ExternalID is a textual identifier that is resolved
// but otherwise passed through untouched.
type Vertex interface {
	VertexID() (int, error)
	ExternalID() (string, error)
}

// Edge is a caller-owned edge descriptor referencing exactly two vertices.
type Edge interface {
	StartVertex() (Vertex, error)
	EndVertex() (Vertex, error)
}

// Handle is an opaque constructed graph. It must be closed exactly once by
// whoever obtained it from a Constructor.
type Handle interface {
	VertexCount() int
	Close() error
}

// Constructor is the graph-construction primitive.
//
// Create builds a graph of n vertices from a flat edge list; Empty builds an
// edgeless graph. Implementations must distinguish an invalid vertex
// reference (ErrInvalidVertexRef) from a malformed list (ErrMalformedEdgeList).
type Constructor interface {
	Create(edges []int, n int, directed bool) (Handle, error)
	Empty(n int, directed bool) (Handle, error)
}

// nilable is satisfied by pointer-backed descriptors that can report a nil
// receiver stored inside an interface.
type nilable interface {
	IsNil() bool
}

// isNil reports whether x is nil or a typed nil held in an interface.
// Types without IsNil fall back to reflection.
func isNil(x interface{}) bool {
	if x == nil {
		return true
	}
	if n, ok := x.(nilable); ok {
		return n.IsNil()
	}
	switch rv := reflect.ValueOf(x); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
