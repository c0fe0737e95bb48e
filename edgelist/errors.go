package edgelist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ocegraph/core"
)

// Sentinel errors for edge-list building.
var (
	// ErrInvalidTopology indicates edges were supplied without any vertices.
	ErrInvalidTopology = errors.New("edgelist: edges present with zero vertices")

	// ErrInputLookup indicates a descriptor or one of its accessors is unavailable.
	ErrInputLookup = errors.New("edgelist: descriptor lookup failed")

	// ErrNilDescriptor is the cause recorded when a descriptor is nil.
	ErrNilDescriptor = errors.New("edgelist: descriptor is nil")

	// ErrVertexCountMismatch indicates the constructed graph reports a vertex
	// count different from the one requested.
	ErrVertexCountMismatch = errors.New("edgelist: vertex count mismatch")

	// ErrNilHandle indicates a Constructor reported success without a graph.
	ErrNilHandle = errors.New("edgelist: constructor returned no graph")

	// ErrInvalidVertexRef indicates an edge referenced a vertex id outside [0, V).
	ErrInvalidVertexRef = core.ErrInvalidVertexID

	// ErrMalformedEdgeList indicates an edge-list buffer of odd length.
	ErrMalformedEdgeList = core.ErrInvalidEdgeVector
)

// LookupError describes which descriptor accessor failed.
type LookupError struct {
	Role  string // "vertex" or "edge"
	Index int    // position in the input slice
	Field string // accessor name, or "element" for a nil descriptor
	Err   error  // underlying cause
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("edgelist: %s[%d].%s: %v", e.Role, e.Index, e.Field, e.Err)
}

// Is makes every LookupError match ErrInputLookup.
func (e *LookupError) Is(target error) bool { return target == ErrInputLookup }

// Unwrap exposes the underlying cause.
func (e *LookupError) Unwrap() error { return e.Err }

// MismatchError reports the requested and the constructed vertex count.
type MismatchError struct {
	Want int
	Got  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: requested %d, graph has %d", ErrVertexCountMismatch, e.Want, e.Got)
}

// Is makes every MismatchError match ErrVertexCountMismatch.
func (e *MismatchError) Is(target error) bool { return target == ErrVertexCountMismatch }
