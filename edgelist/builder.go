package edgelist

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Builder turns vertex and edge descriptors into a constructed graph and
// reports its vertex count. A Builder holds no per-call state and may be
// shared across goroutines as long as its Constructor can.
type Builder struct {
	constructor Constructor
	directed    bool
	log         *logrus.Logger
}

// NewBuilder returns an undirected Builder backed by the core engine unless
// options say otherwise.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		constructor: NewCoreConstructor(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logrus.New()
	}
	return b
}

// GraphSize builds the graph with a default Builder and returns its vertex count.
func GraphSize(vertices []Vertex, edges []Edge) (int, error) {
	return NewBuilder().Build(vertices, edges)
}

// Directed reports the directedness flag passed to the Constructor.
func (b *Builder) Directed() bool { return b.directed }

// Build constructs the graph described by vertices and edges and returns its
// vertex count, which equals len(vertices) on success. The constructed graph
// is released before Build returns.
func (b *Builder) Build(vertices []Vertex, edges []Edge) (int, error) {
	return b.Inspect(vertices, edges, nil)
}

// Inspect runs the same pipeline as Build and, once the vertex count has been
// validated, calls fn with the live handle. The handle is released after fn
// returns; fn must not retain it. An error from fn is returned as-is.
func (b *Builder) Inspect(vertices []Vertex, edges []Edge, fn func(Handle) error) (n int, err error) {
	v, e := len(vertices), len(edges)
	// A graph cannot have edges without vertices; checked before any work.
	if v == 0 && e > 0 {
		return 0, ErrInvalidTopology
	}

	entry := b.log.WithFields(logrus.Fields{"vertices": v, "edges": e, "directed": b.directed})
	entry.Debug("edgelist: building graph")

	for i, vx := range vertices {
		id, err := resolveVertex(vx, "vertex", i, "")
		if err != nil {
			return 0, err
		}
		entry.WithField("vertex_id", id).Trace("edgelist: vertex resolved")
	}

	var h Handle
	if e == 0 {
		h, err = b.constructor.Empty(v, b.directed)
	} else {
		var buf []int
		if buf, err = encode(edges); err != nil {
			return 0, err
		}
		h, err = b.constructor.Create(buf, v, b.directed)
	}
	if err != nil {
		entry.WithError(err).Debug("edgelist: construction failed")
		return 0, err
	}
	if isNil(h) {
		entry.Debug("edgelist: constructor returned no graph")
		return 0, ErrNilHandle
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			n, err = 0, fmt.Errorf("edgelist: release graph: %w", cerr)
		}
	}()

	got := h.VertexCount()
	if got != v {
		entry.WithField("graph_vertices", got).Debug("edgelist: vertex count mismatch")
		return 0, &MismatchError{Want: v, Got: got}
	}

	if fn != nil {
		if err = fn(h); err != nil {
			return 0, err
		}
	}

	entry.WithField("graph_vertices", got).Debug("edgelist: graph built")
	return got, nil
}

// EdgeList resolves every edge descriptor and returns the flat buffer
// (start0, end0, start1, end1, ...) without constructing a graph.
func (b *Builder) EdgeList(edges []Edge) ([]int, error) {
	return encode(edges)
}
