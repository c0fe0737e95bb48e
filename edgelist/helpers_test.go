package edgelist_test

import (
	"fmt"

	"github.com/katalvlaran/ocegraph/edgelist"
)

// vtx is a minimal vertex descriptor. A non-nil idErr or extErr makes the
// matching accessor fail.
type vtx struct {
	id     int
	idErr  error
	extErr error
}

func (v *vtx) VertexID() (int, error) {
	if v.idErr != nil {
		return 0, v.idErr
	}
	return v.id, nil
}

func (v *vtx) ExternalID() (string, error) {
	if v.extErr != nil {
		return "", v.extErr
	}
	return fmt.Sprintf("#%d", v.id), nil
}

func (v *vtx) IsNil() bool { return v == nil }

// plainVtx is a vertex descriptor without an IsNil method.
type plainVtx struct {
	id  int
	ext string
}

func (v *plainVtx) VertexID() (int, error) { return v.id, nil }
func (v *plainVtx) ExternalID() (string, error) { return v.ext, nil }

// edge is a minimal edge descriptor.
type edge struct {
	start, end edgelist.Vertex
	startErr   error
}

func (e *edge) StartVertex() (edgelist.Vertex, error) {
	if e.startErr != nil {
		return nil, e.startErr
	}
	return e.start, nil
}

func (e *edge) EndVertex() (edgelist.Vertex, error) { return e.end, nil }

// vertices returns n descriptors with ids 0..n-1.
func vertices(n int) []edgelist.Vertex {
	out := make([]edgelist.Vertex, n)
	for i := range out {
		out[i] = &vtx{id: i}
	}
	return out
}

// edges builds descriptors for the given (start, end) id pairs.
func edges(pairs ...[2]int) []edgelist.Edge {
	out := make([]edgelist.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = &edge{start: &vtx{id: p[0]}, end: &vtx{id: p[1]}}
	}
	return out
}

// fakeHandle records Close calls and reports a fixed vertex count.
type fakeHandle struct {
	count  int
	closed int
	err    error
}

func (h *fakeHandle) VertexCount() int { return h.count }

func (h *fakeHandle) Close() error {
	h.closed++
	return h.err
}

// recorder is a Constructor that remembers every call. extra is added to the
// requested vertex count to simulate a misbehaving library; nilHandle and
// typedNil make it succeed without returning a graph.
type recorder struct {
	inner      edgelist.Constructor
	extra      int
	nilHandle  bool
	typedNil   bool
	closeErr   error
	createBufs [][]int
	emptyCalls int
	handles    []*fakeHandle
}

func (r *recorder) Create(buf []int, n int, directed bool) (edgelist.Handle, error) {
	r.createBufs = append(r.createBufs, append([]int(nil), buf...))
	if r.inner != nil {
		h, err := r.inner.Create(buf, n, directed)
		if err != nil {
			return nil, err
		}
		defer h.Close()
		n = h.VertexCount()
	}
	return r.result(n), nil
}

func (r *recorder) Empty(n int, directed bool) (edgelist.Handle, error) {
	r.emptyCalls++
	return r.result(n), nil
}

func (r *recorder) result(n int) edgelist.Handle {
	switch {
	case r.nilHandle:
		return nil
	case r.typedNil:
		return (*fakeHandle)(nil)
	}
	return r.handle(n)
}

func (r *recorder) handle(n int) *fakeHandle {
	h := &fakeHandle{count: n + r.extra, err: r.closeErr}
	r.handles = append(r.handles, h)
	return h
}
