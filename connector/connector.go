// Package connector is the request/response facade over the edgelist
// builder: it takes a topology source, builds the graph and answers with a
// short response describing it.
package connector

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/ocegraph/bfs"
	"github.com/katalvlaran/ocegraph/core"
	"github.com/katalvlaran/ocegraph/edgelist"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNilSource indicates Send or Reach was called without a topology,
	// including a typed nil such as (*inventory.Inventory)(nil).
	ErrNilSource = errors.New("connector: source is nil")

	// ErrUnsupportedHandle indicates Reach ran on a constructor whose graph
	// is not a *core.Graph and so cannot be traversed.
	ErrUnsupportedHandle = errors.New("connector: graph handle cannot be traversed")
)

// Source is anything that can describe a graph as descriptors, such as an
// *inventory.Inventory or a *notation.Graph.
type Source interface {
	Vertices() []edgelist.Vertex
	Edges() []edgelist.Edge
}

// Config configures New. The zero value gives an undirected connector
// backed by the core engine.
type Config struct {
	Directed    bool
	Constructor edgelist.Constructor
	Logger      *logrus.Logger
}

// Response describes a built graph.
type Response struct {
	VertexCount int
	EdgeCount   int
	// Components is the number of connected components (weak for directed
	// graphs). It is only computed for core-backed graphs and is -1 otherwise.
	Components int
	Message    string
}

func (r *Response) String() string { return r.Message }

// Connector sends topologies to the builder.
type Connector struct {
	builder *edgelist.Builder
	log     *logrus.Logger
}

// New returns a Connector for cfg.
func New(cfg Config) *Connector {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	opts := []edgelist.Option{
		edgelist.WithDirected(cfg.Directed),
		edgelist.WithLogger(cfg.Logger),
	}
	if cfg.Constructor != nil {
		opts = append(opts, edgelist.WithConstructor(cfg.Constructor))
	}
	return &Connector{builder: edgelist.NewBuilder(opts...), log: cfg.Logger}
}

// Send builds the graph described by src and reports its size. The message
// has the form "Number of vertices : N".
func (c *Connector) Send(ctx context.Context, src Source) (*Response, error) {
	if nilSource(src) {
		return nil, ErrNilSource
	}
	vertices, edges := src.Vertices(), src.Edges()

	resp := &Response{EdgeCount: len(edges), Components: -1}
	n, err := c.builder.Inspect(vertices, edges, func(h edgelist.Handle) error {
		g, ok := h.(*core.Graph)
		if !ok {
			return nil
		}
		resp.EdgeCount = g.EdgeCount()
		comps, err := bfs.Components(ctx, g)
		if err != nil {
			return fmt.Errorf("connector: count components: %w", err)
		}
		resp.Components = comps
		return nil
	})
	if err != nil {
		c.log.WithError(err).WithField("vertices", len(vertices)).Warn("connector: request failed")
		return nil, err
	}

	resp.VertexCount = n
	resp.Message = fmt.Sprintf("Number of vertices : %d", n)
	c.log.WithFields(logrus.Fields{
		"vertices":   resp.VertexCount,
		"edges":      resp.EdgeCount,
		"components": resp.Components,
	}).Info("connector: request served")

	return resp, nil
}

// Reach builds the graph described by src and walks it breadth-first from
// start. Caller options are applied after the connector's own context and
// visit logging, so a caller's WithOnVisit replaces the logging hook.
//
// Errors: ErrNilSource, ErrUnsupportedHandle, builder errors and the bfs
// sentinels (ErrStartVertexNotFound, ErrOptionViolation).
func (c *Connector) Reach(ctx context.Context, src Source, start int, opts ...bfs.Option) (*bfs.Tree, error) {
	if nilSource(src) {
		return nil, ErrNilSource
	}
	walk := append([]bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(id, depth int) error {
			c.log.WithFields(logrus.Fields{"vertex": id, "depth": depth}).Trace("connector: visit")
			return nil
		}),
	}, opts...)

	var tree *bfs.Tree
	_, err := c.builder.Inspect(src.Vertices(), src.Edges(), func(h edgelist.Handle) error {
		g, ok := h.(*core.Graph)
		if !ok {
			return ErrUnsupportedHandle
		}
		var err error
		tree, err = bfs.BFS(g, start, walk...)
		return err
	})
	if err != nil {
		c.log.WithError(err).WithField("start", start).Warn("connector: reach failed")
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"start":   start,
		"reached": len(tree.Order),
		"levels":  len(tree.Levels()),
	}).Info("connector: reach served")

	return tree, nil
}

// nilSource reports whether src is nil or a nil pointer held in the interface.
func nilSource(src Source) bool {
	if src == nil {
		return true
	}
	rv := reflect.ValueOf(src)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
