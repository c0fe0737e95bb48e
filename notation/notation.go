// Package notation parses and prints a compact textual form of a graph:
//
//	4: 0-1, 1-2, 2-3, 2-2
//
// The optional "N:" prefix gives the vertex count; without it the count is
// the largest referenced id plus one. Each "a-b" is one edge in input order.
// A parsed Graph exposes its vertices and edges as edgelist descriptors.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/katalvlaran/ocegraph/edgelist"
)

// MaxVertexCount bounds the vertex count of a Graph, whether given as the
// "N:" prefix, implied by the largest id or passed to FromEdgeList.
const MaxVertexCount = 1 << 20

var (
	// ErrSyntax indicates input that does not match the notation grammar.
	ErrSyntax = errors.New("notation: syntax error")

	// ErrTooLarge indicates a vertex count above MaxVertexCount.
	ErrTooLarge = errors.New("notation: vertex count too large")
)

type graphExpr struct {
	Count *int        `parser:"( @Int \":\" )?"`
	Pairs []*pairExpr `parser:"( @@ ( \",\" @@ )* )?"`
}

type pairExpr struct {
	Start int `parser:"@Int \"-\""`
	End   int `parser:"@Int"`
}

var parseGraphExpr = participle.MustBuild[graphExpr](participle.UseLookahead(2))

// Vertex is a bare vertex id.
type Vertex int

// VertexID implements edgelist.Vertex.
func (v Vertex) VertexID() (int, error) { return int(v), nil }

// ExternalID implements edgelist.Vertex; it is the decimal id.
func (v Vertex) ExternalID() (string, error) { return strconv.Itoa(int(v)), nil }

// Pair is one edge between two vertices.
type Pair struct {
	Start, End Vertex
}

// StartVertex implements edgelist.Edge.
func (p Pair) StartVertex() (edgelist.Vertex, error) { return p.Start, nil }

// EndVertex implements edgelist.Edge.
func (p Pair) EndVertex() (edgelist.Vertex, error) { return p.End, nil }

// Graph is a parsed notation string.
type Graph struct {
	VertexCount int
	Pairs       []Pair
}

// Parse reads s. An explicit vertex count is kept even when edges reference
// ids outside it, so the builder can report the invalid reference.
func Parse(s string) (*Graph, error) {
	expr, err := parseGraphExpr.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	g := &Graph{Pairs: make([]Pair, len(expr.Pairs))}
	for i, p := range expr.Pairs {
		g.Pairs[i] = Pair{Start: Vertex(p.Start), End: Vertex(p.End)}
		if p.Start >= g.VertexCount {
			g.VertexCount = p.Start + 1
		}
		if p.End >= g.VertexCount {
			g.VertexCount = p.End + 1
		}
	}
	if expr.Count != nil {
		g.VertexCount = *expr.Count
	}
	if g.VertexCount > MaxVertexCount {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, g.VertexCount, MaxVertexCount)
	}
	return g, nil
}

// FromEdgeList builds a Graph from a flat edge-list buffer.
func FromEdgeList(n int, buf []int) (*Graph, error) {
	if n > MaxVertexCount {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxVertexCount)
	}
	pairs, err := edgelist.Pairs(buf)
	if err != nil {
		return nil, err
	}
	g := &Graph{VertexCount: n, Pairs: make([]Pair, len(pairs))}
	for i, p := range pairs {
		g.Pairs[i] = Pair{Start: Vertex(p[0]), End: Vertex(p[1])}
	}
	return g, nil
}

// Vertices returns ids 0..VertexCount-1 as descriptors.
func (g *Graph) Vertices() []edgelist.Vertex {
	out := make([]edgelist.Vertex, g.VertexCount)
	for i := range out {
		out[i] = Vertex(i)
	}
	return out
}

// Edges returns the pairs as descriptors.
func (g *Graph) Edges() []edgelist.Edge {
	out := make([]edgelist.Edge, len(g.Pairs))
	for i, p := range g.Pairs {
		out[i] = p
	}
	return out
}

// String prints g in notation form, always with the explicit count.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(g.VertexCount))
	sb.WriteString(":")
	for i, p := range g.Pairs {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " %d-%d", p.Start, p.End)
	}
	return sb.String()
}
