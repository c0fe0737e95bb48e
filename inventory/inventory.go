package inventory

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ocegraph/edgelist"
	"github.com/katalvlaran/ocegraph/numeric"
)

// Sentinel errors for inventory construction.
var (
	ErrEmptyNodeID       = errors.New("inventory: node id is empty")
	ErrDuplicateNode     = errors.New("inventory: duplicate node id")
	ErrUnknownNode       = errors.New("inventory: unknown node id")
	ErrInvalidWeight     = errors.New("inventory: link weight is NaN")
	ErrEmptyKey          = errors.New("inventory: resource key is empty")
	ErrUnsupportedFormat = errors.New("inventory: unsupported document format")
	ErrMissingExternalID = errors.New("inventory: node has no external id")
)

// Node is a single inventory object. Its unique id is assigned by the
// Inventory that created it.
type Node struct {
	Type         string
	SubType      string
	ID           string
	FriendlyName string

	uniqueID int
}

// UniqueID returns the dense vertex id of n.
func (n *Node) UniqueID() int { return n.uniqueID }

// VertexID implements edgelist.Vertex.
func (n *Node) VertexID() (int, error) { return n.uniqueID, nil }

// ExternalID implements edgelist.Vertex.
func (n *Node) ExternalID() (string, error) {
	if n.ID == "" {
		return "", ErrMissingExternalID
	}
	return n.ID, nil
}

// IsNil reports whether n is a nil pointer.
func (n *Node) IsNil() bool { return n == nil }

func (n *Node) String() string {
	return fmt.Sprintf("%s(%d)", n.ID, n.uniqueID)
}

// Link connects two nodes. Weight is carried through untouched.
type Link struct {
	Start  *Node
	End    *Node
	Weight float64
}

// StartVertex implements edgelist.Edge. A missing endpoint yields a nil vertex.
func (l *Link) StartVertex() (edgelist.Vertex, error) { return vertexOf(l.Start), nil }

// EndVertex implements edgelist.Edge.
func (l *Link) EndVertex() (edgelist.Vertex, error) { return vertexOf(l.End), nil }

// IsNil reports whether l is a nil pointer.
func (l *Link) IsNil() bool { return l == nil }

func vertexOf(n *Node) edgelist.Vertex {
	if n == nil {
		return nil
	}
	return n
}

// Inventory is an ordered set of nodes and links.
// It is not safe for concurrent mutation.
type Inventory struct {
	nodes []*Node
	links []*Link
	byID  map[string]*Node
}

// New returns an empty Inventory.
func New() *Inventory {
	return &Inventory{byID: make(map[string]*Node)}
}

// AddNode appends a node and assigns it the next unique id.
//
// Errors: ErrEmptyNodeID, ErrDuplicateNode.
func (inv *Inventory) AddNode(typ, subType, id, friendlyName string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if _, ok := inv.byID[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	n := &Node{
		Type:         typ,
		SubType:      subType,
		ID:           id,
		FriendlyName: friendlyName,
		uniqueID:     len(inv.nodes),
	}
	inv.nodes = append(inv.nodes, n)
	inv.byID[id] = n

	return n, nil
}

// Link connects the nodes with the given textual ids.
//
// Errors: ErrUnknownNode, ErrInvalidWeight.
func (inv *Inventory) Link(startID, endID string, weight float64) (*Link, error) {
	if numeric.IsNaN(weight) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidWeight, startID, endID)
	}
	start, ok := inv.byID[startID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, startID)
	}
	end, ok := inv.byID[endID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, endID)
	}
	l := &Link{Start: start, End: end, Weight: weight}
	inv.links = append(inv.links, l)

	return l, nil
}

// Lookup returns the node with the given textual id.
func (inv *Inventory) Lookup(id string) (*Node, bool) {
	n, ok := inv.byID[id]
	return n, ok
}

// Nodes returns the nodes in unique-id order. The slice is a copy.
func (inv *Inventory) Nodes() []*Node {
	return append([]*Node(nil), inv.nodes...)
}

// Links returns the links in insertion order. The slice is a copy.
func (inv *Inventory) Links() []*Link {
	return append([]*Link(nil), inv.links...)
}

// NodeCount returns the number of nodes.
func (inv *Inventory) NodeCount() int { return len(inv.nodes) }

// LinkCount returns the number of links.
func (inv *Inventory) LinkCount() int { return len(inv.links) }

// Vertices returns the nodes as edgelist descriptors.
func (inv *Inventory) Vertices() []edgelist.Vertex {
	out := make([]edgelist.Vertex, len(inv.nodes))
	for i, n := range inv.nodes {
		out[i] = n
	}
	return out
}

// Edges returns the links as edgelist descriptors.
func (inv *Inventory) Edges() []edgelist.Edge {
	out := make([]edgelist.Edge, len(inv.links))
	for i, l := range inv.links {
		out[i] = l
	}
	return out
}
