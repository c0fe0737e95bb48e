package inventory

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// KeySeparator joins resource key tokens into a node id.
const KeySeparator = "/"

// Index creates inventory nodes on demand from hierarchical resource keys,
// such as ["node-7", "ifIndex-3"]. A key of length > 1 is linked to the node
// of its parent key (the key without its last token), which is created
// recursively when missing. Keys are remembered in first-seen order.
type Index struct {
	inv   *Inventory
	byKey *linkedhashmap.Map // joined key -> *Node
}

// NewIndex returns an empty Index backed by a fresh Inventory.
func NewIndex() *Index {
	return &Index{inv: New(), byKey: linkedhashmap.New()}
}

// Node returns the node for key, creating it and its ancestors as needed.
// A new node is assigned its unique id before its parent is resolved, so
// leaves seen first get smaller ids than their ancestors.
//
// Errors: ErrEmptyKey when key has no tokens or an empty token.
func (x *Index) Node(key ...string) (*Node, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	for _, tok := range key {
		if tok == "" {
			return nil, ErrEmptyKey
		}
	}

	id := strings.Join(key, KeySeparator)
	if v, ok := x.byKey.Get(id); ok {
		return v.(*Node), nil
	}

	n, err := x.inv.AddNode("Resource", "", id, key[len(key)-1])
	if err != nil {
		return nil, err
	}
	x.byKey.Put(id, n)

	if len(key) == 1 {
		return n, nil
	}
	parent, err := x.Node(key[:len(key)-1]...)
	if err != nil {
		return nil, err
	}
	if _, err = x.inv.Link(parent.ID, n.ID, 0); err != nil {
		return nil, err
	}

	return n, nil
}

// Keys returns the joined keys in first-seen order.
func (x *Index) Keys() []string {
	raw := x.byKey.Keys()
	out := make([]string, len(raw))
	for i, k := range raw {
		out[i] = k.(string)
	}
	return out
}

// Len returns the number of indexed keys.
func (x *Index) Len() int { return x.byKey.Size() }

// Inventory returns the inventory the index populates.
func (x *Index) Inventory() *Inventory { return x.inv }
