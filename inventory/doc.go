// Package inventory models a network topology as nodes (devices, cards,
// ports, generic resources) connected by weighted links, and exposes it to
// the edgelist builder as vertex and edge descriptors.
//
// Every Node receives a dense, zero-based unique id in insertion order;
// that id is the vertex id seen by the graph. The textual ID is the
// operator-facing identifier and must be unique within an Inventory.
//
// Sources
//
//   - Sample: the built-in one device / two cards / eight ports topology.
//   - Index: nodes created on demand from hierarchical resource keys, each
//     linked to the node of its parent key.
//   - Document: a declarative description loaded from YAML or HCL
//     (ParseYAML, ParseHCL, LoadFile).
//
// Errors
//
//   - ErrEmptyNodeID, ErrDuplicateNode, ErrUnknownNode: node identity problems.
//   - ErrInvalidWeight: a link weight is NaN.
//   - ErrEmptyKey: an empty resource key was passed to Index.
//   - ErrUnsupportedFormat: LoadFile got an unknown extension.
//   - ErrMissingExternalID: Node.ExternalID on a node without textual id.
package inventory
