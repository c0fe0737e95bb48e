package inventory

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Document is the declarative form of an Inventory. Node order defines the
// unique ids; links refer to nodes by textual id.
//
// YAML:
//
//	nodes:
//	  - id: "#22"
//	    type: Device
//	    name: Device #22
//	links:
//	  - start: "#22"
//	    end: "#22_#1"
//
// HCL:
//
//	node "#22" {
//	  type = "Device"
//	  name = "Device #22"
//	}
//	link {
//	  start = "#22"
//	  end   = "#22_#1"
//	}
type Document struct {
	Nodes []NodeSpec `yaml:"nodes" hcl:"node,block"`
	Links []LinkSpec `yaml:"links,omitempty" hcl:"link,block"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	ID      string `yaml:"id" hcl:"id,label"`
	Type    string `yaml:"type,omitempty" hcl:"type,optional"`
	SubType string `yaml:"subtype,omitempty" hcl:"subtype,optional"`
	Name    string `yaml:"name,omitempty" hcl:"name,optional"`
}

// LinkSpec describes one link.
type LinkSpec struct {
	Start  string  `yaml:"start" hcl:"start"`
	End    string  `yaml:"end" hcl:"end"`
	Weight float64 `yaml:"weight,omitempty" hcl:"weight,optional"`
}

// Inventory validates the document and builds an Inventory from it.
func (d *Document) Inventory() (*Inventory, error) {
	inv := New()
	for i, ns := range d.Nodes {
		if _, err := inv.AddNode(ns.Type, ns.SubType, ns.ID, ns.Name); err != nil {
			return nil, errors.Wrapf(err, "node %d", i)
		}
	}
	for i, ls := range d.Links {
		if _, err := inv.Link(ls.Start, ls.End, ls.Weight); err != nil {
			return nil, errors.Wrapf(err, "link %d", i)
		}
	}
	return inv, nil
}

// Document returns the declarative form of inv.
func (inv *Inventory) Document() *Document {
	d := &Document{
		Nodes: make([]NodeSpec, len(inv.nodes)),
		Links: make([]LinkSpec, len(inv.links)),
	}
	for i, n := range inv.nodes {
		d.Nodes[i] = NodeSpec{ID: n.ID, Type: n.Type, SubType: n.SubType, Name: n.FriendlyName}
	}
	for i, l := range inv.links {
		d.Links[i] = LinkSpec{Start: l.Start.ID, End: l.End.ID, Weight: l.Weight}
	}
	return d
}

// EncodeYAML encodes inv as a YAML document.
func (inv *Inventory) EncodeYAML() ([]byte, error) {
	out, err := yaml.Marshal(inv.Document())
	return out, errors.Wrap(err, "encode inventory")
}

// ParseYAML decodes a YAML document and builds its Inventory.
func ParseYAML(data []byte) (*Inventory, error) {
	var d Document
	if err := yaml.UnmarshalStrict(data, &d); err != nil {
		return nil, errors.Wrap(err, "decode yaml inventory")
	}
	return d.Inventory()
}

// ParseHCL decodes an HCL document and builds its Inventory. filename is
// used in diagnostics only.
func ParseHCL(data []byte, filename string) (*Inventory, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parse hcl inventory %s: %s", filename, diags.Error())
	}

	var d Document
	if diags = gohcl.DecodeBody(file.Body, nil, &d); diags.HasErrors() {
		return nil, errors.Errorf("decode hcl inventory %s: %s", filename, diags.Error())
	}
	return d.Inventory()
}

// LoadFile reads an inventory document, choosing the decoder by extension:
// .yaml and .yml for YAML, .hcl for HCL.
func LoadFile(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read inventory")
	}

	var inv *Inventory
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		inv, err = ParseYAML(data)
	case ".hcl":
		inv, err = ParseHCL(data, path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	return inv, errors.Wrapf(err, "load %s", path)
}
