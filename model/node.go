package model

import (
	"slices"

	"github.com/zero-day-ai/graphscope/attr"
)

// Node is an immutable node snapshot. The zero value is a node with an
// empty label and no attributes.
type Node struct {
	label Label
	attrs attr.Attributes
	links []*Link
}

// NewNode creates a snapshot with the given label and no attributes.
func NewNode(label Label) Node {
	return Node{label: label}
}

// Label returns the node label.
func (n Node) Label() Label {
	return n.label
}

// EndpointLabel implements Endpoint.
func (n Node) EndpointLabel() Label {
	return n.label
}

// Attrs returns a copy of the node attributes.
func (n Node) Attrs() attr.Attributes {
	return n.attrs.Clone()
}

// Attr returns a single attribute value.
func (n Node) Attr(key string) (any, bool) {
	return n.attrs.Get(key)
}

// Links returns the links leaving this node.
func (n Node) Links() []*Link {
	return slices.Clone(n.links)
}

// With returns a copy of the node with attrs merged over its own.
func (n Node) With(attrs attr.Attributes) Node {
	n.attrs = n.attrs.Clone().Add(attrs)
	return n
}

// WithLink returns a copy of the node with l appended to its links.
func (n Node) WithLink(l *Link) Node {
	n.links = append(slices.Clone(n.links), l)
	return n
}

// Equal reports whether both snapshots have the same label, attributes and links.
func (n Node) Equal(other Node) bool {
	return n.label == other.label &&
		n.attrs.Equal(other.attrs) &&
		slices.Equal(n.links, other.links)
}

// Validate checks that the node has a label.
func (n Node) Validate() error {
	if n.label == "" {
		return ErrEmptyLabel
	}
	return nil
}

// MutableNode is a shared, mutable node. Changes through any holder are
// visible to all holders.
type MutableNode struct {
	label Label
	attrs attr.Attributes
	links []*Link
}

// NewMutableNode creates a mutable node with the given label and an empty
// attribute set.
func NewMutableNode(label Label) *MutableNode {
	return &MutableNode{
		label: label,
		attrs: attr.New(),
	}
}

// Label returns the node label.
func (n *MutableNode) Label() Label {
	return n.label
}

// EndpointLabel implements Endpoint.
func (n *MutableNode) EndpointLabel() Label {
	return n.label
}

// Attrs returns the live attribute set of the node.
func (n *MutableNode) Attrs() attr.Attributes {
	return n.attrs
}

// Add merges attrs into the node attributes and returns the node for method chaining.
func (n *MutableNode) Add(attrs attr.Attributes) *MutableNode {
	if n.attrs == nil {
		n.attrs = attr.New()
	}
	n.attrs.Add(attrs)
	return n
}

// AddLink appends a link leaving this node and returns the node for method chaining.
func (n *MutableNode) AddLink(l *Link) *MutableNode {
	n.links = append(n.links, l)
	return n
}

// Links returns the links leaving this node.
func (n *MutableNode) Links() []*Link {
	return slices.Clone(n.links)
}

// Snapshot returns an immutable copy of the node.
func (n *MutableNode) Snapshot() Node {
	return Node{
		label: n.label,
		attrs: n.attrs.Clone(),
		links: slices.Clone(n.links),
	}
}

// Validate checks that the node has a label.
func (n *MutableNode) Validate() error {
	if n.label == "" {
		return ErrEmptyLabel
	}
	return nil
}
