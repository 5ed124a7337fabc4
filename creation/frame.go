package creation

import (
	"slices"

	"github.com/zero-day-ai/graphscope/attr"
	"github.com/zero-day-ai/graphscope/model"
)

// Frame is one open scope on a Stack.
type Frame struct {
	id    string
	depth int
	graph Graph

	nodeAttrs  attr.Attributes
	linkAttrs  attr.Attributes
	graphAttrs attr.Attributes

	// immutable snapshots by label
	nodes map[model.Label]model.Node

	// mutable nodes live in an arena indexed by label
	mutIndex map[model.Label]int
	mutNodes []*model.MutableNode
}

// ID returns the unique frame identifier.
func (f *Frame) ID() string {
	return f.id
}

// Depth returns the 1-based position of the frame on its stack.
func (f *Frame) Depth() int {
	return f.depth
}

// Graph returns the enclosing graph, if the frame has one.
func (f *Frame) Graph() (Graph, bool) {
	return f.graph, f.graph != nil
}

// NodeAttrs returns the node defaults of the frame. The set is live: changes
// apply to nodes first resolved afterwards.
func (f *Frame) NodeAttrs() attr.Attributes {
	return f.nodeAttrs
}

// LinkAttrs returns the link defaults of the frame.
func (f *Frame) LinkAttrs() attr.Attributes {
	return f.linkAttrs
}

// GraphAttrs returns the graph defaults merged into the enclosing graph when
// the frame is closed.
func (f *Frame) GraphAttrs() attr.Attributes {
	return f.graphAttrs
}

// MutableNodes returns the mutable nodes resolved in this frame, in
// resolution order.
func (f *Frame) MutableNodes() []*model.MutableNode {
	return slices.Clone(f.mutNodes)
}

// CachedNode returns the snapshot cached for label, if any.
func (f *Frame) CachedNode(label model.Label) (model.Node, bool) {
	n, ok := f.nodes[label]
	return n, ok
}
