package model

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/zero-day-ai/graphscope/attr"
)

// MutableGraph is a graph under construction. Nodes and subgraphs are kept
// in insertion order.
type MutableGraph struct {
	// ID is the unique graph identifier.
	ID string

	// Name is the optional graph name.
	Name string

	// Directed marks the graph as directed.
	Directed bool

	// Strict forbids parallel links when the graph is consumed.
	Strict bool

	// Cluster marks a subgraph as a cluster.
	Cluster bool

	attrs     attr.Attributes
	nodes     []*MutableNode
	seen      map[*MutableNode]struct{}
	subgraphs []*MutableGraph
}

// NewMutableGraph creates an empty, unnamed, undirected graph.
func NewMutableGraph() *MutableGraph {
	return &MutableGraph{
		ID:    uuid.New().String(),
		attrs: attr.New(),
		seen:  make(map[*MutableNode]struct{}),
	}
}

// SetName sets the graph name and returns the graph for method chaining.
func (g *MutableGraph) SetName(name string) *MutableGraph {
	g.Name = name
	return g
}

// SetDirected sets the directed flag and returns the graph for method chaining.
func (g *MutableGraph) SetDirected(directed bool) *MutableGraph {
	g.Directed = directed
	return g
}

// SetStrict sets the strict flag and returns the graph for method chaining.
func (g *MutableGraph) SetStrict(strict bool) *MutableGraph {
	g.Strict = strict
	return g
}

// SetCluster sets the cluster flag and returns the graph for method chaining.
func (g *MutableGraph) SetCluster(cluster bool) *MutableGraph {
	g.Cluster = cluster
	return g
}

// Attrs returns the live graph-level attribute set.
func (g *MutableGraph) Attrs() attr.Attributes {
	return g.attrs
}

// MergeAttrs merges attrs into the graph attributes. Keys in attrs win over
// existing keys. The graph is left unchanged if attrs fails validation.
func (g *MutableGraph) MergeAttrs(attrs attr.Attributes) error {
	if err := attrs.Validate(); err != nil {
		return fmt.Errorf("merge graph attributes: %w", err)
	}
	if g.attrs == nil {
		g.attrs = attr.New()
	}
	g.attrs.Add(attrs)
	return nil
}

// AddNode registers a node with the graph. Adding the same node twice is a no-op.
func (g *MutableGraph) AddNode(n *MutableNode) {
	if n == nil {
		return
	}
	if g.seen == nil {
		g.seen = make(map[*MutableNode]struct{})
	}
	if _, ok := g.seen[n]; ok {
		return
	}
	g.seen[n] = struct{}{}
	g.nodes = append(g.nodes, n)
}

// AddSubgraph registers a child graph.
func (g *MutableGraph) AddSubgraph(sub *MutableGraph) {
	if sub == nil {
		return
	}
	g.subgraphs = append(g.subgraphs, sub)
}

// Nodes returns the nodes registered directly with this graph.
func (g *MutableGraph) Nodes() []*MutableNode {
	return slices.Clone(g.nodes)
}

// Subgraphs returns the child graphs.
func (g *MutableGraph) Subgraphs() []*MutableGraph {
	return slices.Clone(g.subgraphs)
}

// Node returns the first registered node with the given label.
func (g *MutableGraph) Node(label Label) (*MutableNode, bool) {
	for _, n := range g.nodes {
		if n.label == label {
			return n, true
		}
	}
	return nil, false
}

// Links returns the links leaving the nodes of this graph, in node order.
// Links of subgraph nodes are not included.
func (g *MutableGraph) Links() []*Link {
	var links []*Link
	for _, n := range g.nodes {
		links = append(links, n.links...)
	}
	return links
}
