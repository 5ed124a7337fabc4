package creation

import (
	"context"

	"github.com/zero-day-ai/graphscope/model"
)

const (
	kindImmutable = "immutable"
	kindMutable   = "mutable"
)

func (s *Stack) instruments() *instruments {
	if s == nil {
		return nil
	}
	return s.instr
}

// ResolveNode returns the snapshot for label in the current frame. The
// first resolution of a label copies the frame's node defaults onto a new
// snapshot and caches it; later resolutions return the cached value.
// Without a frame a fresh snapshot with no attributes is returned.
func (s *Stack) ResolveNode(label model.Label) model.Node {
	ctx := context.Background()
	f, ok := s.Current()
	if !ok {
		s.instruments().nodeResolved(ctx, kindImmutable, false)
		return model.NewNode(label)
	}

	if n, ok := f.nodes[label]; ok {
		s.instr.nodeResolved(ctx, kindImmutable, true)
		return n
	}

	n := model.NewNode(label).With(f.nodeAttrs)
	f.nodes[label] = n
	s.instr.nodeResolved(ctx, kindImmutable, false)
	return n
}

// ResolveMutableNode returns the mutable node for label in the current
// frame. A new node receives a copy of the node defaults and is added to
// the enclosing graph. Every call for the same label in the same frame
// returns the same pointer. Without a frame a fresh, ungrafted node is
// returned.
func (s *Stack) ResolveMutableNode(label model.Label) *model.MutableNode {
	ctx := context.Background()
	f, ok := s.Current()
	if !ok {
		s.instruments().nodeResolved(ctx, kindMutable, false)
		return model.NewMutableNode(label)
	}

	if idx, ok := f.mutIndex[label]; ok {
		s.instr.nodeResolved(ctx, kindMutable, true)
		return f.mutNodes[idx]
	}

	n := model.NewMutableNode(label).Add(f.nodeAttrs)
	if f.graph != nil {
		f.graph.AddNode(n)
	}
	f.mutIndex[label] = len(f.mutNodes)
	f.mutNodes = append(f.mutNodes, n)
	s.instr.nodeResolved(ctx, kindMutable, false)
	return n
}

// ResolveSubgraph creates a graph. If the current frame has an enclosing
// graph the new graph is registered as its child.
func (s *Stack) ResolveSubgraph() *model.MutableGraph {
	g := model.NewMutableGraph()
	if f, ok := s.Current(); ok && f.graph != nil {
		f.graph.AddSubgraph(g)
	}
	return g
}

// ResolveLink creates a new link between from and to, carrying a copy of
// the current frame's link defaults. Links are never cached.
func (s *Stack) ResolveLink(from, to model.Endpoint) *model.Link {
	l := model.NewLink(from, to)
	f, ok := s.Current()
	if ok {
		l.With(f.linkAttrs)
	}
	s.instruments().linkCreated(context.Background(), ok)
	return l
}

// Connect resolves a link from from to to and attaches it to from.
func (s *Stack) Connect(from *model.MutableNode, to model.Endpoint) *model.Link {
	l := s.ResolveLink(from, to)
	from.AddLink(l)
	return l
}
