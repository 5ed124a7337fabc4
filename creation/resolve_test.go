package creation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-day-ai/graphscope/attr"
	"github.com/zero-day-ai/graphscope/model"
)

func TestResolveNode_Deduplicates(t *testing.T) {
	s := newTestStack(t)
	f, err := s.Begin(nil)
	require.NoError(t, err)
	f.NodeAttrs().Set("color", "red")

	first := s.ResolveNode("a")
	second := s.ResolveNode("a")

	assert.True(t, first.Equal(second))
	cached, ok := f.CachedNode("a")
	require.True(t, ok)
	assert.True(t, cached.Equal(first))

	other := s.ResolveNode("b")
	assert.False(t, other.Equal(first))
}

func TestResolveNode_DefaultsCapturedAtFirstResolution(t *testing.T) {
	s := newTestStack(t)
	f, err := s.Begin(nil)
	require.NoError(t, err)

	f.NodeAttrs().Set("color", "red")
	first := s.ResolveNode("a")

	f.NodeAttrs().Set("color", "blue").Set("shape", "box")
	again := s.ResolveNode("a")
	late := s.ResolveNode("b")

	assert.Equal(t, attr.New("color", "red"), first.Attrs())
	assert.Equal(t, attr.New("color", "red"), again.Attrs(), "cached snapshot keeps the defaults of its first resolution")
	assert.Equal(t, attr.New("color", "blue", "shape", "box"), late.Attrs(), "defaults set before the first resolution apply")
}

func TestResolveNode_FreshAfterScopeChange(t *testing.T) {
	s := newTestStack(t)

	f, err := s.Begin(nil)
	require.NoError(t, err)
	f.NodeAttrs().Set("color", "red")
	inFirst := s.ResolveNode("a")
	require.NoError(t, s.End())

	_, err = s.Begin(nil)
	require.NoError(t, err)
	inSecond := s.ResolveNode("a")

	assert.False(t, inFirst.Equal(inSecond))
	assert.Equal(t, 0, inSecond.Attrs().Len())
}

func TestResolveNode_WithoutScope(t *testing.T) {
	s := newTestStack(t)

	first := s.ResolveNode("a")
	second := s.ResolveNode("a")

	assert.True(t, first.Equal(second), "equal by value")
	assert.Equal(t, model.Label("a"), first.Label())
	assert.Equal(t, 0, first.Attrs().Len(), "no inherited attributes")

	var nilStack *Stack
	assert.Equal(t, model.Label("x"), nilStack.ResolveNode("x").Label())
}

func TestResolveMutableNode_SameInstance(t *testing.T) {
	s := newTestStack(t)
	g := model.NewMutableGraph()
	f, err := s.Begin(g)
	require.NoError(t, err)
	f.NodeAttrs().Set("shape", "box")

	a := s.ResolveMutableNode("a")
	again := s.ResolveMutableNode("a")
	b := s.ResolveMutableNode("b")

	assert.Same(t, a, again)
	assert.NotSame(t, a, b)

	a.Attrs().Set("color", "green")
	assert.Equal(t, "green", again.Attrs()["color"], "mutations are visible to all holders")

	assert.Equal(t, []*model.MutableNode{a, b}, g.Nodes(), "new nodes are added to the enclosing graph once")
	assert.Equal(t, []*model.MutableNode{a, b}, f.MutableNodes())
	assert.Equal(t, "box", a.Attrs()["shape"])
}

func TestResolveMutableNode_DefaultsCopied(t *testing.T) {
	s := newTestStack(t)
	f, err := s.Begin(nil)
	require.NoError(t, err)
	f.NodeAttrs().Set("color", "red")

	a := s.ResolveMutableNode("a")
	a.Attrs().Set("color", "blue")
	f.NodeAttrs().Set("style", "bold")

	assert.Equal(t, "red", f.NodeAttrs()["color"], "node changes do not write back to the defaults")
	_, ok := a.Attrs()["style"]
	assert.False(t, ok, "later defaults do not reach existing nodes")
}

func TestResolveMutableNode_FreshAfterScopeChange(t *testing.T) {
	s := newTestStack(t)

	_, err := s.Begin(nil)
	require.NoError(t, err)
	first := s.ResolveMutableNode("a")
	require.NoError(t, s.End())

	_, err = s.Begin(nil)
	require.NoError(t, err)
	second := s.ResolveMutableNode("a")

	assert.NotSame(t, first, second)
}

func TestResolveMutableNode_NestedFramesKeepSeparateCaches(t *testing.T) {
	s := newTestStack(t)
	g := model.NewMutableGraph()

	_, err := s.Begin(g)
	require.NoError(t, err)
	outer := s.ResolveMutableNode("a")

	_, err = s.Begin(g)
	require.NoError(t, err)
	inner := s.ResolveMutableNode("a")
	require.NoError(t, s.End())

	assert.NotSame(t, outer, inner)
	assert.Same(t, outer, s.ResolveMutableNode("a"), "the outer cache is intact after the inner frame closes")
	assert.Len(t, g.Nodes(), 2)
}

func TestResolveMutableNode_WithoutScope(t *testing.T) {
	s := newTestStack(t)

	first := s.ResolveMutableNode("a")
	second := s.ResolveMutableNode("a")

	assert.NotSame(t, first, second)
	assert.Equal(t, 0, first.Attrs().Len())
}

func TestResolveSubgraph(t *testing.T) {
	t.Run("registered with enclosing graph", func(t *testing.T) {
		s := newTestStack(t)
		g := model.NewMutableGraph()
		_, err := s.Begin(g)
		require.NoError(t, err)

		sub := s.ResolveSubgraph()
		other := s.ResolveSubgraph()

		assert.NotSame(t, sub, other)
		assert.Equal(t, []*model.MutableGraph{sub, other}, g.Subgraphs())
	})

	t.Run("detached scope", func(t *testing.T) {
		s := newTestStack(t)
		_, err := s.Begin(nil)
		require.NoError(t, err)

		sub := s.ResolveSubgraph()
		require.NotNil(t, sub)
		assert.Empty(t, sub.Nodes())
	})

	t.Run("no scope", func(t *testing.T) {
		s := newTestStack(t)
		assert.NotNil(t, s.ResolveSubgraph())
	})

	t.Run("subgraph as enclosing graph of a nested scope", func(t *testing.T) {
		s := newTestStack(t)
		root := model.NewMutableGraph()
		_, err := s.Begin(root)
		require.NoError(t, err)

		sub := s.ResolveSubgraph().SetCluster(true)
		f, err := s.Begin(sub)
		require.NoError(t, err)
		f.GraphAttrs().Set("label", "cluster")
		n := s.ResolveMutableNode("inner")
		require.NoError(t, s.End())

		assert.Equal(t, []*model.MutableNode{n}, sub.Nodes())
		assert.Empty(t, root.Nodes())
		assert.Equal(t, "cluster", sub.Attrs()["label"])
		_, ok := root.Attrs()["label"]
		assert.False(t, ok)
	})
}

func TestResolveLink(t *testing.T) {
	s := newTestStack(t)
	f, err := s.Begin(nil)
	require.NoError(t, err)
	f.LinkAttrs().Set("color", "gray")

	a, b := s.ResolveNode("a"), s.ResolveNode("b")
	first := s.ResolveLink(a, b)
	second := s.ResolveLink(a, b)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID, second.ID, "links are never deduplicated")
	assert.Equal(t, attr.New("color", "gray"), first.Attrs)

	first.Attrs.Set("color", "red")
	assert.Equal(t, "gray", f.LinkAttrs()["color"])
	assert.Equal(t, "gray", second.Attrs["color"])
}

func TestResolveLink_WithoutScope(t *testing.T) {
	var s *Stack
	l := s.ResolveLink(model.NewNode("a"), model.NewNode("b"))

	assert.Equal(t, 0, l.Attrs.Len())
	assert.Equal(t, "a -> b", l.String())
}

func TestConnect(t *testing.T) {
	s := newTestStack(t)
	g := model.NewMutableGraph()
	f, err := s.Begin(g)
	require.NoError(t, err)
	f.LinkAttrs().Set("style", "dashed")

	a := s.ResolveMutableNode("a")
	b := s.ResolveMutableNode("b")
	l := s.Connect(a, b)

	require.Len(t, a.Links(), 1)
	assert.Same(t, l, a.Links()[0])
	assert.Same(t, b, l.To)
	assert.Equal(t, "dashed", l.Attrs["style"])
	assert.Equal(t, []*model.Link{l}, g.Links())
}

func TestResolveMutableNode_LabelMatchesCacheKey(t *testing.T) {
	s := newTestStack(t)
	g := model.NewMutableGraph()
	_, err := s.Begin(g)
	require.NoError(t, err)

	a := s.ResolveMutableNode("a")
	a.Attrs().Set("color", "red")

	again := s.ResolveMutableNode("a")
	assert.Same(t, a, again)
	assert.Equal(t, model.Label("a"), again.Label())

	found, ok := g.Node("a")
	require.True(t, ok)
	assert.Same(t, a, found)
}
