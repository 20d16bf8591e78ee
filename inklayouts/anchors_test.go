package inklayouts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/inkwell/inkgraph"
)

func TestFixAnchorsRight(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", 0, 0, 100, 40)
	a := withOrder(addObj(g, "a", 0, 0, 100, 40), 0)
	a1 := withOrder(addObj(g, "a1", 0, 0, 100, 40), 0)
	b := withOrder(addObj(g, "b", 0, 0, 100, 40), 1)
	g.Connect(root, a)
	g.Connect(a, a1)
	g.Connect(root, b)

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	PositionDirectional(n, DirectionRight, LayoutConfig{})
	FixAnchors(g, n, DirectionRight)

	// every edge in the subtree leaves right and enters left, at every level
	for _, e := range g.Edges {
		assert.Equal(t, inkgraph.PortRight, e.SrcPort, e.Src.ID)
		assert.Equal(t, inkgraph.PortLeft, e.DstPort, e.Dst.ID)
		assert.Len(t, e.Route, 2)
		assert.True(t, e.Route[0].Equals(e.Src.PortPoint(inkgraph.PortRight)))
		assert.True(t, e.Route[1].Equals(e.Dst.PortPoint(inkgraph.PortLeft)))
	}
}

func TestFixAnchorsDown(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", 0, 0, 100, 40)
	a := addObj(g, "a", 0, 0, 100, 40)
	g.Connect(root, a)

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	PositionDirectional(n, DirectionDown, LayoutConfig{})
	FixAnchors(g, n, DirectionDown)

	assert.Equal(t, inkgraph.PortBottom, g.Edges[0].SrcPort)
	assert.Equal(t, inkgraph.PortTop, g.Edges[0].DstPort)
}

// radial anchoring picks the dominant axis between child and parent centers
func TestFixAnchorsRadial(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", -50, -20, 100, 40)
	above := withOrder(addObj(g, "above", -30, -300, 60, 30), 0)
	right := withOrder(addObj(g, "right", 250, -15, 60, 30), 1)
	below := withOrder(addObj(g, "below", -30, 270, 60, 30), 2)
	left := withOrder(addObj(g, "left", -310, -15, 60, 30), 3)
	for _, c := range []*inkgraph.Object{above, right, below, left} {
		g.Connect(root, c)
	}

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	FixAnchors(g, n, DirectionRadial)

	assert.Equal(t, inkgraph.PortTop, g.EdgeBetween(root, above).SrcPort)
	assert.Equal(t, inkgraph.PortBottom, g.EdgeBetween(root, above).DstPort)
	assert.Equal(t, inkgraph.PortRight, g.EdgeBetween(root, right).SrcPort)
	assert.Equal(t, inkgraph.PortBottom, g.EdgeBetween(root, below).SrcPort)
	assert.Equal(t, inkgraph.PortLeft, g.EdgeBetween(root, left).SrcPort)
}

// both-sided anchoring only consults the horizontal delta to the layout root,
// including for grandchildren
func TestFixAnchorsBoth(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", -50, -20, 100, 40)
	r := withOrder(addObj(g, "r", 250, 0, 60, 30), 0)
	l := withOrder(addObj(g, "l", -310, 0, 60, 30), 1)
	// grandchild on the left side sits below its parent, the vertical delta
	// must be ignored
	l1 := addObj(g, "l1", -310, 400, 60, 30)
	g.Connect(root, r)
	g.Connect(root, l)
	g.Connect(l, l1)

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	FixAnchors(g, n, DirectionBoth)

	assert.Equal(t, inkgraph.PortRight, g.EdgeBetween(root, r).SrcPort)
	assert.Equal(t, inkgraph.PortLeft, g.EdgeBetween(root, l).SrcPort)
	assert.Equal(t, inkgraph.PortLeft, g.EdgeBetween(l, l1).SrcPort)
	assert.Equal(t, inkgraph.PortRight, g.EdgeBetween(l, l1).DstPort)
}

func TestFixAnchorsLeafNoop(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", 0, 0, 100, 40)

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	FixAnchors(g, n, DirectionRight)
	assert.Empty(t, g.Edges)
}
