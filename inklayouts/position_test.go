package inklayouts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/inkwell/inkgraph"
	"github.com/inkwellhq/inkwell/lib/geo"
)

// root + 2 equal children growing right with standard gaps: both children one
// level gap past the root's right face, vertically symmetric about the root's
// center, separated by height + sibling gap.
func TestPositionTwoChildrenRight(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", 0, 0, 100, 40)
	c1 := withOrder(addObj(g, "c1", 0, 0, 100, 40), 0)
	c2 := withOrder(addObj(g, "c2", 0, 0, 100, 40), 1)
	g.Connect(root, c1)
	g.Connect(root, c2)

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	PositionDirectional(n, DirectionRight, LayoutConfig{})

	assert.Equal(t, 240., c1.TopLeft.X)
	assert.Equal(t, 240., c2.TopLeft.X)

	rootCenterY := root.Center().Y
	assert.Equal(t, rootCenterY-c1.Center().Y, c2.Center().Y-rootCenterY)
	assert.Equal(t, 40.+50, c2.Center().Y-c1.Center().Y)
}

func TestPositionDown(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", 0, 0, 100, 40)
	c1 := withOrder(addObj(g, "c1", 0, 0, 80, 40), 0)
	c2 := withOrder(addObj(g, "c2", 0, 0, 80, 40), 1)
	g.Connect(root, c1)
	g.Connect(root, c2)

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	PositionDirectional(n, DirectionDown, LayoutConfig{})

	assert.Equal(t, 180., c1.TopLeft.Y)
	assert.Equal(t, 180., c2.TopLeft.Y)
	assert.Equal(t, root.Center().X-c1.Center().X, c2.Center().X-root.Center().X)
	assert.Equal(t, 80.+50, c2.Center().X-c1.Center().X)
}

// laying out the same tree right then left mirrors x about the root's center
// and leaves y untouched
func TestPositionMirror(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", 0, 0, 100, 40)
	a := withOrder(addObj(g, "a", 0, 0, 120, 40), 0)
	a1 := withOrder(addObj(g, "a1", 0, 0, 60, 30), 0)
	a2 := withOrder(addObj(g, "a2", 0, 0, 60, 30), 1)
	b := withOrder(addObj(g, "b", 0, 0, 80, 60), 1)
	g.Connect(root, a)
	g.Connect(a, a1)
	g.Connect(a, a2)
	g.Connect(root, b)

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)

	PositionDirectional(n, DirectionRight, LayoutConfig{})
	rightCenters := map[string]*geo.Point{}
	for _, o := range g.Objects {
		rightCenters[o.ID] = o.Center()
	}

	PositionDirectional(n, DirectionLeft, LayoutConfig{})
	rootX := root.Center().X
	for _, o := range g.Objects {
		right := rightCenters[o.ID]
		left := o.Center()
		assert.InDelta(t, right.X-rootX, rootX-left.X, 1e-9, o.ID)
		assert.Equal(t, right.Y, left.Y, o.ID)
	}
}

func TestPositionParentCenteredOverDeepSubtree(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", 0, 0, 100, 40)
	a := withOrder(addObj(g, "a", 0, 0, 100, 40), 0)
	b := withOrder(addObj(g, "b", 0, 0, 100, 40), 1)
	b1 := withOrder(addObj(g, "b1", 0, 0, 100, 40), 0)
	b2 := withOrder(addObj(g, "b2", 0, 0, 100, 40), 1)
	b3 := withOrder(addObj(g, "b3", 0, 0, 100, 40), 2)
	g.Connect(root, a)
	g.Connect(root, b)
	g.Connect(b, b1)
	g.Connect(b, b2)
	g.Connect(b, b3)

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	PositionDirectional(n, DirectionRight, LayoutConfig{})

	// b is centered within its own 3-child extent
	assert.Equal(t, b.Center().Y, b2.Center().Y)
	assert.Equal(t, b1.Center().Y+b3.Center().Y, 2*b.Center().Y)
	// the a+b run is centered on the root
	assert.InDelta(t, root.Center().Y, (a.Center().Y+b.Center().Y)/2, 1e-9)
}

func TestPositionIdempotent(t *testing.T) {
	g := inkgraph.NewGraph()
	root := addObj(g, "root", 10, 20, 100, 40)
	a := withOrder(addObj(g, "a", 0, 0, 100, 40), 0)
	b := withOrder(addObj(g, "b", 0, 0, 100, 40), 1)
	g.Connect(root, a)
	g.Connect(root, b)

	for run := 0; run < 2; run++ {
		n, err := BuildTree(g, root, LayoutConfig{})
		assert.NoError(t, err)
		PositionDirectional(n, DirectionRight, LayoutConfig{})
	}

	assert.True(t, root.TopLeft.Equals(geo.NewPoint(10, 20)))
	first := map[string]*geo.Point{}
	for _, o := range g.Objects {
		first[o.ID] = o.TopLeft.Copy()
	}

	n, err := BuildTree(g, root, LayoutConfig{})
	assert.NoError(t, err)
	PositionDirectional(n, DirectionRight, LayoutConfig{})
	for _, o := range g.Objects {
		assert.True(t, o.TopLeft.Equals(first[o.ID]), o.ID)
	}
}

func TestCompactGaps(t *testing.T) {
	standard := LayoutConfig{}
	compact := LayoutConfig{SpacingMode: SpacingCompact}
	assert.Equal(t, 140., standard.LevelGap())
	assert.Equal(t, 50., standard.SiblingGap())
	assert.Equal(t, 98., compact.LevelGap())
	assert.Equal(t, 35., compact.SiblingGap())
	assert.Less(t, compact.RadiusGap(), standard.RadiusGap())
}
