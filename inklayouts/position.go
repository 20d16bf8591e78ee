package inklayouts

import (
	"github.com/inkwellhq/inkwell/lib/geo"
)

// PositionDirectional lays out root's descendants along one axis-aligned
// direction. The root itself is never moved: callers pin it (or leave it at
// its current position) and everything else is placed relative to it.
//
// Children occupy a contiguous run on the perpendicular axis, each centered
// within its own subtree extent, with the whole run centered on the parent's
// perpendicular center. On the growth axis each child sits one level gap away
// from the parent's far face.
func PositionDirectional(root *Node, dir Direction, cfg LayoutConfig) {
	positionChildren(root, dir, cfg.LevelGap(), cfg.SiblingGap())
}

func positionChildren(n *Node, dir Direction, levelGap, siblingGap float64) {
	if len(n.Children) == 0 {
		return
	}
	vertical := dir.IsVertical()

	run := siblingGap * float64(len(n.Children)-1)
	for _, c := range n.Children {
		perp, _ := c.Extents(siblingGap, vertical)
		run += perp
	}

	center := n.Obj.Center()
	cursor := center.Y - run/2
	if vertical {
		cursor = center.X - run/2
	}

	for _, c := range n.Children {
		perp, _ := c.Extents(siblingGap, vertical)
		childCenter := cursor + perp/2

		var tl *geo.Point
		switch dir {
		case DirectionRight:
			tl = geo.NewPoint(n.Obj.TopLeft.X+n.Obj.Width+levelGap, childCenter-c.Obj.Height/2)
		case DirectionLeft:
			tl = geo.NewPoint(n.Obj.TopLeft.X-levelGap-c.Obj.Width, childCenter-c.Obj.Height/2)
		case DirectionDown:
			tl = geo.NewPoint(childCenter-c.Obj.Width/2, n.Obj.TopLeft.Y+n.Obj.Height+levelGap)
		case DirectionUp:
			tl = geo.NewPoint(childCenter-c.Obj.Width/2, n.Obj.TopLeft.Y-levelGap-c.Obj.Height)
		}
		c.Obj.TopLeft = tl

		cursor += perp + siblingGap
		positionChildren(c, dir, levelGap, siblingGap)
	}
}
