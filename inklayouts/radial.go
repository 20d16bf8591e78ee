package inklayouts

import (
	"math"

	"github.com/inkwellhq/inkwell/lib/geo"
)

// PositionRadial lays out root's descendants in concentric rings around the
// root's current center.
//
// Two passes. First every node gets an angular span: the root owns the full
// circle and each child takes a slice proportional to its leaf count, in
// sibling order along the rotational sign, its own angle being the bisector
// of its slice. Weighting by leaves rather than direct children keeps a deep
// branch from being cramped next to a shallow one. Then each node is placed
// at radius depth*radiusGap along its bisector.
//
// The full circle is rotated so the first branch's bisector lands on the
// start angle, putting the first child at 12 o'clock.
func PositionRadial(root *Node, cfg LayoutConfig) {
	if len(root.Children) == 0 {
		return
	}
	span := 2 * math.Pi
	if cfg.CounterClockwise {
		span = -span
	}

	start := float64(RADIAL_START_ANGLE)
	firstSpan := span * float64(root.Children[0].LeafCount()) / float64(root.LeafCount())
	start -= firstSpan / 2

	assignAngles(root, start, start+span)
	placeRing(root, root.Obj.Center(), 0, cfg.RadiusGap())
}

// assignAngles hands n the span [start, end) and splits it among n's
// children by leaf weight, consuming it in sibling order. Sibling spans
// partition the parent's span exactly: no gaps, no overlap.
func assignAngles(n *Node, start, end float64) {
	n.angle = (start + end) / 2
	if len(n.Children) == 0 {
		return
	}
	total := float64(n.LeafCount())
	cursor := start
	for _, c := range n.Children {
		share := (end - start) * float64(c.LeafCount()) / total
		assignAngles(c, cursor, cursor+share)
		cursor += share
	}
}

func placeRing(n *Node, center *geo.Point, depth int, radiusGap float64) {
	if depth > 0 {
		radius := float64(depth) * radiusGap
		n.Obj.MoveCenterTo(geo.NewPoint(
			geo.TruncateDecimals(center.X+radius*math.Cos(n.angle)),
			geo.TruncateDecimals(center.Y+radius*math.Sin(n.angle)),
		))
	}
	for _, c := range n.Children {
		placeRing(c, center, depth+1, radiusGap)
	}
}
