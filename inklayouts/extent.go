package inklayouts

import "math"

// Extents reports the bounding footprint of a subtree. perp spans the sibling
// axis: the sum of the children's perp extents plus gap between each pair,
// floored by the node's own size. par runs along the growth axis: the node's
// own size plus the deepest child par. For a leaf both are the node's size.
//
// axisIsVertical is true when the growth axis is vertical (down/up layouts),
// making the perpendicular axis horizontal.
func (n *Node) Extents(gap float64, axisIsVertical bool) (perp, par float64) {
	ownPerp, ownPar := n.Obj.Height, n.Obj.Width
	if axisIsVertical {
		ownPerp, ownPar = n.Obj.Width, n.Obj.Height
	}
	if len(n.Children) == 0 {
		return ownPerp, ownPar
	}

	childrenPerp := gap * float64(len(n.Children)-1)
	maxPar := 0.
	for _, c := range n.Children {
		p, q := c.Extents(gap, axisIsVertical)
		childrenPerp += p
		maxPar = math.Max(maxPar, q)
	}
	return math.Max(ownPerp, childrenPerp), ownPar + maxPar
}
