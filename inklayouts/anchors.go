package inklayouts

import (
	"math"

	"github.com/inkwellhq/inkwell/inkgraph"
)

// FixAnchors pins every edge in the hierarchy under root to fixed ports so
// edges leave and enter the faces the layout direction implies, then rebuilds
// each route. Axis directions use a fixed port pair (right: source right,
// target left). Radial picks the dominant axis between child and parent
// centers. Both only looks at the horizontal delta between child and root
// centers, since each balanced branch grows purely horizontally.
func FixAnchors(g *inkgraph.Graph, root *Node, dir Direction) {
	fixAnchors(g, root, root, dir)
}

func fixAnchors(g *inkgraph.Graph, root, n *Node, dir Direction) {
	for _, c := range n.Children {
		e := g.EdgeBetween(n.Obj, c.Obj)
		if e != nil {
			e.SetPorts(srcPort(root, n, c, dir))
		}
		fixAnchors(g, root, c, dir)
	}
}

func srcPort(root, parent, child *Node, dir Direction) (inkgraph.Port, inkgraph.Port) {
	var src inkgraph.Port
	switch dir {
	case DirectionRight:
		src = inkgraph.PortRight
	case DirectionLeft:
		src = inkgraph.PortLeft
	case DirectionDown:
		src = inkgraph.PortBottom
	case DirectionUp:
		src = inkgraph.PortTop
	case DirectionBoth:
		if child.Obj.Center().X >= root.Obj.Center().X {
			src = inkgraph.PortRight
		} else {
			src = inkgraph.PortLeft
		}
	case DirectionRadial:
		pc := parent.Obj.Center()
		cc := child.Obj.Center()
		dx, dy := cc.X-pc.X, cc.Y-pc.Y
		switch {
		case math.Abs(dx) >= math.Abs(dy) && dx >= 0:
			src = inkgraph.PortRight
		case math.Abs(dx) >= math.Abs(dy):
			src = inkgraph.PortLeft
		case dy >= 0:
			src = inkgraph.PortBottom
		default:
			src = inkgraph.PortTop
		}
	default:
		src = inkgraph.PortRight
	}
	return src, src.Opposite()
}
