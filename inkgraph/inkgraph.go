package inkgraph

import (
	"context"

	"github.com/google/uuid"

	"github.com/inkwellhq/inkwell/lib/geo"
)

// Graph holds the live node/edge set of one board. Layout engines read
// connectivity through Outgoing/Incoming and write back only through node
// positions and edge ports.
type Graph struct {
	Objects []*Object `json:"objects"`
	Edges   []*Edge   `json:"edges"`
}

func NewGraph() *Graph {
	return &Graph{}
}

type LayoutGraph func(context.Context, *Graph) error

type Object struct {
	ID string `json:"id"`

	*geo.Box `json:"box,omitempty"`

	Label string `json:"label,omitempty"`

	// Order is the explicit sibling order, when the editor assigned one.
	Order *int `json:"order,omitempty"`
	// Level is the depth from the layout root, informational only.
	Level int `json:"level,omitempty"`
	// Date is an ISO date string, consumed only by the timeline layout.
	Date string `json:"date,omitempty"`

	Collapsed bool `json:"collapsed,omitempty"`
	Visible   bool `json:"visible,omitempty"`
}

type Port string

const (
	PortNone   Port = ""
	PortLeft   Port = "left"
	PortRight  Port = "right"
	PortTop    Port = "top"
	PortBottom Port = "bottom"
)

func (p Port) Opposite() Port {
	switch p {
	case PortLeft:
		return PortRight
	case PortRight:
		return PortLeft
	case PortTop:
		return PortBottom
	case PortBottom:
		return PortTop
	}
	return PortNone
}

// PortPoint is the midpoint of the object's face named by p.
func (o *Object) PortPoint(p Port) *geo.Point {
	tl := o.TopLeft
	switch p {
	case PortLeft:
		return geo.NewPoint(tl.X, tl.Y+o.Height/2)
	case PortRight:
		return geo.NewPoint(tl.X+o.Width, tl.Y+o.Height/2)
	case PortTop:
		return geo.NewPoint(tl.X+o.Width/2, tl.Y)
	case PortBottom:
		return geo.NewPoint(tl.X+o.Width/2, tl.Y+o.Height)
	}
	return o.Center()
}

type Edge struct {
	ID string `json:"id"`

	Src *Object `json:"-"`
	Dst *Object `json:"-"`

	SrcPort Port `json:"srcPort,omitempty"`
	DstPort Port `json:"dstPort,omitempty"`

	Route []*geo.Point `json:"route,omitempty"`
}

// SetPorts pins both endpoints to fixed faces and rebuilds the route so
// renderers always see a path consistent with the new anchors.
func (e *Edge) SetPorts(src, dst Port) {
	e.SrcPort = src
	e.DstPort = dst
	e.Route = nil
	if e.Src != nil && e.Src.Box != nil && e.Dst != nil && e.Dst.Box != nil {
		e.Route = []*geo.Point{
			e.Src.PortPoint(src),
			e.Dst.PortPoint(dst),
		}
	}
}

func (g *Graph) Get(id string) *Object {
	for _, o := range g.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (g *Graph) Outgoing(o *Object) []*Edge {
	var out []*Edge
	for _, e := range g.Edges {
		if e.Src == o {
			out = append(out, e)
		}
	}
	return out
}

func (g *Graph) Incoming(o *Object) []*Edge {
	var in []*Edge
	for _, e := range g.Edges {
		if e.Dst == o {
			in = append(in, e)
		}
	}
	return in
}

// EdgeBetween returns the first edge from src to dst, if any.
func (g *Graph) EdgeBetween(src, dst *Object) *Edge {
	for _, e := range g.Edges {
		if e.Src == src && e.Dst == dst {
			return e
		}
	}
	return nil
}

// Connect appends a new edge from src to dst.
func (g *Graph) Connect(src, dst *Object) *Edge {
	e := &Edge{
		ID:  uuid.NewString(),
		Src: src,
		Dst: dst,
	}
	g.Edges = append(g.Edges, e)
	return e
}

// Root picks a layout root when the caller didn't name one: the first object
// with no incoming edge, else the first object. When several objects qualify
// the choice follows Objects order, so it is only as stable as that order.
func (g *Graph) Root() *Object {
	for _, o := range g.Objects {
		if len(g.Incoming(o)) == 0 {
			return o
		}
	}
	if len(g.Objects) > 0 {
		return g.Objects[0]
	}
	return nil
}
