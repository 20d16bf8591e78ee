package inkgraph

import (
	"encoding/json"
	"fmt"

	"github.com/inkwellhq/inkwell/lib/geo"
)

// The serialized form keeps edge endpoints as object IDs so a graph can round
// trip through JSON without pointer identity.

type SerializedGraph struct {
	Objects []SerializedObject `json:"objects"`
	Edges   []SerializedEdge   `json:"edges"`
}

type SerializedObject struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Label     string `json:"label,omitempty"`
	Order     *int   `json:"order,omitempty"`
	Level     int    `json:"level,omitempty"`
	Date      string `json:"date,omitempty"`
	Collapsed bool   `json:"collapsed,omitempty"`
	Visible   *bool  `json:"visible,omitempty"`
}

type SerializedEdge struct {
	ID      string `json:"id"`
	Src     string `json:"src"`
	Dst     string `json:"dst"`
	SrcPort Port   `json:"srcPort,omitempty"`
	DstPort Port   `json:"dstPort,omitempty"`
}

func SerializeGraph(g *Graph) ([]byte, error) {
	sg := SerializedGraph{}
	for _, o := range g.Objects {
		so := SerializedObject{
			ID:        o.ID,
			Label:     o.Label,
			Order:     o.Order,
			Level:     o.Level,
			Date:      o.Date,
			Collapsed: o.Collapsed,
		}
		if !o.Visible {
			visible := false
			so.Visible = &visible
		}
		if o.Box != nil {
			so.X = o.TopLeft.X
			so.Y = o.TopLeft.Y
			so.Width = o.Width
			so.Height = o.Height
		}
		sg.Objects = append(sg.Objects, so)
	}
	for _, e := range g.Edges {
		se := SerializedEdge{
			ID:      e.ID,
			SrcPort: e.SrcPort,
			DstPort: e.DstPort,
		}
		if e.Src != nil {
			se.Src = e.Src.ID
		}
		if e.Dst != nil {
			se.Dst = e.Dst.ID
		}
		sg.Edges = append(sg.Edges, se)
	}
	return json.Marshal(sg)
}

func DeserializeGraph(b []byte, g *Graph) error {
	var sg SerializedGraph
	if err := json.Unmarshal(b, &sg); err != nil {
		return err
	}

	idToObj := make(map[string]*Object, len(sg.Objects))
	for _, so := range sg.Objects {
		if _, exists := idToObj[so.ID]; exists {
			return fmt.Errorf("inkgraph: duplicate object id %q", so.ID)
		}
		o := &Object{
			ID:        so.ID,
			Box:       geo.NewBox(geo.NewPoint(so.X, so.Y), so.Width, so.Height),
			Label:     so.Label,
			Order:     so.Order,
			Level:     so.Level,
			Date:      so.Date,
			Collapsed: so.Collapsed,
			Visible:   so.Visible == nil || *so.Visible,
		}
		idToObj[so.ID] = o
		g.Objects = append(g.Objects, o)
	}

	for _, se := range sg.Edges {
		src, ok := idToObj[se.Src]
		if !ok {
			return fmt.Errorf("inkgraph: edge %q references unknown object %q", se.ID, se.Src)
		}
		dst, ok := idToObj[se.Dst]
		if !ok {
			return fmt.Errorf("inkgraph: edge %q references unknown object %q", se.ID, se.Dst)
		}
		e := &Edge{
			ID:  se.ID,
			Src: src,
			Dst: dst,
		}
		if se.SrcPort != PortNone && se.DstPort != PortNone {
			e.SetPorts(se.SrcPort, se.DstPort)
		}
		g.Edges = append(g.Edges, e)
	}

	return nil
}
