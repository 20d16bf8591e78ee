// Package inkfishbone lays out Ishikawa (fishbone) root-cause diagrams: one
// effect node at the head of a horizontal spine, causes branching off the
// spine alternately above and below, sub-causes stacked along each branch.
//
// Edge direction is inverted relative to the other topologies: causes point
// AT the effect (cause -> effect), so the walk follows incoming edges.
package inkfishbone

import (
	"context"

	"cdr.dev/slog"

	"github.com/inkwellhq/inkwell/inkgraph"
	"github.com/inkwellhq/inkwell/inklayouts"
	"github.com/inkwellhq/inkwell/lib/geo"
	"github.com/inkwellhq/inkwell/lib/log"
)

const (
	// spacing of cause branches along the spine
	CAUSE_X_STEP = 180.
	// distance of a cause from the spine
	BRANCH_OFFSET = 120.
	// stacking distance between sub-causes on one branch
	SUBCAUSE_STEP = 60.
)

// Layout places the effect's causes along the spine through the effect's
// center. The effect keeps its current position. A nil effect falls back to
// the unique node with no outgoing edges, else the first node.
func Layout(ctx context.Context, g *inkgraph.Graph, effect *inkgraph.Object, cfg inklayouts.LayoutConfig) error {
	if len(g.Objects) == 0 {
		return nil
	}
	if effect == nil {
		effect = findEffect(g)
	}
	log.Debug(ctx, "fishbone layout", slog.F("effect", effect.ID))

	head := effect.Center()

	var causes []*inkgraph.Object
	for _, e := range g.Incoming(effect) {
		causes = append(causes, e.Src)
	}
	inklayouts.SortSiblings(causes, cfg)

	for i, cause := range causes {
		// branch columns march left from the effect, alternating above and
		// below the spine by original order index
		column := float64(i/2 + 1)
		side := 1.
		if i%2 == 0 {
			side = -1.
		}

		cx := head.X - effect.Width/2 - column*CAUSE_X_STEP
		cy := head.Y + side*BRANCH_OFFSET
		cause.MoveCenterTo(geo.NewPoint(cx, cy))

		var subs []*inkgraph.Object
		for _, e := range g.Incoming(cause) {
			subs = append(subs, e.Src)
		}
		inklayouts.SortSiblings(subs, cfg)
		for j, sub := range subs {
			// stacked away from the spine, following the branch's side
			sub.MoveCenterTo(geo.NewPoint(cx, cy+side*float64(j+1)*SUBCAUSE_STEP))
		}

		// keep the spine visually coherent
		if e := g.EdgeBetween(cause, effect); e != nil {
			e.SetPorts(inkgraph.PortRight, inkgraph.PortLeft)
		}
	}
	return nil
}

func findEffect(g *inkgraph.Graph) *inkgraph.Object {
	var sink *inkgraph.Object
	sinks := 0
	for _, o := range g.Objects {
		if len(g.Outgoing(o)) == 0 {
			sinks++
			if sink == nil {
				sink = o
			}
		}
	}
	if sinks == 1 {
		return sink
	}
	return g.Objects[0]
}
