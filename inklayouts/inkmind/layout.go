// Package inkmind lays out mindmaps. One entry point covers the whole
// family: single-sided directional maps, dual-sided balanced maps, and
// radial maps, each followed by anchor fixing so edges stay attached to the
// faces the chosen direction implies.
package inkmind

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"github.com/inkwellhq/inkwell/inkgraph"
	"github.com/inkwellhq/inkwell/inklayouts"
	"github.com/inkwellhq/inkwell/lib/log"
)

// Layout positions every node reachable from root, then pins edge ports.
// The root keeps its current position. A nil root falls back to the graph's
// root heuristic.
func Layout(ctx context.Context, g *inkgraph.Graph, dir inklayouts.Direction, root *inkgraph.Object, cfg inklayouts.LayoutConfig) error {
	if len(g.Objects) == 0 {
		return nil
	}
	if root == nil {
		root = g.Root()
	}
	log.Debug(ctx, "mindmap layout", slog.F("root", root.ID), slog.F("direction", dir))

	t, err := inklayouts.BuildTree(g, root, cfg)
	if err != nil {
		return err
	}

	switch dir {
	case inklayouts.DirectionRight, inklayouts.DirectionLeft, inklayouts.DirectionDown, inklayouts.DirectionUp:
		inklayouts.PositionDirectional(t, dir, cfg)
	case inklayouts.DirectionBoth:
		positionBalanced(t, cfg)
	case inklayouts.DirectionRadial:
		inklayouts.PositionRadial(t, cfg)
	default:
		return fmt.Errorf("inkmind: unsupported direction %q", dir)
	}

	inklayouts.FixAnchors(g, t, dir)
	return nil
}

// positionBalanced grows branches out of both sides of the root. Children
// alternate sides by index parity rather than by subtree size: when sibling
// order reflects creation or priority order, alternation interleaves branch
// importance evenly between the sides. Even indices go right, odd go left.
func positionBalanced(t *inklayouts.Node, cfg inklayouts.LayoutConfig) {
	var right, left []*inklayouts.Node
	for i, c := range t.Children {
		if i%2 == 0 {
			right = append(right, c)
		} else {
			left = append(left, c)
		}
	}

	// children placement must never move the root
	origin := t.Obj.TopLeft.Copy()
	inklayouts.PositionDirectional(inklayouts.NewNode(t.Obj, right), inklayouts.DirectionRight, cfg)
	inklayouts.PositionDirectional(inklayouts.NewNode(t.Obj, left), inklayouts.DirectionLeft, cfg)
	t.Obj.TopLeft = origin
}
