// Package inktree lays out a hierarchy along one axis-aligned direction,
// the classic flowchart/org-chart arrangement.
package inktree

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"github.com/inkwellhq/inkwell/inkgraph"
	"github.com/inkwellhq/inkwell/inklayouts"
	"github.com/inkwellhq/inkwell/lib/log"
)

// Layout positions every node reachable from root. The root keeps its
// current position and acts as the origin. A nil root falls back to the
// graph's root heuristic.
func Layout(ctx context.Context, g *inkgraph.Graph, dir inklayouts.Direction, root *inkgraph.Object, cfg inklayouts.LayoutConfig) error {
	if len(g.Objects) == 0 {
		return nil
	}
	switch dir {
	case inklayouts.DirectionRight, inklayouts.DirectionLeft, inklayouts.DirectionDown, inklayouts.DirectionUp:
	default:
		return fmt.Errorf("inktree: unsupported direction %q", dir)
	}
	if root == nil {
		root = g.Root()
	}
	log.Debug(ctx, "tree layout", slog.F("root", root.ID), slog.F("direction", dir))

	t, err := inklayouts.BuildTree(g, root, cfg)
	if err != nil {
		return err
	}
	inklayouts.PositionDirectional(t, dir, cfg)
	return nil
}
