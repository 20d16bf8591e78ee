// inklayout applies one of the board layouts to a serialized graph and
// writes the re-positioned graph back out.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/inkwellhq/inkwell/inkgraph"
	"github.com/inkwellhq/inkwell/inklayouts"
	"github.com/inkwellhq/inkwell/inklayouts/inkfishbone"
	"github.com/inkwellhq/inkwell/inklayouts/inkmind"
	"github.com/inkwellhq/inkwell/inklayouts/inktimeline"
	"github.com/inkwellhq/inkwell/inklayouts/inktree"
	"github.com/inkwellhq/inkwell/lib/log"
)

func main() {
	ctx := log.Stderr(context.Background())
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "inklayout: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	layoutFlag := pflag.StringP("layout", "l", "tree", "layout to apply: tree, mindmap, fishbone, timeline")
	directionFlag := pflag.StringP("direction", "d", "right", "growth direction: right, left, down, up; mindmaps also accept both and radial")
	rootFlag := pflag.StringP("root", "r", "", "id of the root node; defaults to a node with no incoming edges")
	compactFlag := pflag.BoolP("compact", "c", false, "use compact spacing")
	sortFlag := pflag.String("sort", "top-bottom", "sibling sort preference: top-bottom or left-right")
	ccwFlag := pflag.Bool("counter-clockwise", false, "grow radial layouts counter-clockwise")
	orientationFlag := pflag.String("orientation", "horizontal", "timeline orientation: horizontal or vertical")
	sortByDateFlag := pflag.Bool("sort-by-date", true, "timeline: order events by date")
	dateLabelsFlag := pflag.Bool("date-labels", false, "timeline: append dates to labels")
	autoSpacingFlag := pflag.Bool("auto-spacing", false, "timeline: scale gaps by elapsed time")
	outFlag := pflag.StringP("out", "o", "-", "output path, - for stdout")
	pflag.Parse()

	if pflag.NArg() != 1 {
		return fmt.Errorf("usage: inklayout [flags] <graph.json>")
	}

	in, err := os.ReadFile(pflag.Arg(0))
	if err != nil {
		return err
	}
	g := inkgraph.NewGraph()
	if err := inkgraph.DeserializeGraph(in, g); err != nil {
		return err
	}

	cfg := inklayouts.LayoutConfig{
		SortOrder:        inklayouts.SortOrder(*sortFlag),
		CounterClockwise: *ccwFlag,
	}
	if *compactFlag {
		cfg.SpacingMode = inklayouts.SpacingCompact
	}

	var root *inkgraph.Object
	if *rootFlag != "" {
		root = g.Get(*rootFlag)
		if root == nil {
			return fmt.Errorf("no object with id %q", *rootFlag)
		}
	}

	switch *layoutFlag {
	case "tree":
		err = inktree.Layout(ctx, g, inklayouts.Direction(*directionFlag), root, cfg)
	case "mindmap":
		err = inkmind.Layout(ctx, g, inklayouts.Direction(*directionFlag), root, cfg)
	case "fishbone":
		err = inkfishbone.Layout(ctx, g, root, cfg)
	case "timeline":
		err = inktimeline.Layout(ctx, g, inktimeline.Orientation(*orientationFlag), inktimeline.Options{
			SortByDate:     *sortByDateFlag,
			ShowDateLabels: *dateLabelsFlag,
			AutoSpacing:    *autoSpacingFlag,
		})
	default:
		err = fmt.Errorf("unknown layout %q", *layoutFlag)
	}
	if err != nil {
		return err
	}

	out, err := inkgraph.SerializeGraph(g)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if *outFlag == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(*outFlag, out, 0o644)
}
