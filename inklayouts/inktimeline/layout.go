// Package inktimeline lays out events chronologically along one axis,
// alternating them around a center line, and keeps consecutive events
// connected.
package inktimeline

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"cdr.dev/slog"

	"github.com/inkwellhq/inkwell/inkgraph"
	"github.com/inkwellhq/inkwell/lib/geo"
	"github.com/inkwellhq/inkwell/lib/log"
)

type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

type Options struct {
	// SortByDate orders events by their parsed dates; events missing a date
	// keep their spatial order.
	SortByDate bool
	// ShowDateLabels appends the event's date to its label, once.
	ShowDateLabels bool
	// AutoSpacing scales the gap between neighbors by elapsed time.
	AutoSpacing bool
}

const (
	// fixed gap when dates can't drive spacing
	DEFAULT_EVENT_GAP = 120.
	// base gap scaled by elapsed time under auto spacing
	BASE_EVENT_GAP = 120.
	// elapsed days that map to a 1x gap
	REFERENCE_DAYS = 30.
	MIN_GAP_SCALE  = 0.75
	MAX_GAP_SCALE  = 2.

	// perpendicular offset alternated around the center line
	LANE_OFFSET = 80.

	DATE_FORMAT = "2006-01-02"
)

// Layout orders all nodes of the graph chronologically, spaces them along
// the primary axis, alternates them above/below (or left/right of) the
// center line, and connects each pair of neighbors. The first event keeps
// its position, which anchors the whole line and makes repeated invocations
// converge to the same placement.
func Layout(ctx context.Context, g *inkgraph.Graph, orientation Orientation, opts Options) error {
	if len(g.Objects) == 0 {
		return nil
	}
	log.Debug(ctx, "timeline layout",
		slog.F("orientation", orientation),
		slog.F("events", len(g.Objects)))

	vertical := orientation == OrientationVertical

	events := make([]*inkgraph.Object, len(g.Objects))
	copy(events, g.Objects)
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if opts.SortByDate {
			da, oka := parseDate(a.Date)
			db, okb := parseDate(b.Date)
			if oka && okb && !da.Equal(db) {
				return da.Before(db)
			}
		}
		if vertical {
			return a.TopLeft.Y < b.TopLeft.Y
		}
		return a.TopLeft.X < b.TopLeft.X
	})

	// The center line runs one lane offset past the first event's center, so
	// placing the first event on its lane lands it exactly where it started.
	first := events[0]
	line := first.Center().Y + LANE_OFFSET
	if vertical {
		line = first.Center().X + LANE_OFFSET
	}

	for i, ev := range events {
		lane := -LANE_OFFSET
		if i%2 == 1 {
			lane = LANE_OFFSET
		}
		if i > 0 {
			gap := eventGap(events[i-1], ev, opts)
			prev := events[i-1]
			if vertical {
				ev.TopLeft.Y = prev.TopLeft.Y + prev.Height + gap
			} else {
				ev.TopLeft.X = prev.TopLeft.X + prev.Width + gap
			}
		}
		if vertical {
			ev.TopLeft.X = line + lane - ev.Width/2
		} else {
			ev.TopLeft.Y = line + lane - ev.Height/2
		}

		if opts.ShowDateLabels {
			appendDateLabel(ev)
		}
	}

	// connect chronological neighbors, creating edges where the graph has
	// none yet
	for i := 1; i < len(events); i++ {
		e := g.EdgeBetween(events[i-1], events[i])
		if e == nil {
			e = g.Connect(events[i-1], events[i])
		}
		if vertical {
			e.SetPorts(inkgraph.PortBottom, inkgraph.PortTop)
		} else {
			e.SetPorts(inkgraph.PortRight, inkgraph.PortLeft)
		}
	}
	return nil
}

func eventGap(a, b *inkgraph.Object, opts Options) float64 {
	if opts.AutoSpacing {
		da, oka := parseDate(a.Date)
		db, okb := parseDate(b.Date)
		if oka && okb {
			days := math.Abs(db.Sub(da).Hours() / 24)
			scale := math.Min(math.Max(days/REFERENCE_DAYS, MIN_GAP_SCALE), MAX_GAP_SCALE)
			return geo.TruncateDecimals(BASE_EVENT_GAP * scale)
		}
	}
	return DEFAULT_EVENT_GAP
}

// appendDateLabel suffixes the label with the event's date exactly once;
// relayouts must not stack duplicates.
func appendDateLabel(o *inkgraph.Object) {
	d, ok := parseDate(o.Date)
	if !ok {
		return
	}
	line := d.Format(DATE_FORMAT)
	if strings.Contains(o.Label, line) {
		return
	}
	if o.Label == "" {
		o.Label = line
		return
	}
	o.Label += "\n" + line
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{DATE_FORMAT, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
