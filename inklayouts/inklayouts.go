// Package inklayouts holds the pieces shared by every topology: the layout
// configuration, the tree builder, subtree extents, the directional
// positioner, the radial positioner, and the anchor fixer.
package inklayouts

// Direction selects the growth axis and sign of a layout pass. Both and
// Radial are only meaningful for mindmap layouts.
type Direction string

const (
	DirectionRight Direction = "right"
	DirectionLeft  Direction = "left"
	DirectionDown  Direction = "down"
	DirectionUp    Direction = "up"

	DirectionBoth   Direction = "both"
	DirectionRadial Direction = "radial"
)

func (d Direction) IsVertical() bool {
	return d == DirectionDown || d == DirectionUp
}

// SortOrder picks the spatial tie-break axis when siblings carry no explicit
// order: TopToBottom compares y then x, LeftToRight compares x then y.
type SortOrder string

const (
	SortTopToBottom SortOrder = "top-bottom"
	SortLeftToRight SortOrder = "left-right"
)

// SpacingMode is a gap-density preset.
type SpacingMode string

const (
	SpacingStandard SpacingMode = "standard"
	SpacingCompact  SpacingMode = "compact"
)

// LayoutConfig is threaded explicitly into every layout call. The zero value
// means top-to-bottom sorting, standard spacing, clockwise radial growth.
type LayoutConfig struct {
	SortOrder        SortOrder
	SpacingMode      SpacingMode
	CounterClockwise bool
}

func (c LayoutConfig) LevelGap() float64 {
	if c.SpacingMode == SpacingCompact {
		return COMPACT_LEVEL_GAP
	}
	return STANDARD_LEVEL_GAP
}

func (c LayoutConfig) SiblingGap() float64 {
	if c.SpacingMode == SpacingCompact {
		return COMPACT_SIBLING_GAP
	}
	return STANDARD_SIBLING_GAP
}

func (c LayoutConfig) RadiusGap() float64 {
	if c.SpacingMode == SpacingCompact {
		return COMPACT_RADIUS_GAP
	}
	return STANDARD_RADIUS_GAP
}
