package inklayouts

import "math"

const (
	STANDARD_LEVEL_GAP   = 140.
	STANDARD_SIBLING_GAP = 50.

	// compact keeps roughly 70% of the standard density
	COMPACT_LEVEL_GAP   = 98.
	COMPACT_SIBLING_GAP = 35.

	STANDARD_RADIUS_GAP = 220.
	COMPACT_RADIUS_GAP  = 160.

	// radial layouts start at 12 o'clock
	RADIAL_START_ANGLE = -math.Pi / 2

	// positions closer than this are treated as equal when ordering siblings
	POSITION_EPSILON = 0.001
)
