// Package catch implements the pose-controlled catch game: a timed
// simulation where fruit and bombs fall down three lanes and the player
// moves a basket between lanes to catch fruit and avoid bombs.
//
// The engine owns spawn scheduling, gravity motion, catch/miss resolution,
// scoring and level progression. It is advanced once per external tick by a
// host render loop and fed the latest classified basket lane by an external
// pose classifier; it never runs a loop of its own.
package catch

import "strings"

// Zone is one of three discrete horizontal lanes, used both for item
// placement and the basket position.
type Zone int32

const (
	ZoneLeft Zone = iota
	ZoneCenter
	ZoneRight
)

// ZoneCount is the number of lanes.
const ZoneCount = 3

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneCenter:
		return "center"
	case ZoneRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether z is one of the three lanes.
func (z Zone) Valid() bool {
	return z >= ZoneLeft && z <= ZoneRight
}

// ParseZone maps a classifier label to a lane. Matching is
// case-insensitive; unrecognized labels return ok=false and must be ignored
// by the caller, not treated as an error.
func ParseZone(label string) (Zone, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "left":
		return ZoneLeft, true
	case "center", "centre", "middle":
		return ZoneCenter, true
	case "right":
		return ZoneRight, true
	default:
		return 0, false
	}
}
