package tempo

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA implements color.Color, so a Color can be passed to image.Fill and
// friends directly. Components are clamped and premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R*c.A) * 0xffff)
	g = uint32(clamp01(c.G*c.A) * 0xffff)
	b = uint32(clamp01(c.B*c.A) * 0xffff)
	return
}

// Priorities for per-frame update targets. Lower values run earlier.
const (
	// PrioritySystem is reserved for the ActionManager so that actions are
	// stepped before any user update callback in the same frame.
	PrioritySystem = math.MinInt32

	// PriorityNonSystemMin is the lowest priority available to user targets.
	PriorityNonSystemMin = PrioritySystem + 1
)

// RepeatForever is the repeat count of a timer that never stops on its own.
const RepeatForever = math.MaxInt32

// TagInvalid is the tag every action starts with. Lookups by TagInvalid are
// logged and never match anything meaningful.
const TagInvalid = 0

// epsilon guards divisions by near-zero durations.
const epsilon = 1.192092896e-07

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
