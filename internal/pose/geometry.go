package pose

import "math"

// rayEpsilon guards angle computations against zero-length rays. A ray shorter
// than this (in whatever unit the frame uses) is treated as degenerate.
const rayEpsilon = 1e-6

// Angle computes the angle in degrees at vertex b between rays b->a and b->c.
// The result is always in [0, 180]. Degenerate input (a or c coinciding with
// b) yields 0 rather than NaN, so an occluded or collapsed frame can never
// push a NaN into the rep state machine.
func Angle(a, b, c Landmark) float64 {
	return VectorAngle(a.X-b.X, a.Y-b.Y, c.X-b.X, c.Y-b.Y)
}

// VectorAngle computes the angle in degrees between vectors (ux, uy) and
// (vx, vy), in [0, 180]. Zero-length vectors yield 0.
func VectorAngle(ux, uy, vx, vy float64) float64 {
	lu := math.Hypot(ux, uy)
	lv := math.Hypot(vx, vy)
	if lu < rayEpsilon || lv < rayEpsilon {
		return 0
	}

	cos := (ux*vx + uy*vy) / (lu*lv + rayEpsilon)
	// Clamp before acos; floating point can push the ratio just past ±1.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180 / math.Pi
}

// Distance returns the Euclidean distance between two landmarks in the
// frame's unit system (z ignored; the engine works on the 2-D projection).
func Distance(a, b Landmark) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
