package quickhull

import "math"

// Tolerance factors. The coincident check uses the plain tolerance while
// the colinear and coplanar checks use 100x it; this asymmetry is
// intentional in the source algorithm and is preserved verbatim (spec.md §9
// Open Questions) even though it looks like it should be uniform.
const (
	coincidentFactor  = 1.0
	colinearFactor    = 100.0
	coplanarFactor    = 100.0
	containmentFactor = 10.0

	// machineEpsilon is 2^-52, the distance between 1.0 and the next
	// representable float64.
	machineEpsilon = 1.0 / (1 << 52)
)

// extent holds the axis-aligned minimum and maximum of a point set, mirrored
// on feather/actor.AABB's Min/Max shape but exposing the six scalar
// extremes spec.md §4.1's tolerance formula needs directly, rather than a
// box value.
type extent struct {
	min, max Point3D
}

// computeExtent scans points once for their axis-aligned bounding extremes.
func computeExtent(points []Point3D) extent {
	e := extent{min: points[0], max: points[0]}
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < e.min[axis] {
				e.min[axis] = p[axis]
			}
			if p[axis] > e.max[axis] {
				e.max[axis] = p[axis]
			}
		}
	}
	return e
}

// maxAbsByAxis returns, for each axis, the greater of |min| and |max|.
func (e extent) maxAbsByAxis() Point3D {
	return Point3D{
		math.Max(math.Abs(e.max[0]), math.Abs(e.min[0])),
		math.Max(math.Abs(e.max[1]), math.Abs(e.min[1])),
		math.Max(math.Abs(e.max[2]), math.Abs(e.min[2])),
	}
}

// estimateTolerance implements the exact formula of spec.md §4.1:
//
//	epsilon = 3 * 2^-52 * (max(|xmax|,|xmin|) + max(|ymax|,|ymin|) + max(|zmax|,|zmin|))
//
// The algorithm's robustness properties depend on this exact constant; it
// must not be approximated or simplified.
func estimateTolerance(points []Point3D) float64 {
	e := computeExtent(points)
	abs := e.maxAbsByAxis()
	return 3 * machineEpsilon * (abs[0] + abs[1] + abs[2])
}

// greatestExtentAxis returns the axis (0, 1 or 2) along which the point set
// has the greatest extent, and that extent.
func (e extent) greatestExtentAxis() (axis int, span float64) {
	axis = 0
	span = e.max[0] - e.min[0]
	for a := 1; a < 3; a++ {
		s := e.max[a] - e.min[a]
		if s > span {
			axis, span = a, s
		}
	}
	return axis, span
}
