package quickhull

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3D is an input or output coordinate triple. The hull treats points as
// immutable once submitted to Build; all mutation happens on the mesh that
// wraps them.
type Point3D = mgl64.Vec3

// lengthSquared avoids the Sqrt that Vec3.Len performs, used on the hull's
// hot edge-length and distance-compare paths.
func lengthSquared(v mgl64.Vec3) float64 {
	return v.Dot(v)
}

// distanceToPlane returns the signed distance from p to the plane with the
// given unit normal and offset (offset == normal.Dot(pointOnPlane)).
// Positive means p is on the outward side of the plane.
func distanceToPlane(normal mgl64.Vec3, offset float64, p mgl64.Vec3) float64 {
	return normal.Dot(p) - offset
}

// newellNormal computes an area-weighted normal for a (possibly non-planar,
// possibly non-convex) polygon using Newell's method, which is more stable
// than a single cross product when the polygon is large or nearly
// degenerate. It does not normalize the result.
func newellNormal(points []mgl64.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	count := len(points)
	for i := 0; i < count; i++ {
		cur := points[i]
		next := points[(i+1)%count]
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
	}
	return n
}

// robustNormal computes a unit face normal and the polygon area (half the
// magnitude of the Newell normal, which is twice the area).
// When the resulting area falls below minArea the candidate normal is
// stabilized by projecting it onto the subspace orthogonal to the polygon's
// longest edge and renormalizing, per the QuickHull robustness rule: a
// sliver face's normal from cross products alone is numerically unreliable,
// but its longest edge is still well determined.
//
// minArea is zero for the initial tetrahedron faces (spec.md §4.8); callers
// building faces during the main loop pass a small positive minArea derived
// from the current tolerance.
func robustNormal(points []mgl64.Vec3, minArea float64) (normal mgl64.Vec3, area float64) {
	raw := newellNormal(points)
	area = raw.Len() * 0.5

	if area >= minArea || len(points) < 3 {
		return safeNormalize(raw), area
	}

	// Sliver face: find the longest edge and project the candidate normal
	// onto the plane perpendicular to it before renormalizing.
	var longest mgl64.Vec3
	longestLenSq := -1.0
	count := len(points)
	for i := 0; i < count; i++ {
		edge := points[(i+1)%count].Sub(points[i])
		lenSq := lengthSquared(edge)
		if lenSq > longestLenSq {
			longestLenSq = lenSq
			longest = edge
		}
	}

	if longestLenSq <= 0 {
		return safeNormalize(raw), area
	}

	longestUnit := longest.Mul(1 / safeSqrt(longestLenSq))
	projected := raw.Sub(longestUnit.Mul(raw.Dot(longestUnit)))
	return safeNormalize(projected), area
}

func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

func safeSqrt(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}
