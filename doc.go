// Package quickhull computes the convex hull of a finite set of points in
// three-space using the QuickHull algorithm of Barber, Dobkin and Huhdanpaa.
//
// The hull is built incrementally on a half-edge mesh: an initial tetrahedron
// is formed from four well-separated input points, then the remaining points
// are merged in one at a time by finding the "horizon" of faces visible from
// each new point and re-triangulating around it. Nearly-coplanar adjacent
// faces are merged back together so the final mesh has no spurious creases.
//
// Expected runtime is O(n log n) for well-distributed input. The builder is
// not safe for concurrent use by multiple goroutines against the same
// instance; independent builds may run in parallel.
package quickhull
