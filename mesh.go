package quickhull

import "github.com/go-gl/mathgl/mgl64"

// faceMark is a face's lifecycle tag.
type faceMark int

const (
	// visible faces are part of the current hull boundary.
	visible faceMark = iota
	// nonConvex faces were deferred during merge pass 1 and are revisited
	// in pass 2.
	nonConvex
	// deleted faces have been absorbed by a merge or removed by horizon
	// construction; they are no longer part of the mesh.
	deleted
)

// Vertex wraps one input point. index is overloaded per the vertex
// lifecycle: during initial-simplex construction it holds the point's
// original input slot, during output extraction it is reset to -1, used as
// a "used" marker (0), and finally reassigned to the compacted output
// index (spec.md §9 design note).
type Vertex struct {
	Point mgl64.Vec3
	index int

	// face is the Face currently claiming this vertex as an outside
	// point, or nil if the vertex has not yet been claimed (or has been
	// placed on the hull).
	face *Face

	// prev/next are intrusive links in whichever VertexList currently
	// owns this vertex (the global claimed list, or the transient
	// unclaimed list during horizon construction).
	prev, next *Vertex
}

// HalfEdge is one oriented edge of a Face's boundary cycle.
type HalfEdge struct {
	// vertex is this edge's head vertex.
	vertex *Vertex
	// face is the face on this edge's interior side.
	face *Face
	// next/prev walk the cyclic boundary of face.
	next, prev *HalfEdge
	// opposite is the paired half-edge on the adjacent face. It must
	// satisfy opposite.opposite == e, opposite.vertex == e.tail(), and
	// e.vertex == opposite.tail().
	opposite *HalfEdge
}

// tail returns this edge's tail vertex (the head of the previous edge in
// the boundary cycle).
func (e *HalfEdge) tail() *Vertex {
	if e.prev == nil {
		return nil
	}
	return e.prev.vertex
}

// head returns this edge's head vertex, i.e. e.vertex. Provided for
// symmetry with tail at call sites that read more naturally in pairs.
func (e *HalfEdge) head() *Vertex {
	return e.vertex
}

// lengthSquared returns the squared length of the edge.
func (e *HalfEdge) lengthSquared() float64 {
	return lengthSquared(e.head().Point.Sub(e.tail().Point))
}

// oppFaceDistance returns the signed distance from this edge's face's plane
// to the centroid of the face on the opposite side of the edge. Used by the
// merge predicates of spec.md §4.7.
func (e *HalfEdge) oppFaceDistance() float64 {
	return e.face.distanceToPlane(e.opposite.face.centroid)
}

// Face is a convex polygon embedded in a plane, described by its boundary
// half-edge cycle.
type Face struct {
	firstEdge *HalfEdge

	normal      mgl64.Vec3
	planeOffset float64
	centroid    mgl64.Vec3
	area        float64
	count       int

	mark faceMark

	// outside is the head of the contiguous run of this face's claimed
	// vertices within the global conflict list, or nil if the face
	// currently claims no outside points.
	outside *Vertex
}

// distanceToPlane returns the signed distance from p to f's plane.
func (f *Face) distanceToPlane(p mgl64.Vec3) float64 {
	return distanceToPlane(f.normal, f.planeOffset, p)
}

// vertices returns the ordered vertices of the face's boundary: the head of
// each half-edge in boundary order starting from firstEdge, so the first
// entry is firstEdge.vertex.
func (f *Face) vertices() []*Vertex {
	out := make([]*Vertex, 0, f.count)
	e := f.firstEdge
	for {
		out = append(out, e.vertex)
		e = e.next
		if e == f.firstEdge {
			break
		}
	}
	return out
}

// edges returns the half-edges of the face's boundary in cyclic order
// starting at firstEdge.
func (f *Face) edges() []*HalfEdge {
	out := make([]*HalfEdge, 0, f.count)
	e := f.firstEdge
	for {
		out = append(out, e)
		e = e.next
		if e == f.firstEdge {
			break
		}
	}
	return out
}

// newTriangle creates a new VISIBLE triangular face from three vertices in
// counter-clockwise order (as seen from outside the hull) and wires its
// three half-edges into a cycle. The face's opposite links are left unset;
// callers stitch them in.
func newTriangle(a, b, c *Vertex) *Face {
	face := &Face{mark: visible}

	he0 := &HalfEdge{vertex: b, face: face}
	he1 := &HalfEdge{vertex: c, face: face}
	he2 := &HalfEdge{vertex: a, face: face}

	he0.next, he0.prev = he1, he2
	he1.next, he1.prev = he2, he0
	he2.next, he2.prev = he0, he1

	face.firstEdge = he0
	face.count = 3
	face.computePlane(0)

	return face
}

// computePlane recomputes normal, centroid, area and planeOffset from the
// face's current boundary. minArea is forwarded to robustNormal (spec.md
// §4.8); it is zero for the initial tetrahedron and a small
// tolerance-derived value for faces built or merged during the main loop.
func (f *Face) computePlane(minArea float64) {
	verts := f.vertices()

	var sum mgl64.Vec3
	for _, v := range verts {
		sum = sum.Add(v.Point)
	}
	f.centroid = sum.Mul(1 / float64(len(verts)))

	points := make([]mgl64.Vec3, len(verts))
	for i, v := range verts {
		points[i] = v.Point
	}
	f.normal, f.area = robustNormal(points, minArea)
	f.planeOffset = f.normal.Dot(f.centroid)
}
