package quickhull

import "math"

// buildInitialSimplex constructs the starting tetrahedron from b.vertices
// and partitions every other input point into the conflict list of
// whichever of the four faces it lies above, per spec.md §4.2.
func (b *Builder) buildInitialSimplex() error {
	ext := computeExtent(b.points)
	axis, span := ext.greatestExtentAxis()
	if span <= b.tolerance {
		return inputError("coincident", "Input points appear to be coincident")
	}

	v0, v1 := b.extremeVerticesOnAxis(axis)

	v2, maxCrossLenSq := b.farthestFromLine(v0, v1)
	if math.Sqrt(maxCrossLenSq) <= colinearFactor*b.tolerance {
		return inputError("colinear", "Input points appear to be colinear")
	}

	triNormal := safeNormalize(v1.Point.Sub(v0.Point).Cross(v2.Point.Sub(v0.Point)))

	v3, maxPlaneDist := b.farthestFromPlane(triNormal, v2.Point)
	if maxPlaneDist <= coplanarFactor*b.tolerance {
		return inputError("coplanar", "Input points appear to be coplanar")
	}

	faces, err := stitchTetrahedron(v0, v1, v2, v3)
	if err != nil {
		return err
	}
	for _, f := range faces {
		b.registerFace(f)
	}

	for _, v := range b.vertices {
		if v == v0 || v == v1 || v == v2 || v == v3 {
			continue
		}
		b.assignToBestFace(v)
	}

	return nil
}

// extremeVerticesOnAxis returns the vertices achieving the minimum and
// maximum coordinate on the given axis.
func (b *Builder) extremeVerticesOnAxis(axis int) (min, max *Vertex) {
	min, max = b.vertices[0], b.vertices[0]
	for _, v := range b.vertices[1:] {
		if v.Point[axis] < min.Point[axis] {
			min = v
		}
		if v.Point[axis] > max.Point[axis] {
			max = v
		}
	}
	return min, max
}

// farthestFromLine returns the vertex maximizing the squared length of the
// cross product (v.Point-v0.Point) x (v1.Point-v0.Point), i.e. the point
// farthest (in perpendicular distance) from the line through v0 and v1, and
// that squared length.
func (b *Builder) farthestFromLine(v0, v1 *Vertex) (*Vertex, float64) {
	dir := v1.Point.Sub(v0.Point)
	var best *Vertex
	bestLenSq := -1.0
	for _, v := range b.vertices {
		cross := v.Point.Sub(v0.Point).Cross(dir)
		lenSq := lengthSquared(cross)
		if lenSq > bestLenSq {
			bestLenSq = lenSq
			best = v
		}
	}
	return best, bestLenSq
}

// farthestFromPlane returns the vertex maximizing |dot(p,n) - dot(planePoint,n)|
// and that distance.
func (b *Builder) farthestFromPlane(n Point3D, planePoint Point3D) (*Vertex, float64) {
	offset := n.Dot(planePoint)
	var best *Vertex
	bestDist := -1.0
	for _, v := range b.vertices {
		dist := math.Abs(v.Point.Dot(n) - offset)
		if dist > bestDist {
			bestDist = dist
			best = v
		}
	}
	return best, bestDist
}

// orientedTriangle builds a Face from p, q, r, flipping winding if needed
// so the face's normal points away from opposite (the tetrahedron's fourth
// vertex).
func orientedTriangle(p, q, r, opposite *Vertex) *Face {
	n := q.Point.Sub(p.Point).Cross(r.Point.Sub(p.Point))
	if n.Dot(p.Point.Sub(opposite.Point)) < 0 {
		return newTriangle(p, r, q)
	}
	return newTriangle(p, q, r)
}

// stitchTetrahedron builds the four triangular faces of the initial simplex
// from v0..v3, each oriented outward from the vertex it omits, and wires
// their six opposite-edge pairings.
func stitchTetrahedron(v0, v1, v2, v3 *Vertex) ([]*Face, error) {
	faces := []*Face{
		orientedTriangle(v0, v1, v2, v3),
		orientedTriangle(v0, v1, v3, v2),
		orientedTriangle(v0, v2, v3, v1),
		orientedTriangle(v1, v2, v3, v0),
	}
	for _, f := range faces {
		f.computePlane(0)
	}
	if err := wireOpposites(faces); err != nil {
		return nil, err
	}
	return faces, nil
}

// wireOpposites scans the boundary half-edges of the given faces and pairs
// each edge (tail -> head) with the edge running head -> tail among the
// same set, setting their opposite links. It is an internal error for an
// edge to have zero or more than one match: the set of faces must already
// form (or be about to form) a closed 2-manifold.
func wireOpposites(faces []*Face) error {
	byTailHead := make(map[*Vertex]map[*Vertex]*HalfEdge)
	set := func(t, h *Vertex, e *HalfEdge) error {
		m, ok := byTailHead[t]
		if !ok {
			m = make(map[*Vertex]*HalfEdge)
			byTailHead[t] = m
		}
		if _, exists := m[h]; exists {
			return internalError("duplicate directed edge while wiring opposites")
		}
		m[h] = e
		return nil
	}

	var edges []*HalfEdge
	for _, f := range faces {
		for _, e := range f.edges() {
			if err := set(e.tail(), e.head(), e); err != nil {
				return err
			}
			edges = append(edges, e)
		}
	}

	for _, e := range edges {
		if e.opposite != nil {
			continue
		}
		m, ok := byTailHead[e.head()]
		if !ok {
			return internalError("half-edge has no opposite while wiring tetrahedron")
		}
		opp, ok := m[e.tail()]
		if !ok {
			return internalError("half-edge has no opposite while wiring tetrahedron")
		}
		connectOpposite(e, opp)
	}
	return nil
}

// connectOpposite pairs two half-edges as each other's opposite.
func connectOpposite(a, b *HalfEdge) {
	a.opposite = b
	b.opposite = a
}

// assignToBestFace places v on whichever of the (currently visible) faces
// sees it with the greatest positive distance exceeding the tolerance; if
// no face sees it, v is left unclaimed (interior point, discarded from the
// hull).
func (b *Builder) assignToBestFace(v *Vertex) {
	var bestFace *Face
	bestDist := b.tolerance
	for _, f := range b.faces {
		if f.mark != visible {
			continue
		}
		dist := f.distanceToPlane(v.Point)
		if dist > bestDist {
			bestDist = dist
			bestFace = f
		}
	}
	if bestFace != nil {
		addPointToFace(v, bestFace, &b.claimed)
	}
}
