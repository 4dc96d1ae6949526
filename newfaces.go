package quickhull

// addNewFaces builds the triangle fan of spec.md §4.6: one new face per
// horizon edge, each spanning (eye, tail(h), head(h)), stitched so the fan
// closes into a ring and each new face's outer edge takes over the horizon
// edge's old connection to the surviving hull.
func (b *Builder) addNewFaces(eye *Vertex, horizon []*HalfEdge) ([]*Face, error) {
	newFaces := make([]*Face, 0, len(horizon))

	var firstLeft, prevRight *HalfEdge

	for _, h := range horizon {
		if h.opposite == nil {
			return nil, internalError("horizon edge missing opposite")
		}

		face := newTriangle(eye, h.tail(), h.head())
		left := face.firstEdge       // eye -> tail(h)
		mid := face.firstEdge.next   // tail(h) -> head(h), replaces h
		right := mid.next            // head(h) -> eye

		connectOpposite(mid, h.opposite)

		if prevRight != nil {
			connectOpposite(prevRight, left)
		} else {
			firstLeft = left
		}
		prevRight = right

		face.computePlane(b.minArea())
		b.registerFace(face)
		newFaces = append(newFaces, face)
	}

	if prevRight == nil {
		return nil, internalError("empty horizon while adding new faces")
	}
	connectOpposite(prevRight, firstLeft)

	return newFaces, nil
}
