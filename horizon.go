package quickhull

// maxHorizonDepth bounds the horizon walk's recursion so a malformed mesh
// (a cycle of "visible" faces that never terminates) fails loudly with an
// InternalError instead of exhausting the goroutine stack. Go's goroutine
// stacks grow on demand, so in practice this is the "allocate a generous
// stack" option of spec.md §9 rather than a real limit on well-formed
// input: it is far above the face count any successful build will reach.
const maxHorizonDepth = 1 << 20

// computeHorizon performs the depth-first walk of spec.md §4.5 over faces
// visible from eye, starting at eyeFace. Every visible face reached has its
// conflict run moved into b.unclaimed and is marked deleted. The returned
// half-edges form a closed, ordered cycle: for each of them, e.face is
// deleted and e.opposite.face remains visible.
func (b *Builder) computeHorizon(eye Point3D, eyeFace *Face) ([]*HalfEdge, error) {
	var horizon []*HalfEdge
	if err := b.walkHorizon(eye, nil, eyeFace, &horizon, 0); err != nil {
		return nil, err
	}
	return horizon, nil
}

func (b *Builder) walkHorizon(eye Point3D, entryEdge *HalfEdge, face *Face, horizon *[]*HalfEdge, depth int) error {
	if depth > maxHorizonDepth {
		return internalError("horizon walk exceeded maximum depth")
	}

	face.mark = deleted
	if head, tail := removeAllPointsFromFace(face, &b.claimed); head != nil {
		b.unclaimed.addAll(head, tail)
	}

	start := face.firstEdge
	iterations := face.count
	if entryEdge != nil {
		// entryEdge is the edge we arrived across, shared with the
		// already-deleted face one frame up; it is never itself a
		// candidate for the horizon or for further recursion, so start
		// past it and walk one fewer edge.
		start = entryEdge.next
		iterations = face.count - 1
	}

	e := start
	for i := 0; i < iterations; i++ {
		next := e.next
		opp := e.opposite
		if opp == nil {
			return internalError("half-edge missing opposite during horizon walk")
		}

		if opp.face.mark == visible && opp.face.distanceToPlane(eye) > b.tolerance {
			if err := b.walkHorizon(eye, opp, opp.face, horizon, depth+1); err != nil {
				return err
			}
		} else {
			*horizon = append(*horizon, e)
		}
		e = next
	}
	return nil
}
