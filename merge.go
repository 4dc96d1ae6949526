package quickhull

// mergeNewFaces runs the two adjacent-face merge passes of spec.md §4.7
// over the faces just added by addNewFaces, then resolves every point
// displaced into b.unclaimed during horizon computation and merging.
func (b *Builder) mergeNewFaces(newFaces []*Face) error {
	for _, face := range newFaces {
		if face.mark != visible {
			continue
		}
		for {
			merged, err := b.tryAdjacentMerges(face, false)
			if err != nil {
				return err
			}
			if !merged {
				break
			}
		}
	}

	for _, face := range newFaces {
		if face.mark != nonConvex {
			continue
		}
		for {
			merged, err := b.tryAdjacentMerges(face, true)
			if err != nil {
				return err
			}
			if !merged {
				break
			}
		}
		if face.mark == nonConvex {
			face.mark = visible
		}
	}

	b.resolveUnclaimedPoints(newFaces)
	return nil
}

// tryAdjacentMerges scans face's current boundary for a neighbor meeting
// the active pass's merge predicate and, on the first match, merges it in
// and returns true so the caller restarts the scan against face's new
// (grown) boundary. pass2 selects the NON_CONVEX revisit predicate of
// spec.md §4.7; pass1 selects NON_CONVEX_WRT_LARGER_FACE and may mark face
// nonConvex for later revisit instead of merging immediately.
func (b *Builder) tryAdjacentMerges(face *Face, pass2 bool) (bool, error) {
	edge := face.firstEdge
	for i := 0; i < face.count; i++ {
		opp := edge.opposite
		if opp == nil {
			return false, internalError("half-edge missing opposite during merge")
		}
		neighbor := opp.face

		shouldMerge := false
		if pass2 {
			shouldMerge = edge.oppFaceDistance() > -b.tolerance || opp.oppFaceDistance() > -b.tolerance
		} else {
			dFaceSeesNeighbor := edge.oppFaceDistance()
			dNeighborSeesFace := opp.oppFaceDistance()

			var dLarger, dSmaller float64
			if face.area >= neighbor.area {
				dLarger, dSmaller = dFaceSeesNeighbor, dNeighborSeesFace
			} else {
				dLarger, dSmaller = dNeighborSeesFace, dFaceSeesNeighbor
			}

			switch {
			case dLarger >= -b.tolerance:
				shouldMerge = true
			case dSmaller >= -b.tolerance:
				face.mark = nonConvex
			}
		}

		if shouldMerge {
			if err := b.mergeAdjacentFace(face, edge); err != nil {
				return false, err
			}
			return true, nil
		}

		edge = edge.next
	}
	return false, nil
}

// mergeAdjacentFace absorbs the face across edgeOnA into a, per spec.md
// §4.7: the shared boundary run (possibly more than one edge, in
// degenerate configurations) is spliced out, b's remaining edges are
// reassigned to a and stitched into place, a redundant vertex is collapsed
// at either splice junction if it would leave two consecutive edges of a
// facing the same third face, and b's orphaned conflict-list points are
// reassigned to a or moved to the unclaimed list.
func (b *Builder) mergeAdjacentFace(a *Face, edgeOnA *HalfEdge) error {
	neighbor := edgeOnA.opposite.face

	lo, hi, err := sharedBoundaryRun(edgeOnA, neighbor)
	if err != nil {
		return err
	}
	sharedLen := runLength(lo, hi)
	if sharedLen >= a.count || sharedLen >= neighbor.count {
		return internalError("face entirely shares boundary with neighbor during merge")
	}

	loOpp, hiOpp := hi.opposite, lo.opposite

	aBefore, aAfter := lo.prev, hi.next
	bStart, bEnd := hiOpp.next, loOpp.prev

	aBefore.next, bStart.prev = bStart, aBefore
	bEnd.next, aAfter.prev = aAfter, bEnd

	for e := bStart; ; e = e.next {
		e.face = a
		if e == bEnd {
			break
		}
	}

	firstInRun := false
	for e := lo; ; e = e.next {
		firstInRun = firstInRun || e == a.firstEdge
		if e == hi {
			break
		}
	}
	if firstInRun || a.firstEdge.face != a {
		a.firstEdge = aBefore
	}
	a.count = a.count + neighbor.count - 2*sharedLen

	head, tail := removeAllPointsFromFace(neighbor, &b.claimed)
	neighbor.mark = deleted

	if err := b.collapseRedundantVertex(a, aBefore, bStart); err != nil {
		return err
	}
	if err := b.collapseRedundantVertex(a, bEnd, aAfter); err != nil {
		return err
	}

	a.computePlane(b.minArea())

	for v := head; v != nil; {
		next := v.next
		v.next, v.prev = nil, nil
		if a.distanceToPlane(v.Point) > b.tolerance {
			addPointToFace(v, a, &b.claimed)
		} else {
			b.unclaimed.add(v)
		}
		if v == tail {
			break
		}
		v = next
	}

	return nil
}

// sharedBoundaryRun returns the first and last half-edge of the maximal
// contiguous run of a's boundary (containing edgeOnA) whose opposite face
// is neighbor.
func sharedBoundaryRun(edgeOnA *HalfEdge, neighbor *Face) (lo, hi *HalfEdge, err error) {
	lo, hi = edgeOnA, edgeOnA
	for lo.prev.opposite != nil && lo.prev.opposite.face == neighbor {
		lo = lo.prev
		if lo == edgeOnA {
			return nil, nil, internalError("shared boundary run spans entire face")
		}
	}
	for hi.next.opposite != nil && hi.next.opposite.face == neighbor {
		hi = hi.next
		if hi == edgeOnA {
			return nil, nil, internalError("shared boundary run spans entire face")
		}
	}
	return lo, hi, nil
}

// runLength returns the number of half-edges in the cyclic run [lo, hi]
// walked via next.
func runLength(lo, hi *HalfEdge) int {
	n := 1
	for e := lo; e != hi; e = e.next {
		n++
	}
	return n
}

// collapseRedundantVertex eliminates the vertex between e1 and e2 (where
// e1.next == e2, both on face a) when doing so is forced by spec.md §4.7's
// redundant-edge rule: e1 and e2 now face the same third face c, so the
// vertex between them has degree 2 and serves no topological purpose. The
// matching pair of edges on c's side is collapsed symmetrically. If that
// leaves c with fewer than 3 edges, c is marked deleted as a collateral
// face and its orphaned conflict-list points move to unclaimed.
func (b *Builder) collapseRedundantVertex(a *Face, e1, e2 *HalfEdge) error {
	if e1.next != e2 {
		return internalError("collapseRedundantVertex: edges are not consecutive")
	}
	if e1.opposite == nil || e2.opposite == nil {
		return internalError("half-edge missing opposite during redundant-vertex check")
	}
	c := e1.opposite.face
	if e2.opposite.face != c {
		return nil
	}

	oe1, oe2 := e1.opposite, e2.opposite

	e1.vertex = e2.vertex
	e1.next = e2.next
	e2.next.prev = e1
	a.count--
	if a.firstEdge == e2 {
		a.firstEdge = e1
	}

	oe2.vertex = oe1.vertex
	oe2.next = oe1.next
	oe1.next.prev = oe2
	c.count--
	if c.firstEdge == oe1 {
		c.firstEdge = oe2
	}

	// e1 (now spanning tail(e1)->head(e2)) and oe2 (now spanning the exact
	// reverse) are the surviving pair on either side of the collapsed
	// vertex; oe1 and e2 are discarded, so their old opposite links would
	// otherwise dangle into them.
	e1.opposite = oe2
	oe2.opposite = e1

	if c.count < 3 {
		// c has degenerated into a bigon: oe2 and the one edge still
		// following it (the third edge of c's original triangle).
		// Deleting c means e1 must bridge straight across that bigon to
		// the face on its far side, per the teacher-faithful
		// connectHalfEdges bridging step.
		remaining := oe2.next
		farEdge := remaining.opposite
		if farEdge == nil {
			return internalError("half-edge missing opposite while collapsing degenerate face")
		}
		e1.opposite = farEdge
		farEdge.opposite = e1

		head, tail := removeAllPointsFromFace(c, &b.claimed)
		c.mark = deleted
		for v := head; v != nil; {
			next := v.next
			v.next, v.prev = nil, nil
			b.unclaimed.add(v)
			if v == tail {
				break
			}
			v = next
		}
		return nil
	}

	c.computePlane(b.minArea())
	return nil
}

// resolveUnclaimedPoints re-tests every vertex displaced into b.unclaimed
// (by horizon computation or by merging) against every currently visible
// face in newFaces, assigning each to the face of greatest positive
// distance exceeding the tolerance, per spec.md §4.7. The 1000x tolerance
// early exit is a performance optimization: once a comfortably-above-plane
// face is found there is no need to keep scanning.
func (b *Builder) resolveUnclaimedPoints(newFaces []*Face) {
	v := b.unclaimed.first()
	for v != nil {
		next := v.next

		var bestFace *Face
		bestDist := b.tolerance
		for _, f := range newFaces {
			if f.mark != visible {
				continue
			}
			d := f.distanceToPlane(v.Point)
			if d > bestDist {
				bestDist = d
				bestFace = f
				if d > 1000*b.tolerance {
					break
				}
			}
		}

		if bestFace != nil {
			b.unclaimed.delete(v)
			addPointToFace(v, bestFace, &b.claimed)
		}

		v = next
	}
	b.unclaimed.clear()
}
