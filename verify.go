package quickhull

import "fmt"

// Check verifies the hull's topological and numerical invariants (spec.md
// §6, properties P1-P6), reporting every violation found to sink rather
// than stopping at the first one, and returns whether the hull passed.
// tolerance defaults to the hull's own distance tolerance; callers may pass
// a single override value, following the same pattern as the teacher
// repo's per-check Validate methods (sksmith-conway/conway.ValidateManifold
// and its siblings) consolidated here into one sweep since QuickHull's
// invariants all read from the same mesh in one pass.
func (h *Hull) Check(sink func(string), tolerance ...float64) bool {
	tol := h.tolerance
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}

	ok := true
	report := func(format string, args ...any) {
		ok = false
		if sink != nil {
			sink(fmt.Sprintf(format, args...))
		}
	}

	var surviving []*Face
	for _, f := range h.faces {
		if f.mark == visible {
			surviving = append(surviving, f)
		}
	}

	for _, f := range surviving {
		edges := f.edges()
		for i, e := range edges {
			if e.opposite == nil {
				report("face %p: edge %d has no opposite (P1)", f, i)
				continue
			}
			if e.opposite.opposite != e {
				report("face %p: edge %d opposite is not involutive (P1)", f, i)
			}
			if e.opposite.vertex != e.tail() || e.vertex != e.opposite.tail() {
				report("face %p: edge %d orientation mismatch with its opposite (P2)", f, i)
			}

			opp := e.opposite
			if opp.face.mark == visible {
				d := f.distanceToPlane(opp.face.centroid)
				if d > tol {
					report("face %p: neighbor across edge %d lies %g above plane, exceeds tolerance %g (P3)", f, i, d, tol)
				}
			}

			next := edges[(i+1)%len(edges)]
			if e.opposite != nil && next.opposite != nil && e.opposite.face == next.opposite.face {
				report("face %p: edges %d and %d share the same opposite face (P5 redundant vertex)", f, i, (i+1)%len(edges))
			}
		}

		for _, v := range f.vertices() {
			d := f.normal.Dot(v.Point) - f.planeOffset
			if d > tol || d < -tol {
				report("face %p: vertex %v is %g off the face plane, exceeds tolerance %g (P6)", f, v.Point, d, tol)
			}
		}
	}

	containmentTol := containmentFactor * tol
	for _, v := range h.vertices {
		for _, f := range surviving {
			d := f.distanceToPlane(v.Point)
			if d > containmentTol {
				report("point %v lies %g above face %p, exceeds containment tolerance %g (P4)", v.Point, d, f, containmentTol)
			}
		}
	}

	return ok
}
