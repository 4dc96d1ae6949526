package quickhull

import (
	"github.com/go-gl/mathgl/mgl64"
)

// minAreaToleranceFactor scales the tolerance-derived minArea passed to
// computePlane for faces built or merged during the main loop (spec.md
// §4.8 leaves the non-zero value unspecified beyond "a small
// tolerance-derived value"; this factor is an engineering choice recorded
// in the design notes rather than a value the source prescribes).
const minAreaToleranceFactor = 4.0

// Builder owns the mutable state of a single hull construction: the input
// vertices, the growing half-edge mesh, and the conflict lists. A Builder
// must not be reused or shared across goroutines (spec.md §5): construct
// one per call to Build.
type Builder struct {
	points []Point3D

	vertices []*Vertex
	faces    []*Face

	claimed   VertexList
	unclaimed VertexList

	tolerance float64
	options   OutputOptions
}

func (b *Builder) minArea() float64 {
	return minAreaToleranceFactor * b.tolerance * b.tolerance
}

// registerFace adds face to the builder's face list. Faces already marked
// deleted (collateral merges) are never passed here; Hull.Result filters
// on mark regardless, as a second line of defense.
func (b *Builder) registerFace(face *Face) {
	b.faces = append(b.faces, face)
}

// Option configures a Build or BuildFlat call.
type Option func(*buildConfig)

type buildConfig struct {
	tolerance     float64
	toleranceSet  bool
	outputOptions OutputOptions
}

// OutputOptions controls the formatting of a BuildResult's polygons.
// Spec.md §4.9/§9 notes these knobs exist in the source only as
// compiled-out literals; they are exposed here as real configuration but
// default to the source's behavior (zero-based, counter-clockwise,
// compacted indexing).
type OutputOptions struct {
	// Clockwise reverses each polygon's winding to clockwise (as seen from
	// outside the hull) instead of the default counter-clockwise.
	Clockwise bool
	// Triangulate splits every polygon into a fan of triangles instead of
	// emitting each face's native boundary.
	Triangulate bool
}

// WithTolerance overrides the automatically estimated distance tolerance
// (spec.md §4.1). Most callers should leave this unset.
func WithTolerance(tolerance float64) Option {
	return func(c *buildConfig) {
		c.tolerance = tolerance
		c.toleranceSet = true
	}
}

// WithOutputOptions overrides the default output formatting.
func WithOutputOptions(o OutputOptions) Option {
	return func(c *buildConfig) {
		c.outputOptions = o
	}
}

// Hull is the result of a successful Build or BuildFlat call. Check only
// reads the mesh, but Result renumbers the vertices' index fields while it
// runs, so Result must not run concurrently with another Result or Check
// call on the same Hull. The BuildResult it returns shares no state with the
// Hull.
type Hull struct {
	faces             []*Face
	vertices          []*Vertex
	tolerance         float64
	distanceTolerance float64
	options           OutputOptions
}

// BuildResult is the externally visible shape of a hull: its vertices, its
// faces as index polygons into those vertices, and the tolerance used to
// build it.
type BuildResult struct {
	Vertices          []Point3D
	Polygons          [][]int
	DistanceTolerance float64
}

// Build constructs the convex hull of points, which must number at least
// four and must not be coincident, colinear, or coplanar.
func Build(points []Point3D, opts ...Option) (*Hull, error) {
	if len(points) < 4 {
		return nil, inputError("insufficient", "less than four input points specified")
	}

	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Builder{
		points: points,
	}
	if cfg.toleranceSet {
		b.tolerance = cfg.tolerance
	} else {
		b.tolerance = estimateTolerance(points)
	}
	b.options = cfg.outputOptions

	b.vertices = make([]*Vertex, len(points))
	for i, p := range points {
		b.vertices[i] = &Vertex{Point: p, index: i}
	}

	if err := b.buildInitialSimplex(); err != nil {
		return nil, err
	}

	if err := b.run(); err != nil {
		return nil, err
	}

	hull := &Hull{
		faces:             b.faces,
		vertices:          b.vertices,
		tolerance:         b.tolerance,
		distanceTolerance: b.tolerance,
		options:           b.options,
	}
	return hull, nil
}

// BuildFlat constructs the convex hull of coords, a flat sequence of
// coordinates interpreted triple-by-triple as points; len(coords) must be a
// multiple of 3 with at least 4 resulting points.
func BuildFlat(coords []float64, opts ...Option) (*Hull, error) {
	if len(coords)%3 != 0 {
		return nil, inputError("insufficient", "less than four input points specified")
	}
	points := make([]Point3D, len(coords)/3)
	for i := range points {
		points[i] = mgl64.Vec3{coords[3*i], coords[3*i+1], coords[3*i+2]}
	}
	return Build(points, opts...)
}

// run drives the main loop of spec.md §4.4-§4.7: repeatedly pick the eye
// point of the first non-empty conflict run, expand the hull past it, and
// merge the result back into a locally convex mesh, until every input
// point is either on the hull or strictly inside it.
func (b *Builder) run() error {
	for {
		eye := b.claimed.nextPointToAdd()
		if eye == nil {
			break
		}

		eyeFace := eye.face
		removePointFromFace(eye, eyeFace, &b.claimed)

		horizon, err := b.computeHorizon(eye.Point, eyeFace)
		if err != nil {
			return err
		}

		newFaces, err := b.addNewFaces(eye, horizon)
		if err != nil {
			return err
		}

		if err := b.mergeNewFaces(newFaces); err != nil {
			return err
		}
	}
	return nil
}

// Result extracts the hull's boundary as a BuildResult, per spec.md §4.9:
// surviving (VISIBLE) faces are walked, their used vertices compacted and
// renumbered in order of first input appearance, and each face emitted as
// an index polygon in the configured winding and granularity.
func (h *Hull) Result() BuildResult {
	for _, v := range h.vertices {
		v.index = -1
	}

	var surviving []*Face
	for _, f := range h.faces {
		if f.mark == visible {
			surviving = append(surviving, f)
		}
	}

	for _, f := range surviving {
		for _, v := range f.vertices() {
			v.index = 0
		}
	}

	var outPoints []Point3D
	for _, v := range h.vertices {
		if v.index == 0 {
			v.index = len(outPoints)
			outPoints = append(outPoints, v.Point)
		}
	}

	polygons := make([][]int, 0, len(surviving))
	for _, f := range surviving {
		verts := f.vertices()
		poly := make([]int, len(verts))
		for i, v := range verts {
			poly[i] = v.index
		}
		if h.options.Clockwise {
			reverseInts(poly)
		}
		if h.options.Triangulate && len(poly) > 3 {
			polygons = append(polygons, triangulateFan(poly)...)
			continue
		}
		polygons = append(polygons, poly)
	}

	return BuildResult{
		Vertices:          outPoints,
		Polygons:          polygons,
		DistanceTolerance: h.distanceTolerance,
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// triangulateFan splits a polygon's index list into a triangle fan anchored
// at its first vertex.
func triangulateFan(poly []int) [][]int {
	tris := make([][]int, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, []int{poly[0], poly[i], poly[i+1]})
	}
	return tris
}
