package quickhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedBoundaryRunSingleEdge(t *testing.T) {
	v0 := newTestVertex(0, 0, 0, 0)
	v1 := newTestVertex(1, 0, 0, 1)
	v2 := newTestVertex(0, 1, 0, 2)
	v3 := newTestVertex(0, 0, 1, 3)

	faces, err := stitchTetrahedron(v0, v1, v2, v3)
	require.NoError(t, err)

	edge := faces[0].firstEdge
	neighbor := edge.opposite.face

	lo, hi, err := sharedBoundaryRun(edge, neighbor)
	require.NoError(t, err)
	assert.Same(t, edge, lo)
	assert.Same(t, edge, hi)
	assert.Equal(t, 1, runLength(lo, hi))
}

func TestRunLengthMultipleEdges(t *testing.T) {
	a := newTestVertex(0, 0, 0, 0)
	b := newTestVertex(1, 0, 0, 1)
	c := newTestVertex(2, 0, 0, 2)
	d := newTestVertex(3, 0, 0, 3)
	face := newTriangle(a, b, c)
	_ = d

	edges := face.edges()
	assert.Equal(t, 3, runLength(edges[0], edges[2]))
	assert.Equal(t, 1, runLength(edges[1], edges[1]))
}

// newPolygonFace builds a face from vertices in boundary order (vs[0]->
// vs[1]->...->vs[n-1]->vs[0]), the same convention newTriangle uses for
// n==3, generalized to any n so tests can set up faces wider than a
// triangle without going through a full builder run.
func newPolygonFace(vs []*Vertex) *Face {
	n := len(vs)
	edges := make([]*HalfEdge, n)
	face := &Face{mark: visible}
	for i := range vs {
		edges[i] = &HalfEdge{vertex: vs[(i+1)%n], face: face}
	}
	for i := range edges {
		edges[i].next = edges[(i+1)%n]
		edges[i].prev = edges[(i-1+n)%n]
	}
	face.firstEdge = edges[0]
	face.count = n
	face.computePlane(0)
	return face
}

func findEdge(f *Face, tail, head *Vertex) *HalfEdge {
	for _, e := range f.edges() {
		if e.tail() == tail && e.head() == head {
			return e
		}
	}
	return nil
}

// TestCollapseRedundantVertexKeepsNeighbor covers the branch where the
// opposite face c survives the collapse (its edge count stays >= 3): the
// two surviving edges must become each other's opposite (P1/P2), not keep
// pointing at the discarded edges.
func TestCollapseRedundantVertexKeepsNeighbor(t *testing.T) {
	p := newTestVertex(0, 0, 0, 0)
	m := newTestVertex(1, 0, 0, 1)
	q := newTestVertex(2, 0, 0, 2)
	r := newTestVertex(2, 1, 0, 3)
	s := newTestVertex(1, -1, 0, 4)

	faceA := newPolygonFace([]*Vertex{p, m, q, r})
	faceC := newPolygonFace([]*Vertex{q, m, p, s})

	e1 := findEdge(faceA, p, m)
	e2 := findEdge(faceA, m, q)
	oe1 := findEdge(faceC, m, p)
	oe2 := findEdge(faceC, q, m)
	require.NotNil(t, e1)
	require.NotNil(t, e2)
	require.NotNil(t, oe1)
	require.NotNil(t, oe2)

	connectOpposite(e1, oe1)
	connectOpposite(e2, oe2)

	b := &Builder{tolerance: 1e-9}
	require.NoError(t, b.collapseRedundantVertex(faceA, e1, e2))

	assert.Equal(t, 3, faceA.count)
	assert.Equal(t, 3, faceC.count)
	assert.NotEqual(t, deleted, faceC.mark)

	require.NotNil(t, e1.opposite)
	assert.Same(t, oe2, e1.opposite)
	assert.Same(t, e1, oe2.opposite)
	assert.Same(t, e1, e1.opposite.opposite, "P1: opposite must be involutive")
	assert.Same(t, e1.tail(), e1.opposite.head(), "P2: opposite.vertex == tail(e)")
	assert.Same(t, e1.head(), e1.opposite.tail(), "P2: e.vertex == tail(opposite(e))")
}

// TestCollapseRedundantVertexDeletesDegenerateNeighbor covers the branch
// where the opposite face c collapses to a bigon and is deleted: a's
// surviving edge must bridge across the removed face to the neighbor on
// its far side, per the teacher-faithful connectHalfEdges bridging step.
func TestCollapseRedundantVertexDeletesDegenerateNeighbor(t *testing.T) {
	p := newTestVertex(0, 0, 0, 0)
	m := newTestVertex(1, 0, 0, 1)
	q := newTestVertex(2, 0, 0, 2)
	r := newTestVertex(2, 1, 0, 3)
	far := newTestVertex(1, 1, 0, 4)

	faceA := newPolygonFace([]*Vertex{p, m, q, r})
	faceC := newPolygonFace([]*Vertex{q, m, p}) // triangle: collapses to a bigon
	faceD := newPolygonFace([]*Vertex{q, p, far})

	e1 := findEdge(faceA, p, m)
	e2 := findEdge(faceA, m, q)
	oe1 := findEdge(faceC, m, p)
	oe2 := findEdge(faceC, q, m)
	oe3 := findEdge(faceC, p, q)
	farEdge := findEdge(faceD, q, p)
	require.NotNil(t, e1)
	require.NotNil(t, e2)
	require.NotNil(t, oe1)
	require.NotNil(t, oe2)
	require.NotNil(t, oe3)
	require.NotNil(t, farEdge)

	connectOpposite(e1, oe1)
	connectOpposite(e2, oe2)
	connectOpposite(oe3, farEdge)

	b := &Builder{tolerance: 1e-9}
	require.NoError(t, b.collapseRedundantVertex(faceA, e1, e2))

	assert.Equal(t, deleted, faceC.mark)
	require.NotNil(t, e1.opposite)
	assert.Same(t, farEdge, e1.opposite)
	assert.Same(t, e1, farEdge.opposite)
	assert.Same(t, e1, e1.opposite.opposite, "P1: opposite must be involutive")
}
