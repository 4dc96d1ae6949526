package quickhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexListAddAndOrder(t *testing.T) {
	var l VertexList
	require.True(t, l.isEmpty())

	v1, v2, v3 := newTestVertex(0, 0, 0, 0), newTestVertex(1, 0, 0, 1), newTestVertex(2, 0, 0, 2)
	l.add(v1)
	l.add(v2)
	l.add(v3)

	assert.Same(t, v1, l.first())
	assert.Same(t, v2, v1.next)
	assert.Same(t, v3, v2.next)
	assert.Nil(t, v3.next)
	assert.Same(t, v3, l.tail)
}

func TestVertexListDelete(t *testing.T) {
	var l VertexList
	v1, v2, v3 := newTestVertex(0, 0, 0, 0), newTestVertex(1, 0, 0, 1), newTestVertex(2, 0, 0, 2)
	l.add(v1)
	l.add(v2)
	l.add(v3)

	l.delete(v2)
	assert.Same(t, v3, v1.next)
	assert.Same(t, v1, v3.prev)
	assert.Same(t, v3, l.tail)

	l.delete(v1)
	assert.Same(t, v3, l.first())
	assert.Nil(t, v3.prev)

	l.delete(v3)
	assert.True(t, l.isEmpty())
}

func TestVertexListDeleteRun(t *testing.T) {
	var l VertexList
	vs := make([]*Vertex, 5)
	for i := range vs {
		vs[i] = newTestVertex(float64(i), 0, 0, i)
		l.add(vs[i])
	}

	l.deleteRun(vs[1], vs[3])
	assert.Same(t, vs[4], vs[0].next)
	assert.Same(t, vs[0], vs[4].prev)
}

func TestVertexListInsertBefore(t *testing.T) {
	var l VertexList
	v1, v2 := newTestVertex(0, 0, 0, 0), newTestVertex(1, 0, 0, 1)
	l.add(v1)
	l.add(v2)

	newHead := newTestVertex(-1, 0, 0, 2)
	l.insertBefore(newHead, v1)

	assert.Same(t, newHead, l.first())
	assert.Same(t, v1, newHead.next)
}

func TestAddPointToFaceBecomesNewHead(t *testing.T) {
	a := newTestVertex(0, 0, 0, 0)
	b := newTestVertex(1, 0, 0, 1)
	c := newTestVertex(0, 1, 0, 2)
	face := newTriangle(a, b, c)

	var claimed VertexList
	v1 := newTestVertex(0, 0, 1, 3)
	v2 := newTestVertex(0, 0, 2, 4)

	addPointToFace(v1, face, &claimed)
	assert.Same(t, v1, face.outside)

	addPointToFace(v2, face, &claimed)
	assert.Same(t, v2, face.outside, "newcomer becomes the new run head")
	assert.Same(t, v2, claimed.first())
	assert.Same(t, v1, v2.next)
}

func TestRemoveAllPointsFromFace(t *testing.T) {
	a := newTestVertex(0, 0, 0, 0)
	b := newTestVertex(1, 0, 0, 1)
	c := newTestVertex(0, 1, 0, 2)
	face := newTriangle(a, b, c)
	other := newTriangle(a, c, b)

	var claimed VertexList
	v1 := newTestVertex(0, 0, 1, 3)
	v2 := newTestVertex(0, 0, 2, 4)
	vOther := newTestVertex(0, 0, 3, 5)

	addPointToFace(v1, face, &claimed)
	addPointToFace(v2, face, &claimed)
	addPointToFace(vOther, other, &claimed)

	head, tail := removeAllPointsFromFace(face, &claimed)
	assert.Same(t, v2, head)
	assert.Same(t, v1, tail)
	assert.Nil(t, face.outside)
	assert.Same(t, vOther, claimed.first())
}

func TestNextPointToAddRestrictsToFirstFaceRun(t *testing.T) {
	a := newTestVertex(0, 0, 0, 0)
	b := newTestVertex(1, 0, 0, 1)
	c := newTestVertex(0, 1, 0, 2)
	face := newTriangle(a, b, c)
	other := newTriangle(a, c, b)

	var claimed VertexList
	near := newTestVertex(0.25, 0.25, 1, 3)
	far := newTestVertex(0.25, 0.25, 5, 4)
	addPointToFace(near, face, &claimed)
	addPointToFace(far, face, &claimed)

	elsewhere := newTestVertex(0, 0, 100, 5)
	addPointToFace(elsewhere, other, &claimed)

	best := claimed.nextPointToAdd()
	assert.Same(t, far, best)
}
