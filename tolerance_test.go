package quickhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeExtent(t *testing.T) {
	points := []Point3D{
		{-1, 2, -3},
		{4, -5, 6},
		{0, 0, 0},
	}
	e := computeExtent(points)
	assert.Equal(t, Point3D{-1, -5, -3}, e.min)
	assert.Equal(t, Point3D{4, 2, 6}, e.max)
}

func TestMaxAbsByAxis(t *testing.T) {
	e := extent{min: Point3D{-9, 1, -2}, max: Point3D{3, -8, 5}}
	assert.Equal(t, Point3D{9, 8, 5}, e.maxAbsByAxis())
}

func TestGreatestExtentAxis(t *testing.T) {
	e := extent{min: Point3D{0, 0, 0}, max: Point3D{1, 5, 2}}
	axis, span := e.greatestExtentAxis()
	assert.Equal(t, 1, axis)
	assert.Equal(t, 5.0, span)
}

func TestEstimateToleranceFormula(t *testing.T) {
	points := []Point3D{
		{-10, 0, 0},
		{10, 0, 0},
		{0, 5, 0},
		{0, 0, -3},
	}
	got := estimateTolerance(points)
	want := 3 * machineEpsilon * (10 + 5 + 3)
	assert.InDelta(t, want, got, 1e-30)
}

func TestEstimateToleranceScalesWithInputMagnitude(t *testing.T) {
	small := estimateTolerance([]Point3D{{0, 0, 0}, {1, 1, 1}})
	large := estimateTolerance([]Point3D{{0, 0, 0}, {1000, 1000, 1000}})
	assert.Greater(t, large, small)
}
