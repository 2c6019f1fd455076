package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	o  = r3.Vec{}
	ex = r3.Vec{X: 1}
	ey = r3.Vec{Y: 1}
	ez = r3.Vec{Z: 1}
)

func TestVolumesAndAreas(t *testing.T) {
	assert.InDelta(t, 0.5, TriArea(o, ex, ey), 1e-15)
	assert.InDelta(t, 1./6., SignedTetVolume(o, ex, ey, ez), 1e-15)
	assert.InDelta(t, -1./6., SignedTetVolume(o, ey, ex, ez), 1e-15)
	assert.InDelta(t, 1./6., TetVolume(o, ey, ex, ez), 1e-15)
	assert.Equal(t, 0.0, TetVolume(o, ex, ex, ez))
	assert.InDelta(t, 2., SqrDist(ex, ey), 1e-15)
}

func TestIsCoplanar(t *testing.T) {
	xy := r3.Vec{X: 1, Y: 1}
	assert.True(t, IsCoplanar(o, ex, xy, ey))
	assert.False(t, IsCoplanar(o, ex, xy, r3.Vec{Y: 1, Z: 0.1}))
	// independent of scale
	s := 1.e-4
	assert.True(t, IsCoplanar(o, r3.Scale(s, ex), r3.Scale(s, xy), r3.Scale(s, ey)))
	assert.False(t, IsCoplanar(o, r3.Scale(s, ex), r3.Scale(s, xy), r3.Vec{Y: s, Z: 0.1 * s}))
	// coincident points are trivially coplanar
	assert.True(t, IsCoplanar(o, o, ex, ez))
}

func TestIsConvexQuad(t *testing.T) {
	xy := r3.Vec{X: 1, Y: 1}
	assert.True(t, IsConvexQuad(o, ex, xy, ey))
	// bow tie
	assert.False(t, IsConvexQuad(o, xy, ex, ey))
	// dart, corner 2 pushed inside
	assert.False(t, IsConvexQuad(o, ex, r3.Vec{X: 0.25, Y: 0.25}, ey))
	// degenerate, two corners coincide
	assert.False(t, IsConvexQuad(o, ex, ex, ey))
}

func TestNormalsAndCentroid(t *testing.T) {
	xy := r3.Vec{X: 1, Y: 1}
	assert.Equal(t, r3.Vec{Z: 1}, TriNormal(o, ex, ey))
	n := QuadNormal(o, ex, xy, ey)
	assert.True(t, n.Z > 0)
	assert.Equal(t, 0.0, n.X)
	assert.Equal(t, r3.Vec{X: 0.5, Y: 0.5}, Centroid(o, ex, xy, ey))
	assert.Equal(t, r3.Vec{}, Centroid())
}

func TestBounds(t *testing.T) {
	min, max := Bounds([]r3.Vec{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 5, Z: 0}, {}})
	assert.Equal(t, r3.Vec{X: -1, Y: -2, Z: 0}, min)
	assert.Equal(t, r3.Vec{X: 1, Y: 5, Z: 3}, max)
}

func TestHullTriangles(t *testing.T) {
	cube := []r3.Vec{o, ex, {X: 1, Y: 1}, ey, ez, {X: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {Y: 1, Z: 1}}
	tris := HullTriangles(cube)
	assert.Len(t, tris, 12)
	var area, volume float64
	c := Centroid(cube...)
	for _, tr := range tris {
		area += TriArea(cube[tr[0]], cube[tr[1]], cube[tr[2]])
		volume += TetVolume(c, cube[tr[0]], cube[tr[1]], cube[tr[2]])
	}
	assert.InDelta(t, 6., area, 1e-12)
	assert.InDelta(t, 1., volume, 1e-12)

	// an interior point is on no hull triangle
	tet := []r3.Vec{o, ex, ey, ez, {X: 0.1, Y: 0.1, Z: 0.1}}
	tris = HullTriangles(tet)
	assert.Len(t, tris, 4)
	for _, tr := range tris {
		assert.NotContains(t, tr[:], 4)
	}

	assert.Nil(t, HullTriangles([]r3.Vec{o, ex, {X: 1, Y: 1}, ey}))
	assert.Nil(t, HullTriangles([]r3.Vec{o, ex, ey}))
}
