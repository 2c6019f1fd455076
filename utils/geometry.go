package utils

import (
	"math"

	geor3 "github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

func SqrDist(a, b r3.Vec) float64 {
	return r3.Norm2(r3.Sub(a, b))
}

// TriArea returns the unsigned area of triangle abc
func TriArea(a, b, c r3.Vec) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

// SignedTetVolume is positive when d lies on the side of triangle abc its
// right-hand normal points to.
func SignedTetVolume(a, b, c, d r3.Vec) float64 {
	ab, ac, ad := r3.Sub(b, a), r3.Sub(c, a), r3.Sub(d, a)
	return r3.Dot(r3.Cross(ab, ac), ad) / 6.
}

func TetVolume(a, b, c, d r3.Vec) float64 {
	return math.Abs(SignedTetVolume(a, b, c, d))
}

// IsCoplanar reports whether the four points lie in one plane. The triple
// product is scaled by the edge lengths so the test is independent of the
// mesh units.
func IsCoplanar(a, b, c, d r3.Vec) bool {
	ab, ac, ad := r3.Sub(b, a), r3.Sub(c, a), r3.Sub(d, a)
	lab, lac, lad := r3.Norm(ab), r3.Norm(ac), r3.Norm(ad)
	if lab < NODETOL || lac < NODETOL || lad < NODETOL {
		return true
	}
	triple := r3.Dot(ab, r3.Cross(ac, ad))
	return math.Abs(triple)/(lab*lac*lad) < COPLANARTOL
}

// DividedByLine reports whether c and d lie strictly on opposite sides of the
// line through a and b, within the plane the four points span.
func DividedByLine(a, b, c, d r3.Vec) bool {
	ab := r3.Sub(b, a)
	nc := r3.Cross(ab, r3.Sub(c, a))
	nd := r3.Cross(ab, r3.Sub(d, a))
	return r3.Dot(nc, nd) < 0
}

// IsConvexQuad reports whether p0-p1-p2-p3 traverses a convex quadrilateral,
// that is both diagonals separate the remaining corners.
func IsConvexQuad(p0, p1, p2, p3 r3.Vec) bool {
	return DividedByLine(p0, p2, p1, p3) && DividedByLine(p1, p3, p0, p2)
}

// QuadNormal returns the (unnormalized) normal of a possibly warped quad from
// the cross product of its diagonals.
func QuadNormal(p0, p1, p2, p3 r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(p2, p0), r3.Sub(p3, p1))
}

// TriNormal returns the right-hand (unnormalized) normal of triangle abc
func TriNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

func Centroid(pts ...r3.Vec) (c r3.Vec) {
	if len(pts) == 0 {
		return
	}
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1./float64(len(pts)), c)
}

// Bounds returns the axis aligned bounding box of pts
func Bounds(pts []r3.Vec) (min, max r3.Vec) {
	if len(pts) == 0 {
		return
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	return
}

// HullTriangles triangulates the boundary of the convex hull of pts, as
// index triples into pts. Points lying in one plane have no hull and give
// nil.
func HullTriangles(pts []r3.Vec) (tris [][3]int) {
	if !spansVolume(pts) {
		return nil
	}
	cloud := make([]geor3.Vector, len(pts))
	for i, p := range pts {
		cloud[i] = geor3.Vector{X: p.X, Y: p.Y, Z: p.Z}
	}
	hull := new(quickhull.QuickHull).ConvexHull(cloud, true, true, COPLANARTOL)
	for k := 0; k+2 < len(hull.Indices); k += 3 {
		tris = append(tris, [3]int{hull.Indices[k], hull.Indices[k+1], hull.Indices[k+2]})
	}
	return
}

// spansVolume reports whether some four of pts are not coplanar
func spansVolume(pts []r3.Vec) bool {
	n := len(pts)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					if !IsCoplanar(pts[a], pts[b], pts[c], pts[d]) {
						return true
					}
				}
			}
		}
	}
	return false
}
