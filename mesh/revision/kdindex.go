package revision

import (
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// kdPoint is a mesh node position tagged with its node index
type kdPoint struct {
	id int
	x  [3]float64
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.x[d] - c.(kdPoint).x[d]
}

func (p kdPoint) Dims() int { return 3 }

// Distance is the squared Euclidean distance
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	var sum float64
	for d := range p.x {
		dx := p.x[d] - q.x[d]
		sum += dx * dx
	}
	return sum
}

type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p kdPoints) Len() int                      { return len(p) }
func (p kdPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p kdPoints) Pivot(d kdtree.Dim) int {
	return kdPlane{dim: d, pts: p}.Pivot()
}

// kdPlane sorts points along one axis
type kdPlane struct {
	dim kdtree.Dim
	pts kdPoints
}

func (p kdPlane) Len() int           { return len(p.pts) }
func (p kdPlane) Less(i, j int) bool { return p.pts[i].x[p.dim] < p.pts[j].x[p.dim] }
func (p kdPlane) Swap(i, j int)      { p.pts[i], p.pts[j] = p.pts[j], p.pts[i] }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	return kdPlane{dim: p.dim, pts: p.pts[start:end]}
}
func (p kdPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

type kdIndex struct {
	tree *kdtree.Tree
}

func newKDIndex(pts []r3.Vec) *kdIndex {
	kp := make(kdPoints, len(pts))
	for i, p := range pts {
		kp[i] = kdPoint{id: i, x: vecArray(p)}
	}
	return &kdIndex{tree: kdtree.New(kp, false)}
}

func (k *kdIndex) visit(p r3.Vec, radius float64, fn func(n int)) {
	keep := kdtree.NewDistKeeper(radius * radius)
	k.tree.NearestSet(keep, kdPoint{id: -1, x: vecArray(p)})
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			continue
		}
		fn(cd.Comparable.(kdPoint).id)
	}
}
