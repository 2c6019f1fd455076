package revision

import (
	"math"
	"sort"

	"github.com/notargets/meshrev/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultGridCellCapacity is the mean number of points per grid cell
const DefaultGridCellCapacity = 64

// grid is a uniform bucketing of points over their bounding box
type grid struct {
	min   [3]float64
	step  [3]float64
	n     [3]int
	cells [][]int
}

func newGrid(pts []r3.Vec, cellCapacity int) *grid {
	if cellCapacity < 1 {
		cellCapacity = DefaultGridCellCapacity
	}
	g := &grid{n: [3]int{1, 1, 1}}
	if len(pts) == 0 {
		g.cells = make([][]int, 1)
		return g
	}
	lo, hi := utils.Bounds(pts)
	g.min = vecArray(lo)
	ext := vecArray(r3.Sub(hi, lo))

	nCells := len(pts) / cellCapacity
	if nCells > 1 {
		h := cellSize(ext, float64(nCells))
		for d := 0; d < 3; d++ {
			if h > 0 && ext[d] >= h {
				g.n[d] = int(math.Ceil(ext[d] / h))
			}
		}
	}
	for d := 0; d < 3; d++ {
		if g.n[d] > 1 {
			g.step[d] = ext[d] / float64(g.n[d])
		}
	}
	g.cells = make([][]int, g.n[0]*g.n[1]*g.n[2])
	for i, p := range pts {
		c := g.cellOf(vecArray(p))
		ci := g.flat(c)
		g.cells[ci] = append(g.cells[ci], i)
	}
	return g
}

// cellSize picks the cell edge giving about nCells cells over the extents.
// Axes much thinner than a cell are treated as flat and get a single cell.
func cellSize(ext [3]float64, nCells float64) float64 {
	axes := []int{0, 1, 2}
	sort.Slice(axes, func(i, j int) bool { return ext[axes[i]] > ext[axes[j]] })
	for dims := 3; dims >= 1; dims-- {
		vol := 1.
		for _, d := range axes[:dims] {
			vol *= ext[d]
		}
		h := math.Pow(vol/nCells, 1./float64(dims))
		if h > 0 && ext[axes[dims-1]] >= h {
			return h
		}
	}
	return 0
}

func (g *grid) cellOf(p [3]float64) (c [3]int) {
	for d := 0; d < 3; d++ {
		if g.n[d] == 1 {
			continue
		}
		i := int((p[d] - g.min[d]) / g.step[d])
		switch {
		case i < 0:
			i = 0
		case i >= g.n[d]:
			i = g.n[d] - 1
		}
		c[d] = i
	}
	return
}

func (g *grid) flat(c [3]int) int {
	return c[0] + g.n[0]*(c[1]+g.n[1]*c[2])
}

func (g *grid) visit(p r3.Vec, radius float64, fn func(n int)) {
	r := r3.Vec{X: radius, Y: radius, Z: radius}
	lo, hi := g.cellOf(vecArray(r3.Sub(p, r))), g.cellOf(vecArray(r3.Add(p, r)))
	for k := lo[2]; k <= hi[2]; k++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for i := lo[0]; i <= hi[0]; i++ {
				for _, n := range g.cells[g.flat([3]int{i, j, k})] {
					fn(n)
				}
			}
		}
	}
}

func vecArray(v r3.Vec) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }
