package revision

import (
	"fmt"
	"strings"

	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// IndexKind selects the spatial index used to find nodes within tolerance
type IndexKind int

const (
	GridIndex IndexKind = iota
	KDTreeIndex
)

func (k IndexKind) String() string {
	switch k {
	case GridIndex:
		return "grid"
	case KDTreeIndex:
		return "kdtree"
	}
	return fmt.Sprintf("IndexKind(%d)", int(k))
}

func ParseIndexKind(s string) (IndexKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return GridIndex, nil
	case "kdtree", "kd-tree", "kd":
		return KDTreeIndex, nil
	}
	return GridIndex, fmt.Errorf("unknown spatial index %q, expected grid or kdtree", s)
}

// neighborIndex reports indexed points near a query point
type neighborIndex interface {
	// visit calls fn for every indexed point that may lie within radius of
	// p. Points farther away may be reported too.
	visit(p r3.Vec, radius float64, fn func(n int))
}

func newNeighborIndex(kind IndexKind, pts []r3.Vec, cellCapacity int) neighborIndex {
	if kind == KDTreeIndex {
		return newKDIndex(pts)
	}
	return newGrid(pts, cellCapacity)
}

// CollapseMap maps every node to the representative it collapses onto. A
// representative maps to itself.
type CollapseMap []int

// BuildCollapseMap merges nodes closer than eps. Nodes are visited in order
// and only nodes still mapping to themselves become representatives, so the
// earliest node of a cluster wins and the result does not depend on the
// index traversal order.
func BuildCollapseMap(nodes []mesh.Node, eps float64, kind IndexKind, cellCapacity int) CollapseMap {
	cm := make(CollapseMap, len(nodes))
	for i := range cm {
		cm[i] = i
	}
	if len(nodes) == 0 || !(eps > 0) {
		return cm
	}
	pts := make([]r3.Vec, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Coords
	}
	idx := newNeighborIndex(kind, pts, cellCapacity)
	sqrEps := eps * eps
	for k := range pts {
		if cm[k] != k {
			continue
		}
		idx.visit(pts[k], eps, func(t int) {
			if cm[t] != t || cm[k] == cm[t] {
				return
			}
			if utils.SqrDist(pts[k], pts[t]) < sqrEps {
				cm[t] = k
			}
		})
	}
	return cm
}

func (cm CollapseMap) Representative(i int) int { return cm[i] }

// NumCollapsed is the number of nodes mapped onto another node
func (cm CollapseMap) NumCollapsed() (n int) {
	for i, r := range cm {
		if i != r {
			n++
		}
	}
	return
}

// Index numbers the representatives densely in node order and maps every
// node to the number of its representative.
func (cm CollapseMap) Index() (index []int, nSurvivors int) {
	index = make([]int, len(cm))
	for i, r := range cm {
		if i == r {
			index[i] = nSurvivors
			nSurvivors++
		}
	}
	for i, r := range cm {
		if i != r {
			index[i] = index[r]
		}
	}
	return
}

// constructNewNodes copies the representatives into a new node slice and
// returns the old to new node index.
func constructNewNodes(nodes []mesh.Node, cm CollapseMap) ([]mesh.Node, []int) {
	index, n := cm.Index()
	newNodes := make([]mesh.Node, n)
	for i, r := range cm {
		if i == r {
			newNodes[index[i]] = mesh.Node{ID: index[i], Coords: nodes[i].Coords}
		}
	}
	return newNodes, index
}
