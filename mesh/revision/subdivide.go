package revision

import (
	"fmt"

	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/utils"
)

// Local node groups of the children each element type is split into
var (
	quadTriangles = [][]int{{0, 1, 2}, {0, 2, 3}}
	pyramidTets   = [][]int{{0, 1, 2, 4}, {0, 2, 3, 4}}
	prismTets     = [][]int{{0, 1, 2, 3}, {3, 2, 4, 5}, {2, 1, 3, 4}}
	hexPrisms     = [][]int{{0, 2, 1, 4, 6, 5}, {4, 6, 7, 0, 2, 3}}
)

// subdivide splits e into triangles or tetrahedra, whose faces are planar
// by construction. Hexahedra are split into two prisms first.
func subdivide(e mesh.Element, nodes []mesh.Node) ([]mesh.Element, error) {
	var (
		childType utils.ElementType
		groups    [][]int
	)
	switch e.Type {
	case utils.Quad:
		childType, groups = utils.Triangle, quadTriangles
	case utils.Pyramid:
		childType, groups = utils.Tet, pyramidTets
	case utils.Prism:
		childType, groups = utils.Tet, prismTets
	case utils.Hex:
		childType, groups = utils.Prism, hexPrisms
	default:
		return nil, fmt.Errorf("%w: no subdivision for %s", ErrUnknownElementType, e.Type)
	}
	var out []mesh.Element
	for _, g := range groups {
		child := mesh.Element{Type: childType, Nodes: make([]int, len(g)), Material: e.Material}
		for i, ln := range g {
			child.Nodes[i] = e.Nodes[ln]
		}
		child = orient(child, nodes)
		if childType == utils.Prism {
			sub, err := subdivide(child, nodes)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			continue
		}
		out = append(out, child)
	}
	return out, nil
}
