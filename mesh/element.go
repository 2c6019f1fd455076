package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/meshrev/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// Element is a linear element. Nodes holds indices into the owning mesh's
// node slice, in the local order of the element type.
type Element struct {
	Type     utils.ElementType
	Nodes    []int
	Material int
}

// NewElement copies nodes into a new element, checking the count against the
// element type.
func NewElement(et utils.ElementType, nodes []int, material int) (Element, error) {
	if !et.IsLinear() {
		return Element{}, fmt.Errorf("%w: %s", ErrUnknownElementType, et)
	}
	if len(nodes) != et.GetNumNodes() {
		return Element{}, fmt.Errorf("%s element needs %d nodes, got %d",
			et, et.GetNumNodes(), len(nodes))
	}
	return Element{
		Type:     et,
		Nodes:    append([]int(nil), nodes...),
		Material: material,
	}, nil
}

func (e Element) NumNodes() int  { return len(e.Nodes) }
func (e Element) Dimension() int { return e.Type.GetDimension() }
func (e Element) NumFaces() int  { return e.Type.GetNumFaces() }
func (e Element) Node(i int) int { return e.Nodes[i] }

// IsEdge reports whether local nodes i and j are joined by an element edge
func (e Element) IsEdge(i, j int) bool {
	return e.Type.IsLocalEdge(i, j)
}

// Face returns face i as a transient element of the face type. Faces of 2D
// elements are their bounding lines.
func (e Element) Face(i int) (Element, error) {
	ft := e.Type.GetFaceType(i)
	if ft == utils.Unknown {
		return Element{}, fmt.Errorf("%s element has no face %d", e.Type, i)
	}
	local := e.Type.GetLocalFaces()[i]
	nodes := make([]int, len(local))
	for k, ln := range local {
		nodes[k] = e.Nodes[ln]
	}
	return Element{Type: ft, Nodes: nodes, Material: e.Material}, nil
}

// Coords gathers the coordinates of e's nodes
func (e Element) Coords(nodes []Node) []r3.Vec {
	p := make([]r3.Vec, len(e.Nodes))
	for i, n := range e.Nodes {
		p[i] = nodes[n].Coords
	}
	return p
}

func (e Element) Centroid(nodes []Node) r3.Vec {
	return utils.Centroid(e.Coords(nodes)...)
}

// Content returns the length, area or volume of e
func (e Element) Content(nodes []Node) float64 {
	return content(e.Type, e.Coords(nodes))
}

func content(et utils.ElementType, p []r3.Vec) float64 {
	tv := utils.TetVolume
	switch et {
	case utils.Line:
		return math.Sqrt(utils.SqrDist(p[0], p[1]))
	case utils.Triangle:
		return utils.TriArea(p[0], p[1], p[2])
	case utils.Quad:
		return utils.TriArea(p[0], p[1], p[2]) + utils.TriArea(p[0], p[2], p[3])
	case utils.Tet:
		return tv(p[0], p[1], p[2], p[3])
	case utils.Pyramid:
		return tv(p[0], p[1], p[2], p[4]) + tv(p[0], p[2], p[3], p[4])
	case utils.Prism:
		return tv(p[0], p[1], p[2], p[3]) + tv(p[1], p[4], p[2], p[3]) + tv(p[2], p[4], p[5], p[3])
	case utils.Hex:
		return tv(p[4], p[7], p[5], p[0]) + tv(p[5], p[3], p[1], p[0]) + tv(p[5], p[7], p[3], p[0]) +
			tv(p[5], p[7], p[6], p[2]) + tv(p[1], p[3], p[5], p[2]) + tv(p[3], p[7], p[5], p[2])
	}
	return 0
}

// Validate checks the geometry of e against the mesh nodes
func (e Element) Validate(nodes []Node) (ec ErrorCode) {
	p := e.Coords(nodes)
	if content(e.Type, p) < utils.NODETOL {
		ec |= ZeroVolume
	}
	switch e.Type {
	case utils.Quad:
		ec |= validateQuad(p[0], p[1], p[2], p[3])
	case utils.Tet, utils.Hex, utils.Prism, utils.Pyramid:
		c := utils.Centroid(p...)
		for _, face := range e.Type.GetLocalFaces() {
			var n r3.Vec
			if len(face) == 4 {
				a, b, cc, d := p[face[0]], p[face[1]], p[face[2]], p[face[3]]
				ec |= validateQuad(a, b, cc, d) &^ ZeroVolume
				n = utils.QuadNormal(a, b, cc, d)
			} else {
				n = utils.TriNormal(p[face[0]], p[face[1]], p[face[2]])
			}
			if r3.Dot(n, r3.Sub(c, p[face[0]])) > 0 {
				ec |= NodeOrder
			}
		}
	}
	return
}

func validateQuad(p0, p1, p2, p3 r3.Vec) (ec ErrorCode) {
	if utils.TriArea(p0, p1, p2)+utils.TriArea(p0, p2, p3) < utils.NODETOL {
		ec |= ZeroVolume
	}
	if !utils.IsCoplanar(p0, p1, p2, p3) {
		ec |= NonCoplanar
	}
	if !utils.IsConvexQuad(p0, p1, p2, p3) {
		ec |= NonConvex
	}
	return
}
