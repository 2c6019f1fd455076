package revision

import (
	"fmt"
	"math"

	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// reducer rewrites elements whose nodes were collapsed into elements built
// from the surviving unique nodes
type reducer struct {
	nodes  []mesh.Node
	minDim int
}

// uniqueNodes returns the distinct node references of an element in order
// of first occurrence
func uniqueNodes(nodes []int) []int {
	u := make([]int, 0, len(nodes))
	for _, n := range nodes {
		dup := false
		for _, m := range u {
			if m == n {
				dup = true
				break
			}
		}
		if !dup {
			u = append(u, n)
		}
	}
	return u
}

// firstCollapsedPair returns the first local node pair i<j referring to the
// same mesh node
func firstCollapsedPair(nodes []int) (i, j int, ok bool) {
	for i = 0; i < len(nodes); i++ {
		for j = i + 1; j < len(nodes); j++ {
			if nodes[i] == nodes[j] {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// reduce decomposes e. An empty result without error means the surviving
// nodes cannot form an element of at least minDim dimensions.
func (r *reducer) reduce(e mesh.Element) ([]mesh.Element, error) {
	if !e.Type.IsLinear() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElementType, e.Type)
	}
	u := uniqueNodes(e.Nodes)
	switch {
	case len(u) == len(e.Nodes):
		return []mesh.Element{r.build(e.Type, e.Material, u...)}, nil
	case len(u) <= 1:
		return nil, fmt.Errorf("%w: %s with %d unique nodes",
			ErrInvariantViolation, e.Type, len(u))
	case len(u) == 2:
		if r.minDim == 1 {
			return []mesh.Element{r.build(utils.Line, e.Material, u...)}, nil
		}
		return nil, nil
	case len(u) == 3:
		if r.minDim < 3 {
			return []mesh.Element{r.build(utils.Triangle, e.Material, u...)}, nil
		}
		return nil, nil
	}

	switch e.Type {
	case utils.Hex:
		for i, d := range hexDiametral {
			if e.Nodes[i] == e.Nodes[d] {
				return nil, fmt.Errorf("%w: hexahedron nodes %d and %d are diametral",
					ErrUnsupportedDegeneracy, i, d)
			}
		}
		switch len(u) {
		case 7:
			return r.hex7(e)
		case 6:
			return r.hex6(e, u)
		case 5:
			return r.hex5(e, u)
		case 4:
			return r.fourNode(u, e.Material, r.minDim), nil
		}
	case utils.Prism:
		switch len(u) {
		case 5:
			return r.prism5(e)
		case 4:
			return r.fourNode(u, e.Material, r.minDim), nil
		}
	case utils.Pyramid:
		if len(u) == 4 {
			return r.fourNode(u, e.Material, r.minDim), nil
		}
	}
	return nil, fmt.Errorf("%w: %s with %d unique nodes",
		ErrUnsupportedDegeneracy, e.Type, len(u))
}

// hex7 splits a hexahedron with one collapsed edge into a pyramid on the
// cutting quad of that edge and the prism behind it
func (r *reducer) hex7(e mesh.Element) ([]mesh.Element, error) {
	i, j, _ := firstCollapsedPair(e.Nodes)
	q, ok := hexCuttingQuad(i, j)
	if !ok {
		return nil, fmt.Errorf("%w: hexahedron nodes %d and %d do not share an edge",
			ErrUnsupportedDegeneracy, i, j)
	}
	x, y := hexDiametral[j], hexDiametral[i]
	if !utils.Hex.IsLocalEdge(q[0], x) {
		x, y = y, x
	}
	return []mesh.Element{
		r.local(utils.Pyramid, e, q[0], q[1], q[2], q[3], i),
		r.local(utils.Prism, e, q[0], q[3], x, q[1], q[2], y),
	}, nil
}

func (r *reducer) hex6(e mesh.Element, u []int) ([]mesh.Element, error) {
	// a face with two opposite edges collapsed turns the hexahedron into a prism
	for i := 0; i < e.NumFaces(); i++ {
		face, err := e.Face(i)
		if err != nil {
			return nil, err
		}
		fn, lf := face.Nodes, utils.Hex.GetLocalFaces()[i]
		switch {
		case fn[0] == fn[1] && fn[2] == fn[3]:
			return []mesh.Element{r.hexFacePrism(e, lf[0], lf[1], lf[2], lf[3])}, nil
		case fn[0] == fn[3] && fn[1] == fn[2]:
			return []mesh.Element{r.hexFacePrism(e, lf[1], lf[2], lf[3], lf[0])}, nil
		}
	}

	same := func(a, b int) bool { return e.Nodes[a] == e.Nodes[b] }

	var pairs [][2]int
	for i := 0; i < 8 && len(pairs) < 2; i++ {
		for j := i + 1; j < 8 && len(pairs) < 2; j++ {
			if same(i, j) && utils.Hex.IsLocalEdge(i, j) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	if len(pairs) < 2 {
		return nil, fmt.Errorf("%w: hexahedron with collapsed nodes off its edges",
			ErrUnsupportedDegeneracy)
	}
	b, ok := hexBackNodes(pairs[0][0], pairs[0][1], pairs[1][0], pairs[1][1])
	if !ok {
		return nil, fmt.Errorf("%w: hexahedron edges %v and %v", ErrUnsupportedDegeneracy, pairs[0], pairs[1])
	}
	cp, ok := hexCuttingQuad(b[0], b[1])
	if !ok {
		return nil, fmt.Errorf("%w: hexahedron edges %v and %v", ErrUnsupportedDegeneracy, pairs[0], pairs[1])
	}
	d := hexDiametral
	prisms := []mesh.Element{
		r.local(utils.Prism, e, b[0], cp[0], cp[3], b[1], cp[1], cp[2]),
		r.local(utils.Prism, e, d[b[1]], cp[0], cp[3], d[b[0]], cp[1], cp[2]),
	}
	var out []mesh.Element
	for _, p := range prisms {
		if len(uniqueNodes(p.Nodes)) == p.NumNodes() {
			out = append(out, p)
			continue
		}
		els, err := r.reduce(p)
		if err != nil {
			return nil, err
		}
		out = append(out, els...)
	}
	return r.fillsHull(u, e.Material, out), nil
}

// hexFacePrism builds the prism left when face a,b,c,d has a≡b and c≡d
func (r *reducer) hexFacePrism(e mesh.Element, a, b, c, d int) mesh.Element {
	dm := hexDiametral
	return r.local(utils.Prism, e, a, dm[d], dm[c], d, dm[a], dm[b])
}

func (r *reducer) hex5(e mesh.Element, u []int) ([]mesh.Element, error) {
	base := r.fourNode(u[:4], e.Material, 1)
	apex := u[4]
	if len(base) != 1 {
		return nil, fmt.Errorf("%w: hexahedron base", ErrUnsupportedDegeneracy)
	}
	b := base[0].Nodes
	out := []mesh.Element{base[0], r.build(utils.Tet, e.Material, b[1], b[2], b[3], apex)}
	if base[0].Type == utils.Quad {
		out = []mesh.Element{
			r.build(utils.Tet, e.Material, b[0], b[1], b[2], apex),
			r.build(utils.Tet, e.Material, b[0], b[2], b[3], apex),
		}
	}
	return r.fillsHull(u, e.Material, out), nil
}

// hullTolerance is the relative volume mismatch accepted by fillsHull
const hullTolerance = 1.e-9

// fillsHull returns els when their volume matches the convex hull of the
// unique nodes u and a tetrahedralization of the hull otherwise. Overlapping
// elements show up as excess volume.
func (r *reducer) fillsHull(u []int, material int, els []mesh.Element) []mesh.Element {
	hull := r.hullTets(u, material)
	var vHull, vEls float64
	for _, t := range hull {
		vHull += t.Content(r.nodes)
	}
	if vHull < utils.NODETOL {
		return els
	}
	for _, e := range els {
		if e.Dimension() != 3 {
			return hull
		}
		vEls += e.Content(r.nodes)
	}
	if math.Abs(vEls-vHull) > hullTolerance*vHull {
		return hull
	}
	return els
}

// hullTets joins the first of the nodes u to every triangle of their convex
// hull not containing it
func (r *reducer) hullTets(u []int, material int) (out []mesh.Element) {
	pts := make([]r3.Vec, len(u))
	for i, n := range u {
		pts[i] = r.nodes[n].Coords
	}
	for _, tr := range utils.HullTriangles(pts) {
		if tr[0] == 0 || tr[1] == 0 || tr[2] == 0 {
			continue
		}
		t := r.build(utils.Tet, material, u[0], u[tr[0]], u[tr[1]], u[tr[2]])
		if t.Content(r.nodes) >= utils.NODETOL {
			out = append(out, t)
		}
	}
	return
}

func (r *reducer) prism5(e mesh.Element) ([]mesh.Element, error) {
	i, j, _ := firstCollapsedPair(e.Nodes)
	if i%3 == j%3 {
		// lateral edge, the rest is a pyramid on the opposite quad face
		a, b := (i+1)%3, (i+2)%3
		return []mesh.Element{
			r.local(utils.Tet, e, a, b, i, a+3),
			r.local(utils.Tet, e, a+3, b, i, b+3),
		}, nil
	}
	k, ok := prismThirdNode(i, j)
	if !ok {
		return nil, fmt.Errorf("%w: prism nodes %d and %d on opposite caps",
			ErrUnsupportedDegeneracy, i, j)
	}
	off := 3
	if i > 2 {
		off = -3
	}
	l := i
	p := e.Coords(r.nodes)
	if utils.IsCoplanar(p[i+off], p[k+off], p[i], p[k]) {
		l = j
	}
	return []mesh.Element{
		r.local(utils.Tet, e, i+off, j+off, k+off, i),
		r.local(utils.Tet, e, l+off, k+off, i, k),
	}, nil
}

// fourNode builds a quad from four coplanar nodes when minDim allows it and
// a tetrahedron otherwise
func (r *reducer) fourNode(u []int, material, minDim int) []mesh.Element {
	p0, p1, p2, p3 := r.nodes[u[0]].Coords, r.nodes[u[1]].Coords, r.nodes[u[2]].Coords, r.nodes[u[3]].Coords
	if !utils.IsCoplanar(p0, p1, p2, p3) {
		return []mesh.Element{r.build(utils.Tet, material, u[0], u[1], u[2], u[3])}
	}
	if minDim == 3 {
		return nil
	}
	q := r.build(utils.Quad, material, u[0], u[1], u[2], u[3])
	if !q.Validate(r.nodes).Valid() {
		q.Nodes[1], q.Nodes[2] = q.Nodes[2], q.Nodes[1]
		if !q.Validate(r.nodes).Valid() {
			q.Nodes[2], q.Nodes[3] = q.Nodes[3], q.Nodes[2]
		}
	}
	return []mesh.Element{q}
}

// local builds an element from local node positions of e
func (r *reducer) local(et utils.ElementType, e mesh.Element, ln ...int) mesh.Element {
	nodes := make([]int, len(ln))
	for i, l := range ln {
		nodes[i] = e.Nodes[l]
	}
	return r.build(et, e.Material, nodes...)
}

func (r *reducer) build(et utils.ElementType, material int, nodes ...int) mesh.Element {
	return orient(mesh.Element{
		Type:     et,
		Nodes:    append([]int(nil), nodes...),
		Material: material,
	}, r.nodes)
}

// orient flips solid elements whose node order gives inward face normals
func orient(e mesh.Element, nodes []mesh.Node) mesh.Element {
	p := e.Coords(nodes)
	n := e.Nodes
	switch e.Type {
	case utils.Tet:
		if utils.SignedTetVolume(p[0], p[1], p[2], p[3]) < 0 {
			n[1], n[2] = n[2], n[1]
		}
	case utils.Pyramid:
		c := utils.Centroid(p[:4]...)
		if r3.Dot(utils.QuadNormal(p[0], p[1], p[2], p[3]), r3.Sub(p[4], c)) < 0 {
			n[1], n[3] = n[3], n[1]
		}
	case utils.Prism:
		c0, c1 := utils.Centroid(p[:3]...), utils.Centroid(p[3:]...)
		if r3.Dot(utils.TriNormal(p[0], p[1], p[2]), r3.Sub(c1, c0)) < 0 {
			n[1], n[2], n[4], n[5] = n[2], n[1], n[5], n[4]
		}
	}
	return e
}
