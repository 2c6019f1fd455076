package mesh

import (
	"fmt"

	"github.com/notargets/meshrev/utils"
)

// TestMeshes provides a collection of standard test meshes shared by the
// mesh, reader and revision tests
type TestMeshes struct {
	// Node definitions
	CubeNodes NodeSet

	// Element definitions
	SingleTet     ElementSet
	SingleHex     ElementSet
	SinglePrism   ElementSet
	SinglePyramid ElementSet
	SingleQuad    ElementSet

	// Complete mesh definitions
	TwoTetMesh CompleteMesh
	MixedMesh  CompleteMesh
	CubeMesh   CompleteMesh
}

// NodeSet represents a set of nodes with their coordinates
type NodeSet struct {
	Nodes   [][]float64    // Coordinates [N][3]
	NodeMap map[string]int // Logical name -> array index
}

// ElementSet represents a set of elements with connectivity
type ElementSet struct {
	Type      utils.ElementType
	Elements  [][]string // Connectivity using logical node names
	Materials []int      // Material per element, zero when absent
}

// CompleteMesh represents a complete mesh with nodes and elements
type CompleteMesh struct {
	Nodes     NodeSet
	Elements  []ElementSet
	Dimension int
}

// GetStandardTestMeshes returns a set of standard test meshes
func GetStandardTestMeshes() *TestMeshes {
	tm := &TestMeshes{}
	tm.CubeNodes = createCubeNodes()

	tm.SingleTet = ElementSet{
		Type:      utils.Tet,
		Elements:  [][]string{{"origin", "x", "y", "z"}},
		Materials: []int{1},
	}
	tm.SingleHex = ElementSet{
		Type:      utils.Hex,
		Elements:  [][]string{{"origin", "x", "xy", "y", "z", "xz", "xyz", "yz"}},
		Materials: []int{1},
	}
	tm.SinglePrism = ElementSet{
		Type:      utils.Prism,
		Elements:  [][]string{{"origin", "x", "y", "z", "xz", "yz"}},
		Materials: []int{1},
	}
	tm.SinglePyramid = ElementSet{
		Type:      utils.Pyramid,
		Elements:  [][]string{{"origin", "x", "xy", "y", "center_top"}},
		Materials: []int{1},
	}
	tm.SingleQuad = ElementSet{
		Type:      utils.Quad,
		Elements:  [][]string{{"origin", "x", "xy", "y"}},
		Materials: []int{1},
	}

	tm.TwoTetMesh = CompleteMesh{
		Nodes: tm.CubeNodes,
		Elements: []ElementSet{{
			Type: utils.Tet,
			Elements: [][]string{
				{"origin", "x", "y", "z"},
				{"x", "y", "z", "xyz"},
			},
			Materials: []int{1, 2},
		}},
		Dimension: 3,
	}

	// One element of each 3D type plus a quad
	tm.MixedMesh = CompleteMesh{
		Nodes: tm.CubeNodes,
		Elements: []ElementSet{
			{
				Type: utils.Tet,
				Elements: [][]string{
					{"origin", "x", "y", "z"},
					{"x", "xy", "y", "center"},
				},
				Materials: []int{10, 10},
			},
			tm.SingleHex,
			tm.SinglePrism,
			tm.SinglePyramid,
			tm.SingleQuad,
		},
		Dimension: 3,
	}

	// A cube meshed with 6 tetrahedra
	tm.CubeMesh = CompleteMesh{
		Nodes: tm.CubeNodes,
		Elements: []ElementSet{{
			Type: utils.Tet,
			Elements: [][]string{
				{"origin", "x", "xy", "xyz"},
				{"origin", "xy", "y", "xyz"},
				{"origin", "y", "yz", "xyz"},
				{"origin", "yz", "z", "xyz"},
				{"origin", "z", "xz", "xyz"},
				{"origin", "xz", "x", "xyz"},
			},
		}},
		Dimension: 3,
	}
	return tm
}

func createCubeNodes() NodeSet {
	nodes := [][]float64{
		{0, 0, 0}, // 0: origin
		{1, 0, 0}, // 1: x
		{1, 1, 0}, // 2: xy
		{0, 1, 0}, // 3: y
		{0, 0, 1}, // 4: z
		{1, 0, 1}, // 5: xz
		{1, 1, 1}, // 6: xyz
		{0, 1, 1}, // 7: yz
		// Additional nodes for mixed elements
		{0.5, 0.5, 1},   // 8: center_top
		{0.5, 0.5, 0.5}, // 9: center
	}
	nodeMap := map[string]int{
		"origin": 0, "x": 1, "xy": 2, "y": 3,
		"z": 4, "xz": 5, "xyz": 6, "yz": 7,
		"center_top": 8, "center": 9,
	}
	return NodeSet{
		Nodes:   nodes,
		NodeMap: nodeMap,
	}
}

// NumElements counts the elements of all element sets
func (cm *CompleteMesh) NumElements() (n int) {
	for _, es := range cm.Elements {
		n += len(es.Elements)
	}
	return
}

// ConvertToMesh builds a Mesh with the nodes in NodeSet order and the
// elements in set order
func (cm *CompleteMesh) ConvertToMesh(name string) (*Mesh, error) {
	nodes := make([]Node, len(cm.Nodes.Nodes))
	for i, c := range cm.Nodes.Nodes {
		nodes[i] = NewNode(i, c[0], c[1], c[2])
	}
	var elements []Element
	for _, es := range cm.Elements {
		for i, elemNodes := range es.Elements {
			idx := make([]int, len(elemNodes))
			for j, nodeName := range elemNodes {
				n, ok := cm.Nodes.NodeMap[nodeName]
				if !ok {
					return nil, fmt.Errorf("unknown node name %q", nodeName)
				}
				idx[j] = n
			}
			var material int
			if i < len(es.Materials) {
				material = es.Materials[i]
			}
			el, err := NewElement(es.Type, idx, material)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
	}
	return NewMesh(name, nodes, elements)
}

// NewRegularHexMesh generates nx*ny*nz unit hexahedra of edge length h with
// the origin at the first corner
func NewRegularHexMesh(nx, ny, nz int, h float64, material int) *Mesh {
	nodes := make([]Node, 0, (nx+1)*(ny+1)*(nz+1))
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				nodes = append(nodes, NewNode(len(nodes), float64(i)*h, float64(j)*h, float64(k)*h))
			}
		}
	}
	id := func(i, j, k int) int { return i + (nx+1)*(j+(ny+1)*k) }
	elements := make([]Element, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				elements = append(elements, Element{
					Type: utils.Hex,
					Nodes: []int{
						id(i, j, k), id(i+1, j, k), id(i+1, j+1, k), id(i, j+1, k),
						id(i, j, k+1), id(i+1, j, k+1), id(i+1, j+1, k+1), id(i, j+1, k+1),
					},
					Material: material,
				})
			}
		}
	}
	return &Mesh{Name: "hex-grid", Nodes: nodes, Elements: elements}
}

// NewRegularQuadMesh generates nx*ny quads of edge length h in the z=0 plane
func NewRegularQuadMesh(nx, ny int, h float64, material int) *Mesh {
	nodes := make([]Node, 0, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			nodes = append(nodes, NewNode(len(nodes), float64(i)*h, float64(j)*h, 0))
		}
	}
	id := func(i, j int) int { return i + (nx+1)*j }
	elements := make([]Element, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			elements = append(elements, Element{
				Type:     utils.Quad,
				Nodes:    []int{id(i, j), id(i+1, j), id(i+1, j+1), id(i, j+1)},
				Material: material,
			})
		}
	}
	return &Mesh{Name: "quad-grid", Nodes: nodes, Elements: elements}
}
