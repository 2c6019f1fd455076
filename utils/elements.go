package utils

// ElementType represents different finite element types

type ElementType int

const (
	Unknown ElementType = iota
	// 0D elements
	Point
	// 1D elements
	Line
	Line3 // 3-node line (quadratic)
	// 2D elements
	Triangle
	Quad
	Triangle6  // 6-node triangle (quadratic)
	Triangle9  // 9-node triangle
	Triangle10 // 10-node triangle
	Quad8      // 8-node quad (quadratic)
	Quad9      // 9-node quad
	// 3D elements
	Tet
	Hex
	Prism
	Pyramid
	Tet10     // 10-node tetrahedron (quadratic)
	Hex20     // 20-node hexahedron (quadratic)
	Hex27     // 27-node hexahedron
	Prism15   // 15-node prism (quadratic)
	Prism18   // 18-node prism
	Pyramid13 // 13-node pyramid
	Pyramid14 // 14-node pyramid
)

var elementTypeNames = []string{
	"Unknown",
	"Point",
	"Line", "Line3",
	"Triangle", "Quad", "Triangle6", "Triangle9", "Triangle10", "Quad8", "Quad9",
	"Tet", "Hex", "Prism", "Pyramid",
	"Tet10", "Hex20", "Hex27", "Prism15", "Prism18", "Pyramid13", "Pyramid14",
}

// String representation of element types
func (e ElementType) String() string {
	if e >= 0 && int(e) < len(elementTypeNames) {
		return elementTypeNames[e]
	}
	return "Invalid"
}

// ParseElementType is the inverse of String, matching names case-sensitively
func ParseElementType(name string) ElementType {
	for i, n := range elementTypeNames {
		if n == name {
			return ElementType(i)
		}
	}
	return Unknown
}

// IsLinear reports whether the element is one of the seven corner-node-only
// types handled by mesh revision.
func (e ElementType) IsLinear() bool {
	switch e {
	case Line, Triangle, Quad, Tet, Hex, Prism, Pyramid:
		return true
	}
	return false
}

// Linear returns the corner-node element type underlying a higher-order type
func (e ElementType) Linear() ElementType {
	switch e {
	case Line3:
		return Line
	case Triangle6, Triangle9, Triangle10:
		return Triangle
	case Quad8, Quad9:
		return Quad
	case Tet10:
		return Tet
	case Hex20, Hex27:
		return Hex
	case Prism15, Prism18:
		return Prism
	case Pyramid13, Pyramid14:
		return Pyramid
	}
	return e
}

// GetDimension returns the spatial dimension of the element
func (e ElementType) GetDimension() int {
	switch e {
	case Point:
		return 0
	case Line, Line3:
		return 1
	case Triangle, Quad, Triangle6, Triangle9, Triangle10, Quad8, Quad9:
		return 2
	case Tet, Hex, Prism, Pyramid, Tet10, Hex20, Hex27, Prism15, Prism18, Pyramid13, Pyramid14:
		return 3
	default:
		return -1
	}
}

// GetNumNodes returns the number of nodes for each element type
func (e ElementType) GetNumNodes() int {
	switch e {
	case Point:
		return 1
	case Line:
		return 2
	case Line3:
		return 3
	case Triangle:
		return 3
	case Quad:
		return 4
	case Triangle6:
		return 6
	case Triangle9:
		return 9
	case Triangle10:
		return 10
	case Quad8:
		return 8
	case Quad9:
		return 9
	case Tet:
		return 4
	case Hex:
		return 8
	case Prism:
		return 6
	case Pyramid:
		return 5
	case Tet10:
		return 10
	case Hex20:
		return 20
	case Hex27:
		return 27
	case Prism15:
		return 15
	case Prism18:
		return 18
	case Pyramid13:
		return 13
	case Pyramid14:
		return 14
	default:
		return 0
	}
}

// GetNumFaces returns the number of faces for 3D elements and the number of
// bounding edges for 2D elements.
func (e ElementType) GetNumFaces() int {
	return len(localFaces[e.Linear()])
}

// GetNumEdges returns the number of edges of the linear element
func (e ElementType) GetNumEdges() int {
	return len(localEdges[e.Linear()])
}

// GetCornerNodes returns the indices of corner nodes for higher-order elements
func (e ElementType) GetCornerNodes() []int {
	n := e.Linear().GetNumNodes()
	nodes := make([]int, n)
	for i := 0; i < n; i++ {
		nodes[i] = i
	}
	return nodes
}

// Local face tables, outward normals by right-hand rule for the solids. For 2D
// elements the "faces" are the bounding edges.
var localFaces = map[ElementType][][]int{
	Triangle: {{0, 1}, {1, 2}, {2, 0}},
	Quad:     {{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	Tet: {
		{0, 2, 1},
		{0, 1, 3},
		{0, 3, 2},
		{1, 2, 3},
	},
	Hex: {
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	},
	Prism: {
		{0, 2, 1}, // bottom tri
		{3, 4, 5}, // top tri
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{2, 0, 3, 5},
	},
	Pyramid: {
		{0, 3, 2, 1}, // base quad
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	},
}

var localEdges = map[ElementType][][2]int{
	Line:     {{0, 1}},
	Triangle: {{0, 1}, {1, 2}, {2, 0}},
	Quad:     {{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	Tet:      {{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3}},
	Hex: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	},
	Prism: {
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{0, 3}, {1, 4}, {2, 5},
	},
	Pyramid: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 4}, {2, 4}, {3, 4},
	},
}

// GetLocalFaces returns the face node tables in element-local indices. The
// returned slices are shared and must not be modified.
func (e ElementType) GetLocalFaces() [][]int {
	return localFaces[e.Linear()]
}

// GetLocalEdges returns the edge node pairs in element-local indices
func (e ElementType) GetLocalEdges() [][2]int {
	return localEdges[e.Linear()]
}

// GetFaceType returns the element type of face i
func (e ElementType) GetFaceType(i int) ElementType {
	faces := localFaces[e.Linear()]
	if i < 0 || i >= len(faces) {
		return Unknown
	}
	switch len(faces[i]) {
	case 2:
		return Line
	case 3:
		return Triangle
	case 4:
		return Quad
	}
	return Unknown
}

// IsLocalEdge reports whether local nodes i and j share an edge
func (e ElementType) IsLocalEdge(i, j int) bool {
	for _, ed := range localEdges[e.Linear()] {
		if (ed[0] == i && ed[1] == j) || (ed[0] == j && ed[1] == i) {
			return true
		}
	}
	return false
}

// GetElementFaces returns the faces of an element as vertex lists
func GetElementFaces(elemType ElementType, vertices []int) [][]int {
	faces := elemType.GetLocalFaces()
	out := make([][]int, len(faces))
	for f, face := range faces {
		out[f] = make([]int, len(face))
		for i, ln := range face {
			out[f][i] = vertices[ln]
		}
	}
	return out
}
