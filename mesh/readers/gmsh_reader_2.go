package readers

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/utils"
)

// gmshMesh collects the sections of a Gmsh file
type gmshMesh struct {
	nodes     []mesh.Node
	nodeIndex map[int]int // file node ID -> position
	elements  []mesh.Element
}

// ReadGmsh22 reads a Gmsh MSH file format version 2.2. Higher order
// elements keep their corner nodes, points are skipped and the first tag of
// an element, its physical group, becomes the material.
func ReadGmsh22(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	gm := &gmshMesh{nodeIndex: make(map[int]int)}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "$MeshFormat":
			if err := readMeshFormat22(scanner); err != nil {
				return nil, err
			}

		case "$Nodes":
			if err := readNodes22(scanner, gm); err != nil {
				return nil, err
			}

		case "$Elements":
			if err := readElements22(scanner, gm); err != nil {
				return nil, err
			}

		default:
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				// Skip names, data, periodic and unknown sections
				skipSection(scanner, "$End"+line[1:])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}
	return mesh.NewMesh(meshName(filename), gm.nodes, highestDimension(gm.elements))
}

// readMeshFormat22 reads the MeshFormat section
func readMeshFormat22(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in MeshFormat")
	}

	parts := strings.Fields(scanner.Text())
	if len(parts) < 3 {
		return fmt.Errorf("invalid MeshFormat line")
	}
	if !strings.HasPrefix(parts[0], "2.") {
		return fmt.Errorf("unsupported Gmsh format version: %s", parts[0])
	}
	if fileType, _ := strconv.Atoi(parts[1]); fileType == 1 {
		return fmt.Errorf("binary Gmsh files are not supported")
	}

	skipSection(scanner, "$EndMeshFormat")
	return nil
}

// readNodes22 reads nodes in v2.2 format
func readNodes22(scanner *bufio.Scanner, gm *gmshMesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Nodes")
	}

	numNodes, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	gm.nodes = make([]mesh.Node, 0, numNodes)

	for i := 0; i < numNodes; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading nodes")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 4 {
			return fmt.Errorf("invalid node line: %s", scanner.Text())
		}

		nodeID, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("invalid node ID: %v", err)
		}
		var xyz [3]float64
		for j := range xyz {
			if xyz[j], err = strconv.ParseFloat(parts[1+j], 64); err != nil {
				return fmt.Errorf("node %d: invalid coordinate: %v", nodeID, err)
			}
		}
		if _, dup := gm.nodeIndex[nodeID]; dup {
			return fmt.Errorf("duplicate node ID %d", nodeID)
		}
		gm.nodeIndex[nodeID] = len(gm.nodes)
		gm.nodes = append(gm.nodes, mesh.NewNode(len(gm.nodes), xyz[0], xyz[1], xyz[2]))
	}

	skipSection(scanner, "$EndNodes")
	return nil
}

// readElements22 reads elements in v2.2 format
func readElements22(scanner *bufio.Scanner, gm *gmshMesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Elements")
	}

	numElements, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))

	for i := 0; i < numElements; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading elements")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 4 {
			return fmt.Errorf("invalid element line")
		}

		elemID, _ := strconv.Atoi(parts[0])
		elemType, _ := strconv.Atoi(parts[1])
		numTags, _ := strconv.Atoi(parts[2])

		if len(parts) < 3+numTags {
			return fmt.Errorf("element %d: invalid element tags", elemID)
		}

		etype, ok := gmshElementType22[elemType]
		if !ok || etype == utils.Point {
			continue
		}

		var material int
		if numTags > 0 {
			material, _ = strconv.Atoi(parts[3])
		}

		expectedNodes := etype.GetNumNodes()
		nodeStart := 3 + numTags
		if len(parts) < nodeStart+expectedNodes {
			return fmt.Errorf("element %d: expected %d nodes, got %d",
				elemID, expectedNodes, len(parts)-nodeStart)
		}

		linear := etype.Linear()
		nodes := make([]int, linear.GetNumNodes())
		for j := range nodes {
			nodeID, _ := strconv.Atoi(parts[nodeStart+j])
			idx, ok := gm.nodeIndex[nodeID]
			if !ok {
				return fmt.Errorf("element %d: %w: node ID %d", elemID, mesh.ErrNodeReference, nodeID)
			}
			nodes[j] = idx
		}

		el, err := mesh.NewElement(linear, nodes, material)
		if err != nil {
			return fmt.Errorf("element %d: %w", elemID, err)
		}
		gm.elements = append(gm.elements, el)
	}

	skipSection(scanner, "$EndElements")
	return nil
}

// gmshElementType22 maps Gmsh v2.2 element type numbers to our ElementType
var gmshElementType22 = map[int]utils.ElementType{
	1:  utils.Line,       // 2-node line
	2:  utils.Triangle,   // 3-node triangle
	3:  utils.Quad,       // 4-node quadrangle
	4:  utils.Tet,        // 4-node tetrahedron
	5:  utils.Hex,        // 8-node hexahedron
	6:  utils.Prism,      // 6-node prism
	7:  utils.Pyramid,    // 5-node pyramid
	8:  utils.Line3,      // 3-node line
	9:  utils.Triangle6,  // 6-node triangle
	10: utils.Quad9,      // 9-node quadrangle
	11: utils.Tet10,      // 10-node tetrahedron
	12: utils.Hex27,      // 27-node hexahedron
	13: utils.Prism18,    // 18-node prism
	14: utils.Pyramid14,  // 14-node pyramid
	15: utils.Point,      // 1-node point
	16: utils.Quad8,      // 8-node quadrangle
	17: utils.Hex20,      // 20-node hexahedron
	18: utils.Prism15,    // 15-node prism
	19: utils.Pyramid13,  // 13-node pyramid
	20: utils.Triangle9,  // 9-node triangle
	21: utils.Triangle10, // 10-node triangle
}
