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

// ReadSU2 reads an SU2 native format file. Boundary markers are skipped and
// all elements get material 0.
func ReadSU2(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	var (
		ndime              int
		hasNDIME, hasNPOIN bool
		nodes              []mesh.Node
		elements           []mesh.Element
	)

	for scanner.Scan() {
		line := su2Line(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "NDIME="):
			hasNDIME = true
			fmt.Sscanf(line, "NDIME=%d", &ndime)
			if ndime != 2 && ndime != 3 {
				return nil, fmt.Errorf("unsupported dimension: NDIME=%d", ndime)
			}

		case strings.HasPrefix(line, "NPOIN="):
			if !hasNDIME {
				return nil, fmt.Errorf("NPOIN= before NDIME=")
			}
			hasNPOIN = true
			var npoin int
			fmt.Sscanf(line, "NPOIN=%d", &npoin)

			nodes = make([]mesh.Node, npoin)
			for i := 0; i < npoin; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading nodes")
				}
				fields := strings.Fields(su2Line(scanner.Text()))
				if len(fields) < ndime {
					return nil, fmt.Errorf("invalid node line: expected at least %d coordinates", ndime)
				}
				var xyz [3]float64
				for j := 0; j < ndime; j++ {
					if xyz[j], err = strconv.ParseFloat(fields[j], 64); err != nil {
						return nil, fmt.Errorf("invalid coordinate: %v", err)
					}
				}
				// Node ID is implicit (0-based) based on order
				nodes[i] = mesh.NewNode(i, xyz[0], xyz[1], xyz[2])
			}

		case strings.HasPrefix(line, "NELEM="):
			var nelem int
			fmt.Sscanf(line, "NELEM=%d", &nelem)

			elements = make([]mesh.Element, 0, nelem)
			for i := 0; i < nelem; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading elements")
				}
				el, err := parseSU2Element(su2Line(scanner.Text()), len(nodes))
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				elements = append(elements, el)
			}

		case strings.HasPrefix(line, "NMARK="):
			var nmark int
			fmt.Sscanf(line, "NMARK=%d", &nmark)
			for i := 0; i < nmark; i++ {
				if err := skipSU2Marker(scanner); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}
	if !hasNDIME {
		return nil, fmt.Errorf("missing required NDIME= section")
	}
	if !hasNPOIN {
		return nil, fmt.Errorf("missing required NPOIN= section")
	}
	return mesh.NewMesh(meshName(filename), nodes, elements)
}

// su2Line strips comments (text after %) and surrounding space
func su2Line(line string) string {
	if idx := strings.Index(line, "%"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

func parseSU2Element(line string, numNodes int) (mesh.Element, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return mesh.Element{}, fmt.Errorf("invalid element line")
	}
	su2Type, err := strconv.Atoi(fields[0])
	if err != nil {
		return mesh.Element{}, fmt.Errorf("invalid element type: %v", err)
	}
	etype, ok := su2ElementTypeMap[su2Type]
	if !ok {
		return mesh.Element{}, fmt.Errorf("%w: VTK type %d", mesh.ErrUnknownElementType, su2Type)
	}
	n := etype.GetNumNodes()
	if len(fields) < n+1 {
		return mesh.Element{}, fmt.Errorf("element type %v expects %d nodes, got %d fields",
			etype, n, len(fields)-1)
	}
	conn := make([]int, n)
	for j := range conn {
		if conn[j], err = strconv.Atoi(fields[1+j]); err != nil {
			return mesh.Element{}, fmt.Errorf("invalid node index: %v", err)
		}
		if conn[j] < 0 || conn[j] >= numNodes {
			return mesh.Element{}, fmt.Errorf("%w: node index %d out of range [0,%d)",
				mesh.ErrNodeReference, conn[j], numNodes)
		}
	}
	return mesh.NewElement(etype, conn, 0)
}

// skipSU2Marker reads past one MARKER_TAG block
func skipSU2Marker(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF reading marker")
	}
	tagLine := su2Line(scanner.Text())
	if !strings.HasPrefix(tagLine, "MARKER_TAG=") {
		return fmt.Errorf("expected MARKER_TAG=, got: %s", tagLine)
	}
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF reading marker elements for %s", tagLine)
	}
	elemLine := su2Line(scanner.Text())
	var n int
	if _, err := fmt.Sscanf(elemLine, "MARKER_ELEMS=%d", &n); err != nil {
		return fmt.Errorf("invalid MARKER_ELEMS line: %s", elemLine)
	}
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading boundary elements")
		}
	}
	return nil
}

// su2ElementTypeMap maps SU2/VTK element type identifiers to our ElementType
var su2ElementTypeMap = map[int]utils.ElementType{
	3:  utils.Line,     // VTK_LINE
	5:  utils.Triangle, // VTK_TRIANGLE
	9:  utils.Quad,     // VTK_QUAD
	10: utils.Tet,      // VTK_TETRA
	12: utils.Hex,      // VTK_HEXAHEDRON
	13: utils.Prism,    // VTK_WEDGE
	14: utils.Pyramid,  // VTK_PYRAMID
}
