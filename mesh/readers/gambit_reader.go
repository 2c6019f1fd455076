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

// gambitElementTypes maps Gambit NTYPE codes to element types
var gambitElementTypes = map[int]utils.ElementType{
	1: utils.Line,
	2: utils.Quad,
	3: utils.Triangle,
	4: utils.Hex,
	5: utils.Prism,
	6: utils.Tet,
	7: utils.Pyramid,
}

// gambitBrickOrder reorders the lexicographic Gambit brick corners
var gambitBrickOrder = []int{0, 1, 3, 2, 4, 5, 7, 6}

// ReadGambitNeutral reads a Gambit neutral file (.neu). The MATERIAL of the
// element group holding an element becomes its material.
func ReadGambitNeutral(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Control variables from header
	var numnp, nelem int
	var (
		nodes    []mesh.Node
		elements []mesh.Element
		elemIdx  = make(map[int]int) // file element ID -> position
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "NUMNP") && strings.Contains(line, "NELEM") {
			// Next line contains the actual values
			if !scanner.Scan() {
				return nil, fmt.Errorf("unexpected EOF after control header")
			}
			values := strings.Fields(scanner.Text())
			if len(values) < 2 {
				return nil, fmt.Errorf("invalid control info: %s", scanner.Text())
			}
			numnp, _ = strconv.Atoi(values[0])
			nelem, _ = strconv.Atoi(values[1])
			break
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "ENDOFSECTION":
			continue

		case strings.Contains(line, "NODAL COORDINATES"):
			nodes = make([]mesh.Node, numnp)
			for i := 0; i < numnp; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading nodes")
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < 4 {
					return nil, fmt.Errorf("invalid node line: %s", scanner.Text())
				}
				nodeID, _ := strconv.Atoi(fields[0])
				var xyz [3]float64
				for j := range xyz {
					if xyz[j], err = strconv.ParseFloat(fields[1+j], 64); err != nil {
						return nil, fmt.Errorf("node %d: invalid coordinate: %v", nodeID, err)
					}
				}
				// Gambit uses 1-based node IDs
				idx := nodeID - 1
				if idx < 0 || idx >= numnp {
					return nil, fmt.Errorf("node ID %d out of range [1,%d]", nodeID, numnp)
				}
				nodes[idx] = mesh.NewNode(idx, xyz[0], xyz[1], xyz[2])
			}

		case strings.Contains(line, "ELEMENTS/CELLS"):
			elements = make([]mesh.Element, 0, nelem)
			for i := 0; i < nelem; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading elements")
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < 3 {
					return nil, fmt.Errorf("invalid element line: %s", scanner.Text())
				}
				elemID, _ := strconv.Atoi(fields[0])
				gambitType, _ := strconv.Atoi(fields[1])
				numNodes, _ := strconv.Atoi(fields[2])

				etype, ok := gambitElementTypes[gambitType]
				if !ok {
					return nil, fmt.Errorf("element %d: %w: Gambit type %d",
						elemID, mesh.ErrUnknownElementType, gambitType)
				}
				// Long connectivity lists continue on the next lines
				for len(fields) < 3+numNodes {
					if !scanner.Scan() {
						return nil, fmt.Errorf("unexpected EOF reading element %d", elemID)
					}
					fields = append(fields, strings.Fields(scanner.Text())...)
				}
				conn := make([]int, numNodes)
				for j := range conn {
					nodeID, _ := strconv.Atoi(fields[3+j])
					conn[j] = nodeID - 1
				}
				if etype == utils.Hex && numNodes == 8 {
					brick := make([]int, 8)
					for j, k := range gambitBrickOrder {
						brick[j] = conn[k]
					}
					conn = brick
				}
				el, err := mesh.NewElement(etype, conn, 0)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", elemID, err)
				}
				elemIdx[elemID] = len(elements)
				elements = append(elements, el)
			}

		case strings.Contains(line, "ELEMENT GROUP"):
			if err := readGambitGroup(scanner, elements, elemIdx); err != nil {
				return nil, err
			}

		case strings.Contains(line, "BOUNDARY CONDITIONS"):
			skipSection(scanner, "ENDOFSECTION")
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}
	return mesh.NewMesh(meshName(filename), nodes, elements)
}

// readGambitGroup reads one element group section and assigns its material
func readGambitGroup(scanner *bufio.Scanner, elements []mesh.Element, elemIdx map[int]int) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in element group")
	}
	var numElems, materialID, nflags int
	parts := strings.Fields(scanner.Text())
	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "ELEMENTS:":
			numElems, _ = strconv.Atoi(parts[i+1])
		case "MATERIAL:":
			materialID, _ = strconv.Atoi(parts[i+1])
		case "NFLAGS:":
			nflags, _ = strconv.Atoi(parts[i+1])
		}
	}

	// Entity name and flags
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in element group")
	}
	if nflags > 0 && !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in element group")
	}

	for read := 0; read < numElems; {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading element group")
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "ENDOFSECTION" {
			return fmt.Errorf("element group lists %d of %d elements", read, numElems)
		}
		for _, field := range strings.Fields(line) {
			elemID, err := strconv.Atoi(field)
			if err != nil {
				return fmt.Errorf("invalid element ID in group: %v", err)
			}
			k, ok := elemIdx[elemID]
			if !ok {
				return fmt.Errorf("element group refers to unknown element %d", elemID)
			}
			elements[k].Material = materialID
			read++
		}
	}
	skipSection(scanner, "ENDOFSECTION")
	return nil
}
