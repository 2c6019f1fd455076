package readers

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/utils"
)

// WriteGmsh22 writes m in Gmsh 2.2 ASCII format. Node and element IDs are
// 1-based positions and the material is written as both the physical and
// the elementary tag.
func WriteGmsh22(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n")

	fmt.Fprintf(bw, "$Nodes\n%d\n", len(m.Nodes))
	for i, n := range m.Nodes {
		fmt.Fprintf(bw, "%d %.17g %.17g %.17g\n", i+1, n.Coords.X, n.Coords.Y, n.Coords.Z)
	}
	fmt.Fprintf(bw, "$EndNodes\n")

	fmt.Fprintf(bw, "$Elements\n%d\n", len(m.Elements))
	for k, e := range m.Elements {
		gmshType, ok := elementTypeToGmsh22[e.Type]
		if !ok {
			return fmt.Errorf("element %d: %w: %s", k, mesh.ErrUnknownElementType, e.Type)
		}
		fmt.Fprintf(bw, "%d %d 2 %d %d", k+1, gmshType, e.Material, e.Material)
		for _, n := range e.Nodes {
			fmt.Fprintf(bw, " %d", n+1)
		}
		fmt.Fprintf(bw, "\n")
	}
	fmt.Fprintf(bw, "$EndElements\n")
	return bw.Flush()
}

// WriteGmsh22File writes m to filename, see WriteGmsh22
func WriteGmsh22File(filename string, m *mesh.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = WriteGmsh22(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// elementTypeToGmsh22 maps the linear element types to Gmsh 2.2 numbers
var elementTypeToGmsh22 = map[utils.ElementType]int{
	utils.Line:     1,
	utils.Triangle: 2,
	utils.Quad:     3,
	utils.Tet:      4,
	utils.Hex:      5,
	utils.Prism:    6,
	utils.Pyramid:  7,
}
