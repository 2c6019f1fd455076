package readers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/meshrev/mesh"
)

// Gmsh22TestBuilder helps build Gmsh 2.2 format test files
type Gmsh22TestBuilder struct {
	tm *mesh.TestMeshes
	// NodeIDOffset is added to the 1-based node IDs written to the file
	NodeIDOffset int
}

// NewGmsh22TestBuilder creates a new builder with standard test meshes
func NewGmsh22TestBuilder() *Gmsh22TestBuilder {
	return &Gmsh22TestBuilder{
		tm: mesh.GetStandardTestMeshes(),
	}
}

// BuildMixedElementTest creates a Gmsh 2.2 file with mixed element types
func (b *Gmsh22TestBuilder) BuildMixedElementTest() string {
	msh := b.tm.MixedMesh
	return b.BuildFromCompleteMesh(&msh)
}

// BuildTwoTetTest creates a Gmsh 2.2 file with two tetrahedra
func (b *Gmsh22TestBuilder) BuildTwoTetTest() string {
	msh := b.tm.TwoTetMesh
	return b.BuildFromCompleteMesh(&msh)
}

// BuildCubeTest creates a Gmsh 2.2 file with the cube mesh
func (b *Gmsh22TestBuilder) BuildCubeTest() string {
	msh := b.tm.CubeMesh
	return b.BuildFromCompleteMesh(&msh)
}

// BuildFromCompleteMesh creates a complete Gmsh 2.2 format file from a CompleteMesh
func (b *Gmsh22TestBuilder) BuildFromCompleteMesh(msh *mesh.CompleteMesh) string {
	sections := []string{
		b.buildHeader(),
		b.buildNodes(msh),
		b.buildElements(msh),
	}
	return strings.Join(sections, "\n")
}

func (b *Gmsh22TestBuilder) buildHeader() string {
	return `$MeshFormat
2.2 0 8
$EndMeshFormat`
}

func (b *Gmsh22TestBuilder) nodeID(i int) int { return i + 1 + b.NodeIDOffset }

func (b *Gmsh22TestBuilder) buildNodes(msh *mesh.CompleteMesh) string {
	numNodes := len(msh.Nodes.Nodes)

	var lines []string
	lines = append(lines, "$Nodes")
	lines = append(lines, fmt.Sprintf("%d", numNodes))

	// Node lines: id x y z, written in reverse to exercise the ID mapping
	order := make([]int, numNodes)
	for i := range order {
		order[i] = i
	}
	sort.Sort(sort.Reverse(sort.IntSlice(order)))
	for _, i := range order {
		coords := msh.Nodes.Nodes[i]
		lines = append(lines, fmt.Sprintf("%d %f %f %f", b.nodeID(i), coords[0], coords[1], coords[2]))
	}

	lines = append(lines, "$EndNodes")
	return strings.Join(lines, "\n")
}

func (b *Gmsh22TestBuilder) buildElements(msh *mesh.CompleteMesh) string {
	var lines []string
	lines = append(lines, "$Elements")
	lines = append(lines, fmt.Sprintf("%d", msh.NumElements()))

	elemID := 1
	for _, elemSet := range msh.Elements {
		gmshType := elementTypeToGmsh22[elemSet.Type]

		for i, elem := range elemSet.Elements {
			var material int
			if i < len(elemSet.Materials) {
				material = elemSet.Materials[i]
			}

			nodeIDs := make([]string, len(elem))
			for j, nodeName := range elem {
				nodeIDs[j] = fmt.Sprintf("%d", b.nodeID(msh.Nodes.NodeMap[nodeName]))
			}

			// Format: elem-id elem-type num-tags physical elementary node1 node2 ...
			line := fmt.Sprintf("%d %d 2 %d %d %s", elemID, gmshType, material, elemID,
				strings.Join(nodeIDs, " "))
			lines = append(lines, line)
			elemID++
		}
	}

	lines = append(lines, "$EndElements")
	return strings.Join(lines, "\n")
}
