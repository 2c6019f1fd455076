package readers

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create temporary test files
func createTempMshFile(t *testing.T, content string) string {
	t.Helper()
	return createTempFile(t, "test.msh", content)
}

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

func TestReadGmsh22Empty(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
0
$EndNodes
$Elements
0
$EndElements`

	msh, err := ReadGmsh22(createTempMshFile(t, content))
	require.NoError(t, err)
	assert.Equal(t, "test", msh.Name)
	assert.Zero(t, msh.NumNodes())
	assert.Zero(t, msh.NumElements())
}

func TestReadGmsh22Binary(t *testing.T) {
	content := `$MeshFormat
2.2 1 8
$EndMeshFormat`
	_, err := ReadGmsh22(createTempMshFile(t, content))
	assert.Error(t, err)
}

// TestReadGmsh22StandardMeshes tests reading standard test meshes
func TestReadGmsh22StandardMeshes(t *testing.T) {
	builder := NewGmsh22TestBuilder()
	builder.NodeIDOffset = 100
	tm := mesh.GetStandardTestMeshes()

	tests := []struct {
		name     string
		content  string
		complete mesh.CompleteMesh
	}{
		{"TwoTetMesh", builder.BuildTwoTetTest(), tm.TwoTetMesh},
		{"MixedMesh", builder.BuildMixedElementTest(), tm.MixedMesh},
		{"CubeMesh", builder.BuildCubeTest(), tm.CubeMesh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msh, err := ReadGmsh22(createTempMshFile(t, tt.content))
			require.NoError(t, err)
			want, err := tt.complete.ConvertToMesh(tt.name)
			require.NoError(t, err)

			// nodes are written in reverse order
			n := want.NumNodes()
			require.Equal(t, n, msh.NumNodes())
			for i, node := range msh.Nodes {
				assert.Equal(t, want.Nodes[n-1-i].Coords, node.Coords)
				assert.Equal(t, i, node.ID)
			}

			// the mixed mesh quad is a boundary face of the solids
			var expected []mesh.Element
			for _, e := range want.Elements {
				if e.Dimension() == want.Dimension() {
					expected = append(expected, e)
				}
			}
			require.Equal(t, len(expected), msh.NumElements())
			for k, e := range msh.Elements {
				assert.Equal(t, expected[k].Type, e.Type)
				assert.Equal(t, expected[k].Material, e.Material)
				for j, nd := range e.Nodes {
					assert.Equal(t, want.Nodes[expected[k].Nodes[j]].Coords, msh.Nodes[nd].Coords)
				}
			}
		})
	}
}

func TestReadGmsh22HigherOrder(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$PhysicalNames
1
3 7 "fluid region"
$EndPhysicalNames
$Nodes
11
1 0 0 0
2 1 0 0
3 0 1 0
4 0 0 1
5 0.5 0 0
6 0.5 0.5 0
7 0 0.5 0
8 0 0 0.5
9 0.5 0 0.5
10 0 0.5 0.5
11 2 2 2
$EndNodes
$Elements
3
1 15 2 0 1 11
2 2 2 3 3 1 2 3
3 11 2 7 1 1 2 3 4 5 6 7 8 9 10
$EndElements
$NodeData
1
"temperature"
$EndNodeData`

	msh, err := ReadGmsh22(createTempMshFile(t, content))
	require.NoError(t, err)
	require.Equal(t, 1, msh.NumElements())
	el := msh.Elements[0]
	assert.Equal(t, utils.Tet, el.Type)
	assert.Equal(t, []int{0, 1, 2, 3}, el.Nodes)
	assert.Equal(t, 7, el.Material)
	assert.Equal(t, 11, msh.NumNodes())
	assert.Len(t, msh.UnusedNodes(), 7)
}

func TestReadGmsh22BadNode(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
1
1 0 0 0
$EndNodes
$Elements
1
1 1 0 1 2
$EndElements`
	_, err := ReadGmsh22(createTempMshFile(t, content))
	assert.True(t, errors.Is(err, mesh.ErrNodeReference))
}

func TestWriteGmsh22RoundTrip(t *testing.T) {
	tm := mesh.GetStandardTestMeshes()
	src, err := tm.MixedMesh.ConvertToMesh("mixed")
	require.NoError(t, err)
	solids := &mesh.Mesh{Name: "solids", Nodes: src.Nodes}
	for _, e := range src.Elements {
		if e.Dimension() == 3 {
			solids.Elements = append(solids.Elements, e)
		}
	}
	solids.Nodes[9].Coords.X = 0.1 + 0.2 // not exactly representable in short form

	var buf bytes.Buffer
	require.NoError(t, WriteGmsh22(&buf, solids))
	filename := createTempMshFile(t, buf.String())
	msh, err := ReadMeshFile(filename)
	require.NoError(t, err)
	assert.Equal(t, solids.Nodes, msh.Nodes)
	assert.Equal(t, solids.Elements, msh.Elements)

	out := filepath.Join(t.TempDir(), "out.msh")
	require.NoError(t, WriteGmsh22File(out, msh))
	again, err := ReadGmsh22(out)
	require.NoError(t, err)
	assert.Equal(t, msh.Elements, again.Elements)

	bad := &mesh.Mesh{Nodes: src.Nodes, Elements: []mesh.Element{{Type: utils.Hex20, Nodes: make([]int, 20)}}}
	assert.True(t, errors.Is(WriteGmsh22(&bytes.Buffer{}, bad), mesh.ErrUnknownElementType))
}
