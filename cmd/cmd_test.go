package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/meshrev/InputParameters"
	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/mesh/readers"
	"github.com/notargets/meshrev/mesh/revision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// explodedHexFile writes a 2x2x2 hex grid where every element owns its
// eight nodes
func explodedHexFile(t *testing.T) string {
	t.Helper()
	hm := mesh.NewRegularHexMesh(2, 2, 2, 0.5, 4)
	var nodes []mesh.Node
	elements := make([]mesh.Element, len(hm.Elements))
	for k, e := range hm.Elements {
		elements[k] = mesh.Element{Type: e.Type, Material: e.Material}
		for _, n := range e.Nodes {
			elements[k].Nodes = append(elements[k].Nodes, len(nodes))
			nodes = append(nodes, mesh.NewNode(len(nodes), hm.Nodes[n].Coords.X, hm.Nodes[n].Coords.Y, hm.Nodes[n].Coords.Z))
		}
	}
	m, err := mesh.NewMesh("exploded", nodes, elements)
	require.NoError(t, err)
	fileName := filepath.Join(t.TempDir(), "exploded.msh")
	require.NoError(t, readers.WriteGmsh22File(fileName, m))
	return fileName
}

func TestRevisionRun(t *testing.T) {
	input := explodedHexFile(t)
	for _, op := range []string{"collapse", "simplify", "subdivide"} {
		t.Run(op, func(t *testing.T) {
			rv := &Revision{
				Operation: op,
				MeshFile:  input,
				Tolerance: 1.e-6,
				MinDim:    3,
				Index:     revision.KDTreeIndex,
			}
			out, err := rv.Run()
			require.NoError(t, err)
			assert.Equal(t, 8, out.NumElements())
			assert.Equal(t, "exploded-"+op, out.Name)

			back, err := readers.ReadMeshFile(rv.outputFile())
			require.NoError(t, err)
			assert.Equal(t, out.NumNodes(), back.NumNodes())
			assert.Equal(t, 4, back.Elements[0].Material)
			if op == "subdivide" {
				assert.Equal(t, 64, back.NumNodes())
			} else {
				assert.Equal(t, 27, back.NumNodes())
			}
		})
	}

	rv := &Revision{Operation: "analyze", MeshFile: input, Tolerance: 1.e-6}
	m, err := rv.Run()
	require.NoError(t, err)
	assert.Equal(t, 64, m.NumNodes())
	assert.Equal(t, 37, rv.reviser(m).CountCollapsibleNodes(rv.Tolerance))

	rv = &Revision{Operation: "smooth", MeshFile: input, Tolerance: 1.e-6}
	_, err = rv.Run()
	assert.Error(t, err)

	rv = &Revision{Operation: "collapse", MeshFile: filepath.Join(t.TempDir(), "missing.msh")}
	_, err = rv.Run()
	assert.Error(t, err)
}

func TestRevisionRemove(t *testing.T) {
	input := explodedHexFile(t)
	rv := &Revision{Operation: "remove", MeshFile: input, AroundNodes: []int{0, 9}, ZeroContent: true}
	out, err := rv.Run()
	require.NoError(t, err)
	// every element owns its nodes, so two elements and their nodes go
	assert.Equal(t, 6, out.NumElements())
	assert.Equal(t, 48, out.NumNodes())
	back, err := readers.ReadMeshFile(rv.outputFile())
	require.NoError(t, err)
	assert.Equal(t, 6, back.NumElements())

	rv = &Revision{Operation: "remove", MeshFile: input, Types: []string{"Hex"}}
	_, err = rv.Run()
	assert.True(t, errors.Is(err, revision.ErrNoElements))

	rv = &Revision{Operation: "remove", MeshFile: input, Types: []string{"Brick"}}
	_, err = rv.Run()
	assert.Error(t, err)

	rv = &Revision{Operation: "remove", MeshFile: input, Materials: []int{7}}
	_, err = rv.Run()
	assert.True(t, errors.Is(err, revision.ErrNothingMarked))
}

func TestRevisionNames(t *testing.T) {
	rv := &Revision{Operation: "simplify", MeshFile: "/data/nozzle.neu"}
	assert.Equal(t, "/data/nozzle-simplify.msh", rv.outputFile())
	assert.Equal(t, "nozzle-simplify", rv.meshName())
	rv.OutputFile = "out/fixed.msh"
	rv.MeshName = "fixed nozzle"
	assert.Equal(t, "out/fixed.msh", rv.outputFile())
	assert.Equal(t, "fixed nozzle", rv.meshName())
}

func TestReadParameters(t *testing.T) {
	_, err := readParameters("")
	assert.Error(t, err)

	dir := t.TempDir()
	icFile := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(icFile, []byte(`
Title: exploded
MeshFile: `+explodedHexFile(t)+`
OutputFile: `+filepath.Join(dir, "out.msh")+`
Operation: collapse
Tolerance: 1.e-6
SpatialIndex: kd-tree
`), 0644))
	rp, err := readParameters(icFile)
	require.NoError(t, err)
	rv, err := revisionFromParameters(rp)
	require.NoError(t, err)
	assert.Equal(t, revision.KDTreeIndex, rv.Index)
	assert.Equal(t, InputParameters.DefaultGridCellCapacity, rv.CellCapacity)

	rootCmd.SetArgs([]string{"run", "-I", icFile})
	require.NoError(t, rootCmd.Execute())
	out, err := readers.ReadMeshFile(filepath.Join(dir, "out.msh"))
	require.NoError(t, err)
	assert.Equal(t, 27, out.NumNodes())

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("Operation: collapse\n"), 0644))
	_, err = readParameters(bad)
	assert.Error(t, err)
}
