package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisionParametersParse(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
MeshFile: nozzle.msh
OutputFile: nozzle-simplified.msh
Operation: Simplify # collapse, simplify, subdivide or analyze
Tolerance: 1.e-3
MinElementDimension: 3
SpatialIndex: kdtree
`)
	rp := NewRevisionParameters()
	require.NoError(t, rp.Parse(fileInput))
	assert.Equal(t, "Test Case", rp.Title)
	assert.Equal(t, "nozzle.msh", rp.MeshFile)
	assert.Equal(t, "simplify", rp.Operation)
	assert.Equal(t, 1.e-3, rp.Tolerance)
	assert.Equal(t, 3, rp.MinElementDimension)
	assert.Equal(t, "kdtree", rp.SpatialIndex)
	// not in the file, keeps its default
	assert.Equal(t, DefaultGridCellCapacity, rp.GridCellCapacity)
	rp.Print()
}

func TestRevisionParametersValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no mesh", "Operation: collapse\nOutputFile: a.msh"},
		{"bad operation", "MeshFile: a.msh\nOutputFile: b.msh\nOperation: smooth"},
		{"no output", "MeshFile: a.msh\nOperation: collapse"},
		{"zero tolerance", "MeshFile: a.msh\nOutputFile: b.msh\nTolerance: 0"},
		{"min dim", "MeshFile: a.msh\nOutputFile: b.msh\nMinElementDimension: 4"},
		{"not yaml", "MeshFile: [a.msh"},
		{"nothing to remove", "MeshFile: a.msh\nOutputFile: b.msh\nOperation: remove"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, NewRevisionParameters().Parse([]byte(tt.input)))
		})
	}

	// analyze needs no output, subdivide no tolerance
	rp := NewRevisionParameters()
	assert.NoError(t, rp.Parse([]byte("MeshFile: a.msh\nOperation: analyze")))
	rp = NewRevisionParameters()
	assert.NoError(t, rp.Parse([]byte("MeshFile: a.msh\nOutputFile: b.msh\nOperation: subdivide\nTolerance: 0")))
}

func TestRevisionParametersRemove(t *testing.T) {
	fileInput := []byte(`
MeshFile: nozzle.msh
OutputFile: nozzle-solid.msh
Operation: remove
RemoveMaterials: [2, 5]
RemoveTypes: [Quad, Triangle]
RemoveZeroContent: true
`)
	rp := NewRevisionParameters()
	require.NoError(t, rp.Parse(fileInput))
	assert.Equal(t, []int{2, 5}, rp.RemoveMaterials)
	assert.Equal(t, []string{"Quad", "Triangle"}, rp.RemoveTypes)
	assert.True(t, rp.RemoveZeroContent)
	assert.Empty(t, rp.RemoveAroundNodes)
	rp.Print()
}
