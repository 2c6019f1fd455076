package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncidence(t *testing.T) {
	// node 3 is never referenced, node 2 is referenced twice by element 1
	elements := [][]int{
		{0, 1, 2},
		{2, 2, 4},
		{0, 4},
	}
	inc := NewIncidence(5, elements)
	assert.Equal(t, 2, inc.Valence(0))
	assert.Equal(t, 1, inc.Valence(1))
	assert.Equal(t, 2, inc.Valence(2))
	assert.Equal(t, 0, inc.Valence(3))
	assert.Equal(t, []int{1, 2}, inc.Elements(4))
	assert.Equal(t, []int{3}, inc.Unreferenced())
}

func TestIncidenceEmpty(t *testing.T) {
	inc := NewIncidence(3, nil)
	assert.Equal(t, 0, inc.Valence(1))
	assert.Nil(t, inc.Elements(1))
	assert.Equal(t, []int{0, 1, 2}, inc.Unreferenced())
}

func TestDOKToCSR(t *testing.T) {
	dok := NewDOK(2, 3, "A")
	dok.Set(0, 2, 4)
	dok.Set(1, 0, 1)
	dok.Set(1, 1, 2)
	csr := dok.ToCSR()
	r, c := csr.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 4., csr.At(0, 2))
	assert.Equal(t, 1, csr.RowNNZ(0))
	assert.Equal(t, 2, csr.RowNNZ(1))
	assert.Equal(t, "A", csr.Name())
}
