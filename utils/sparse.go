package utils

import (
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
)

type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int, name string) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		name,
	}
	return
}

func (m DOK) Dims() (r, c int)          { return m.M.Dims() }
func (m DOK) At(i, j int) float64       { return m.M.At(i, j) }
func (m DOK) Set(i, j int, val float64) { m.M.Set(i, j, val) }
func (m DOK) Name() string              { return m.name }

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

type CSR struct {
	M    *sparse.CSR
	name string
}

func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
func (m CSR) Name() string                  { return m.name }

// RowNNZ returns the number of stored entries in row i
func (m CSR) RowNNZ(i int) int {
	raw := m.RawMatrix()
	return raw.Indptr[i+1] - raw.Indptr[i]
}

// RowIndices returns the column indices stored in row i
func (m CSR) RowIndices(i int) []int {
	raw := m.RawMatrix()
	return raw.Ind[raw.Indptr[i]:raw.Indptr[i+1]]
}

// Incidence is the node by element incidence matrix of a mesh. Entry (n, e) is
// one when element e references node n, however many times it does so.
type Incidence struct {
	nNodes, nElements int
	csr               *CSR
}

func NewIncidence(nNodes int, elements [][]int) (inc Incidence) {
	inc = Incidence{nNodes: nNodes, nElements: len(elements)}
	if nNodes == 0 || len(elements) == 0 {
		return
	}
	dok := NewDOK(nNodes, len(elements), "node-element incidence")
	for e, nodes := range elements {
		for _, n := range nodes {
			dok.Set(n, e, 1)
		}
	}
	csr := dok.ToCSR()
	inc.csr = &csr
	return
}

// Valence returns the number of elements referencing node n
func (inc Incidence) Valence(n int) int {
	if inc.csr == nil {
		return 0
	}
	return inc.csr.RowNNZ(n)
}

// Elements returns the elements referencing node n in ascending order
func (inc Incidence) Elements(n int) []int {
	if inc.csr == nil {
		return nil
	}
	elems := append([]int(nil), inc.csr.RowIndices(n)...)
	sort.Ints(elems)
	return elems
}

// Unreferenced returns the nodes no element references
func (inc Incidence) Unreferenced() (nodes []int) {
	for n := 0; n < inc.nNodes; n++ {
		if inc.Valence(n) == 0 {
			nodes = append(nodes, n)
		}
	}
	return
}
