package mesh

import (
	"fmt"

	"github.com/notargets/meshrev/types"
	"github.com/notargets/meshrev/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh owns its nodes and elements. Elements refer to nodes by position.
type Mesh struct {
	Name     string
	Nodes    []Node
	Elements []Element
}

// NewMesh takes ownership of nodes and elements, renumbering the node IDs to
// their positions. Every element node reference must be in range.
func NewMesh(name string, nodes []Node, elements []Element) (*Mesh, error) {
	for k, e := range elements {
		if !e.Type.IsLinear() {
			return nil, fmt.Errorf("element %d: %w: %s", k, ErrUnknownElementType, e.Type)
		}
		if len(e.Nodes) != e.Type.GetNumNodes() {
			return nil, fmt.Errorf("element %d: %s element with %d nodes",
				k, e.Type, len(e.Nodes))
		}
		for _, n := range e.Nodes {
			if n < 0 || n >= len(nodes) {
				return nil, fmt.Errorf("element %d: %w: node %d of %d",
					k, ErrNodeReference, n, len(nodes))
			}
		}
	}
	m := &Mesh{
		Name:     name,
		Nodes:    nodes,
		Elements: elements,
	}
	m.ResetNodeIDs()
	return m, nil
}

func (m *Mesh) NumNodes() int    { return len(m.Nodes) }
func (m *Mesh) NumElements() int { return len(m.Elements) }

// ResetNodeIDs renumbers the nodes densely by position
func (m *Mesh) ResetNodeIDs() {
	for i := range m.Nodes {
		m.Nodes[i].ID = i
	}
}

// Coords gathers the coordinates of e's nodes from this mesh
func (m *Mesh) Coords(e Element) []r3.Vec {
	return e.Coords(m.Nodes)
}

// Dimension is the largest element dimension present, or -1 for a mesh
// without elements.
func (m *Mesh) Dimension() (dim int) {
	dim = -1
	for _, e := range m.Elements {
		if d := e.Dimension(); d > dim {
			dim = d
		}
	}
	return
}

// ValidateElements returns the validation result of every element
func (m *Mesh) ValidateElements() []ErrorCode {
	codes := make([]ErrorCode, len(m.Elements))
	utils.ParallelFor(len(m.Elements), func(k int) {
		codes[k] = m.Elements[k].Validate(m.Nodes)
	})
	return codes
}

// Incidence returns the node by element incidence matrix
func (m *Mesh) Incidence() utils.Incidence {
	conn := make([][]int, len(m.Elements))
	for k, e := range m.Elements {
		conn[k] = e.Nodes
	}
	return utils.NewIncidence(len(m.Nodes), conn)
}

// UnusedNodes returns the nodes no element refers to
func (m *Mesh) UnusedNodes() []int {
	return m.Incidence().Unreferenced()
}

// Edges collects the element edges of the mesh
func (m *Mesh) Edges() types.EdgeSet {
	es := types.EdgeSet{}
	for _, e := range m.Elements {
		for _, ed := range e.Type.GetLocalEdges() {
			es.Add([2]int{e.Nodes[ed[0]], e.Nodes[ed[1]]})
		}
	}
	return es
}
