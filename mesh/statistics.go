package mesh

import (
	"fmt"

	"github.com/notargets/meshrev/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Statistics summarizes the size, quality and extent of a mesh
type Statistics struct {
	NumNodes, NumElements  int
	TypeCounts             map[utils.ElementType]int
	NumEdges               int
	DegenerateEdges        int
	UnusedNodes            int
	MinContent, MaxContent float64
	TotalContent           float64
	BoundsMin, BoundsMax   r3.Vec

	// Defects counts the elements carrying each validation flag
	Defects map[ErrorCode]int
}

func (m *Mesh) Statistics() (st Statistics) {
	st = Statistics{
		NumNodes:    m.NumNodes(),
		NumElements: m.NumElements(),
		TypeCounts:  make(map[utils.ElementType]int),
		Defects:     make(map[ErrorCode]int),
	}
	edges := m.Edges()
	st.NumEdges = len(edges)
	st.DegenerateEdges = edges.NumDegenerate()
	st.UnusedNodes = len(m.UnusedNodes())

	contents := make([]float64, len(m.Elements))
	utils.ParallelFor(len(m.Elements), func(k int) {
		contents[k] = m.Elements[k].Content(m.Nodes)
	})
	for k, ec := range m.ValidateElements() {
		st.TypeCounts[m.Elements[k].Type]++
		for _, f := range ErrorCodeFlags() {
			if ec.Has(f) {
				st.Defects[f]++
			}
		}
	}
	if len(contents) > 0 {
		st.MinContent = floats.Min(contents)
		st.MaxContent = floats.Max(contents)
		st.TotalContent = floats.Sum(contents)
	}

	pts := make([]r3.Vec, len(m.Nodes))
	for i, n := range m.Nodes {
		pts[i] = n.Coords
	}
	st.BoundsMin, st.BoundsMax = utils.Bounds(pts)
	return
}

func (m *Mesh) PrintStatistics() {
	st := m.Statistics()
	fmt.Printf("Mesh Statistics: %s\n", m.Name)
	fmt.Printf("  Nodes: %d (%d unused)\n", st.NumNodes, st.UnusedNodes)
	fmt.Printf("  Elements: %d\n", st.NumElements)
	fmt.Printf("  Edges: %d (%d degenerate)\n", st.NumEdges, st.DegenerateEdges)

	fmt.Printf("  Element types:\n")
	for et := utils.Point; et <= utils.Pyramid14; et++ {
		if count, ok := st.TypeCounts[et]; ok {
			fmt.Printf("    %s: %d\n", et, count)
		}
	}
	fmt.Printf("  Element content: min %g, max %g, total %g\n",
		st.MinContent, st.MaxContent, st.TotalContent)
	fmt.Printf("  Bounds: [%g %g %g] - [%g %g %g]\n",
		st.BoundsMin.X, st.BoundsMin.Y, st.BoundsMin.Z,
		st.BoundsMax.X, st.BoundsMax.Y, st.BoundsMax.Z)
	fmt.Printf("  Element validation:\n")
	for _, f := range ErrorCodeFlags() {
		fmt.Printf("    %s: %d\n", f, st.Defects[f])
	}
}
