package revision

import (
	"bytes"
	"errors"
	"log"
	"math/rand"
	"testing"

	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func singleElementMesh(t *testing.T, et utils.ElementType, coords ...[3]float64) *mesh.Mesh {
	t.Helper()
	nodes := nodesFrom(coords...)
	idx := make([]int, len(nodes))
	for i := range idx {
		idx[i] = i
	}
	el, err := mesh.NewElement(et, idx, 5)
	require.NoError(t, err)
	m, err := mesh.NewMesh(et.String(), nodes, []mesh.Element{el})
	require.NoError(t, err)
	return m
}

func TestSimplifyHexEdgeCollapse(t *testing.T) {
	m := singleElementMesh(t, utils.Hex,
		[3]float64{0, 0, 0}, [3]float64{0.001, 0, 0}, [3]float64{1, 1, 0}, [3]float64{0, 1, 0},
		[3]float64{0, 0, 1}, [3]float64{1, 0, 1}, [3]float64{1, 1, 1}, [3]float64{0, 1, 1},
	)
	r := New(m)
	assert.Equal(t, 1, r.CountCollapsibleNodes(0.01))

	collapsed, err := r.CollapseNodes("collapsed", 0.01)
	require.NoError(t, err)
	assert.Equal(t, 7, collapsed.NumNodes())
	require.Equal(t, 1, collapsed.NumElements())
	assert.Equal(t, utils.Hex, collapsed.Elements[0].Type)
	want := collapsed.Elements[0].Content(collapsed.Nodes)

	out, err := r.SimplifyMesh("simplified", 0.01, 3)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumElements())
	assert.Equal(t, utils.Pyramid, out.Elements[0].Type)
	assert.Equal(t, utils.Prism, out.Elements[1].Type)
	got := out.Statistics().TotalContent
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 5./6., got, 1e-12)
	assert.Equal(t, 7, out.NumNodes())
	assert.Empty(t, out.UnusedNodes())

	// the source is left untouched
	assert.Equal(t, 8, m.NumNodes())
	assert.Equal(t, utils.Hex, m.Elements[0].Type)
}

func TestSimplifyHexTwoEdgeCollapse(t *testing.T) {
	// bottom front edge and right back vertical edge both collapse
	m := singleElementMesh(t, utils.Hex,
		[3]float64{0, 0, 0}, [3]float64{0.001, 0, 0}, [3]float64{1, 1, 0}, [3]float64{0, 1, 0},
		[3]float64{0, 0, 1}, [3]float64{1, 0, 1}, [3]float64{1, 1, 0.001}, [3]float64{0, 1, 1},
	)
	out, err := New(m).SimplifyMesh("simplified", 0.01, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, out.NumNodes())
	for _, e := range out.Elements {
		assert.Equal(t, 3, e.Dimension())
		assert.True(t, e.Validate(out.Nodes).Valid(), "%s %v", e.Type, e.Nodes)
	}
	// no overlap, the elements fill the hull of the six corners left
	assert.InDelta(t, 2./3., out.Statistics().TotalContent, 1e-12)
}

func TestSimplifyQuadToTriangle(t *testing.T) {
	m := singleElementMesh(t, utils.Quad,
		[3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{1, 1e-4, 0}, [3]float64{0, 1, 0},
	)
	out, err := New(m).SimplifyMesh("tri", 1e-3, 2)
	require.NoError(t, err)
	require.Equal(t, 1, out.NumElements())
	tri := out.Elements[0]
	assert.Equal(t, utils.Triangle, tri.Type)
	assert.Equal(t, []int{0, 1, 2}, tri.Nodes)
	assert.Equal(t, []r3.Vec{{}, {X: 1}, {Y: 1}}, tri.Coords(out.Nodes))
	assert.Equal(t, 5, tri.Material)

	_, err = New(m).SimplifyMesh("tri", 1e-3, 3)
	assert.True(t, errors.Is(err, ErrNoElements))
}

func TestSubdivideWarpedQuad(t *testing.T) {
	m := singleElementMesh(t, utils.Quad,
		[3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{1, 1, 0.4}, [3]float64{0, 1, 0},
	)
	p := m.Coords(m.Elements[0])
	reference := utils.TriArea(p[0], p[1], p[2]) + utils.TriArea(p[0], p[2], p[3])

	out, err := New(m).SubdivideMesh("split")
	require.NoError(t, err)
	require.Equal(t, 2, out.NumElements())
	var used []int
	for _, e := range out.Elements {
		assert.Equal(t, utils.Triangle, e.Type)
		used = append(used, e.Nodes...)
	}
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, uniqueNodes(used))
	assert.InDelta(t, reference, out.Statistics().TotalContent, 1e-12)
	assert.Equal(t, m.NumNodes(), out.NumNodes())
}

func TestEmptyMesh(t *testing.T) {
	m, err := mesh.NewMesh("empty", nodesFrom([3]float64{0, 0, 0}), nil)
	require.NoError(t, err)
	out, err := New(m).SimplifyMesh("out", 0.1, 1)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrNoElements))
	out, err = New(m).SubdivideMesh("out")
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrNoElements))
}

func TestSimplifyPrismCapCollapse(t *testing.T) {
	m := singleElementMesh(t, utils.Prism,
		[3]float64{0, 0, 0}, [3]float64{0, 0, 0.002}, [3]float64{0, 1, 0},
		[3]float64{1, 0, 0}, [3]float64{1, 0, 1}, [3]float64{1, 1, 0},
	)
	collapsed, err := New(m).CollapseNodes("collapsed", 0.01)
	require.NoError(t, err)
	want := collapsed.Elements[0].Content(collapsed.Nodes)

	out, err := New(m).SimplifyMesh("tets", 0.01, 3)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumElements())
	for _, e := range out.Elements {
		assert.Equal(t, utils.Tet, e.Type)
		assert.True(t, e.Validate(out.Nodes).Valid())
	}
	assert.InDelta(t, want, out.Statistics().TotalContent, 1e-12)
	assert.InDelta(t, 1./3., want, 1e-12)
}

func TestSimplifyUnsupported(t *testing.T) {
	// diametral corners 0 and 6 coincide
	m := singleElementMesh(t, utils.Hex,
		[3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{1, 1, 0}, [3]float64{0, 1, 0},
		[3]float64{0, 0, 1}, [3]float64{1, 0, 1}, [3]float64{0, 0, 0.001}, [3]float64{0, 1, 1},
	)
	out, err := New(m).SimplifyMesh("bad", 0.01, 3)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrUnsupportedDegeneracy))
	assert.Contains(t, err.Error(), "element 0")
}

func TestSimplifyMaterials(t *testing.T) {
	tm := mesh.GetStandardTestMeshes()
	src, err := tm.MixedMesh.ConvertToMesh("mixed")
	require.NoError(t, err)
	for k, e := range src.Elements {
		e.Material = 100 + k
		m, err := mesh.NewMesh("one", mesh.DuplicateNodes(src.Nodes), []mesh.Element{e})
		require.NoError(t, err)
		out, err := New(m).SimplifyMesh("out", 0.01, 1)
		require.NoError(t, err, "element %d", k)
		for _, oe := range out.Elements {
			assert.Equal(t, 100+k, oe.Material)
		}
	}
}

func TestSimplifyDropsBelowFloor(t *testing.T) {
	tm := mesh.GetStandardTestMeshes()
	m, err := tm.MixedMesh.ConvertToMesh("mixed")
	require.NoError(t, err)
	var buf bytes.Buffer
	out, err := New(m, WithLogger(log.New(&buf, "", 0))).SimplifyMesh("solids", 0.01, 3)
	require.NoError(t, err)
	assert.Equal(t, m.NumElements()-1, out.NumElements())
	assert.Zero(t, out.Statistics().TypeCounts[utils.Quad])
	assert.Contains(t, buf.String(), "dropping Quad")
}

// warpedHexMesh jitters the interior nodes of a regular hexahedron grid
func warpedHexMesh(seed int64) *mesh.Mesh {
	m := mesh.NewRegularHexMesh(3, 3, 3, 1, 8)
	rng := rand.New(rand.NewSource(seed))
	for i, n := range m.Nodes {
		c := n.Coords
		if c.X == 0 || c.X == 3 || c.Y == 0 || c.Y == 3 || c.Z == 0 || c.Z == 3 {
			continue
		}
		m.Nodes[i].Coords = r3.Add(c, r3.Vec{
			X: 0.2 * (rng.Float64() - 0.5),
			Y: 0.2 * (rng.Float64() - 0.5),
			Z: 0.2 * (rng.Float64() - 0.5),
		})
	}
	return m
}

func TestSubdivideMeshValidity(t *testing.T) {
	m := warpedHexMesh(2)
	out, err := New(m).SubdivideMesh("split")
	require.NoError(t, err)
	assert.Greater(t, out.NumElements(), m.NumElements())
	for k, ec := range out.ValidateElements() {
		assert.True(t, ec.Valid(), "element %d: %s", k, ec)
	}
	assert.Equal(t, m.NumNodes(), out.NumNodes())
}

func TestSimplifyExplodedMesh(t *testing.T) {
	src := mesh.NewRegularHexMesh(2, 2, 2, 0.5, 1)
	m := explode(src, 0, 9)
	for _, kind := range []IndexKind{GridIndex, KDTreeIndex} {
		out, err := New(m, WithIndex(kind), WithGridCellCapacity(2)).SimplifyMesh("welded", 1e-3, 3)
		require.NoError(t, err)
		assert.Equal(t, src.NumNodes(), out.NumNodes())
		assert.Equal(t, src.NumElements(), out.NumElements())
		assert.InDelta(t, 1, out.Statistics().TotalContent, 1e-12)
	}
}
