package types

import (
	"fmt"
	"math"
	"sort"
)

/*
EdgeKey is an always positive number that stores an edge's node indices in a way that can be compared
An edge between nodes [4] and [0] will always be stored as [0,4], in the ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// Packs two node indices into the low and high 32 bits
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	var (
		enTmp EdgeKey
	)
	enTmp = ek >> 32
	verts[1] = int(enTmp)
	verts[0] = int(ek - enTmp*(1<<32))
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

// IsDegenerate reports whether both ends of the edge are the same node, which
// happens to element edges after their nodes have been collapsed together.
func (ek EdgeKey) IsDegenerate() bool {
	v := ek.GetVertices(false)
	return v[0] == v[1]
}

// EdgeSet counts how many elements share each edge
type EdgeSet map[EdgeKey]int

func (es EdgeSet) Add(verts [2]int) {
	es[NewEdgeKey(verts)]++
}

// Keys returns the edges in ascending key order
func (es EdgeSet) Keys() (keys []EdgeKey) {
	keys = make([]EdgeKey, 0, len(es))
	for k := range es {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return
}

// NumDegenerate returns the number of distinct edges with coincident ends
func (es EdgeSet) NumDegenerate() (n int) {
	for k := range es {
		if k.IsDegenerate() {
			n++
		}
	}
	return
}
