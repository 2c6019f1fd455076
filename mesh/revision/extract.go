package revision

import (
	"fmt"
	"sort"

	"github.com/notargets/meshrev/mesh"
	"github.com/notargets/meshrev/utils"
)

// ElementExtraction collects the elements matched by any of its searches and
// builds the mesh without them
type ElementExtraction struct {
	r      *Reviser
	marked map[int]bool
}

// ElementExtraction starts an empty selection on the source mesh
func (r *Reviser) ElementExtraction() *ElementExtraction {
	return &ElementExtraction{r: r, marked: make(map[int]bool)}
}

// mark adds the elements accepted by match and returns how many matched,
// whether or not they were marked before
func (x *ElementExtraction) mark(match func(e mesh.Element) bool) (n int) {
	for k, e := range x.r.mesh.Elements {
		if match(e) {
			x.marked[k] = true
			n++
		}
	}
	return
}

func (x *ElementExtraction) SearchByMaterial(material int) int {
	return x.mark(func(e mesh.Element) bool { return e.Material == material })
}

func (x *ElementExtraction) SearchByType(et utils.ElementType) int {
	return x.mark(func(e mesh.Element) bool { return e.Type == et })
}

// SearchByZeroContent marks elements the validator flags as ZeroVolume
func (x *ElementExtraction) SearchByZeroContent() int {
	nodes := x.r.mesh.Nodes
	return x.mark(func(e mesh.Element) bool { return e.Content(nodes) < utils.NODETOL })
}

// SearchByNode marks every element referencing node n
func (x *ElementExtraction) SearchByNode(n int) int {
	if n < 0 || n >= x.r.mesh.NumNodes() {
		return 0
	}
	elems := x.r.mesh.Incidence().Elements(n)
	for _, k := range elems {
		x.marked[k] = true
	}
	return len(elems)
}

// Marked returns the selected element positions in ascending order
func (x *ElementExtraction) Marked() []int {
	ks := make([]int, 0, len(x.marked))
	for k := range x.marked {
		ks = append(ks, k)
	}
	sort.Ints(ks)
	return ks
}

// RemoveElements builds a copy of the source mesh without the marked
// elements. Nodes only the removed elements used are dropped.
func (x *ElementExtraction) RemoveElements(name string) (*mesh.Mesh, error) {
	if len(x.marked) == 0 {
		return nil, ErrNothingMarked
	}
	src := x.r.mesh
	kept := make([]mesh.Element, 0, src.NumElements()-len(x.marked))
	for k, e := range src.Elements {
		if !x.marked[k] {
			kept = append(kept, e)
		}
	}
	x.r.logger.Printf("%s: removing %d of %d elements", name, len(x.marked), src.NumElements())
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: every element is selected for removal", ErrNoElements)
	}

	unused := (&mesh.Mesh{Nodes: src.Nodes, Elements: kept}).UnusedNodes()
	index := make([]int, src.NumNodes())
	survivors := make([]mesh.Node, 0, src.NumNodes()-len(unused))
	for i, u := 0, 0; i < src.NumNodes(); i++ {
		if u < len(unused) && unused[u] == i {
			index[i] = -1
			u++
			continue
		}
		index[i] = len(survivors)
		survivors = append(survivors, src.Nodes[i])
	}
	nodes := mesh.DuplicateNodes(survivors)
	elements, err := mesh.DuplicateElements(kept, nodes, index)
	if err != nil {
		return nil, err
	}
	x.r.logger.Printf("%s: dropped %d unused nodes", name, len(unused))
	return mesh.NewMesh(name, nodes, elements)
}
