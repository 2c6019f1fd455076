package revision

import (
	"fmt"
	"io"
	"log"

	"github.com/notargets/meshrev/mesh"
)

// Reviser produces revised copies of a mesh. The source mesh is only read.
type Reviser struct {
	mesh         *mesh.Mesh
	logger       *log.Logger
	index        IndexKind
	cellCapacity int
}

type Option func(*Reviser)

// WithLogger directs the per element revision log to l
func WithLogger(l *log.Logger) Option {
	return func(r *Reviser) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithIndex selects the spatial index used to find coincident nodes
func WithIndex(kind IndexKind) Option {
	return func(r *Reviser) { r.index = kind }
}

// WithGridCellCapacity sets the mean number of nodes per cell of the grid index
func WithGridCellCapacity(n int) Option {
	return func(r *Reviser) {
		if n > 0 {
			r.cellCapacity = n
		}
	}
}

func New(m *mesh.Mesh, opts ...Option) *Reviser {
	r := &Reviser{
		mesh:         m,
		logger:       log.New(io.Discard, "", 0),
		index:        GridIndex,
		cellCapacity: DefaultGridCellCapacity,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CollapseMap maps every node of the source mesh to its representative
// for tolerance eps
func (r *Reviser) CollapseMap(eps float64) CollapseMap {
	return BuildCollapseMap(r.mesh.Nodes, eps, r.index, r.cellCapacity)
}

// CountCollapsibleNodes returns how many nodes lie within eps of an
// earlier representative node
func (r *Reviser) CountCollapsibleNodes(eps float64) int {
	return r.CollapseMap(eps).NumCollapsed()
}

// CollapseNodes merges nodes closer than eps and renumbers the element
// references. Element types are kept even when nodes of an element merge.
func (r *Reviser) CollapseNodes(name string, eps float64) (*mesh.Mesh, error) {
	cm := r.CollapseMap(eps)
	nodes, index := constructNewNodes(r.mesh.Nodes, cm)
	elements, err := mesh.DuplicateElements(r.mesh.Elements, nodes, index)
	if err != nil {
		return nil, err
	}
	r.logger.Printf("%s: collapsed %d of %d nodes with tolerance %g",
		name, len(cm)-len(nodes), len(cm), eps)
	return mesh.NewMesh(name, nodes, elements)
}

// SimplifyMesh collapses nodes closer than eps, reduces the elements that
// lost nodes and subdivides elements with non-planar faces. Elements below
// minDim dimensions are dropped.
func (r *Reviser) SimplifyMesh(name string, eps float64, minDim int) (*mesh.Mesh, error) {
	if r.mesh.NumElements() == 0 {
		return nil, ErrNoElements
	}
	switch {
	case minDim < 1:
		minDim = 1
	case minDim > 3:
		minDim = 3
	}
	cm := r.CollapseMap(eps)
	nodes, index := constructNewNodes(r.mesh.Nodes, cm)
	red := &reducer{nodes: nodes, minDim: minDim}

	var elements []mesh.Element
	var nCopied, nReduced, nSplit, nDropped int
	for k, src := range r.mesh.Elements {
		e, err := mesh.DuplicateElement(src, nodes, index)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		nUnique := len(uniqueNodes(e.Nodes))
		switch {
		case nUnique == e.NumNodes() && e.Dimension() < minDim:
			r.logger.Printf("element %d: dropping %s below dimension %d", k, e.Type, minDim)
			nDropped++
		case nUnique == e.NumNodes():
			if e.Validate(nodes).Has(mesh.NonCoplanar) {
				sub, err := subdivide(e, nodes)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", k, err)
				}
				elements = append(elements, sub...)
				nSplit++
				continue
			}
			elements = append(elements, e)
			nCopied++
		case nUnique > 1 && nUnique < e.NumNodes():
			out, err := red.reduce(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", k, err)
			}
			if len(out) == 0 {
				r.logger.Printf("element %d: %s with %d unique nodes reduces to nothing at dimension %d",
					k, e.Type, nUnique, minDim)
				nDropped++
				continue
			}
			elements = append(elements, out...)
			nReduced++
		default:
			return nil, fmt.Errorf("element %d: %w: %s with %d unique nodes",
				k, ErrInvariantViolation, e.Type, nUnique)
		}
	}
	r.logger.Printf("%s: %d copied, %d reduced, %d subdivided, %d dropped, %d elements out",
		name, nCopied, nReduced, nSplit, nDropped, len(elements))
	if len(elements) == 0 {
		return nil, ErrNoElements
	}
	return mesh.NewMesh(name, nodes, elements)
}

// SubdivideMesh splits every element with non-planar faces, copying the rest
func (r *Reviser) SubdivideMesh(name string) (*mesh.Mesh, error) {
	if r.mesh.NumElements() == 0 {
		return nil, ErrNoElements
	}
	nodes := mesh.DuplicateNodes(r.mesh.Nodes)
	var elements []mesh.Element
	for k, src := range r.mesh.Elements {
		e, err := mesh.DuplicateElement(src, nodes, nil)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		if !e.Validate(nodes).Has(mesh.NonCoplanar) {
			elements = append(elements, e)
			continue
		}
		sub, err := subdivide(e, nodes)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		r.logger.Printf("element %d: %s split into %d elements", k, e.Type, len(sub))
		elements = append(elements, sub...)
	}
	if len(elements) == 0 {
		return nil, ErrNoElements
	}
	return mesh.NewMesh(name, nodes, elements)
}
