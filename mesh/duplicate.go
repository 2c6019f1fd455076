package mesh

import "fmt"

// DuplicateNodes copies nodes, assigning IDs by position
func DuplicateNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Node{ID: i, Coords: n.Coords}
	}
	return out
}

// DuplicateElements rebuilds elements on top of newNodes. Element node n is
// replaced by index[n], so an index produced by a node collapse yields the
// collapsed topology. A nil index keeps the node positions.
func DuplicateElements(elements []Element, newNodes []Node, index []int) ([]Element, error) {
	out := make([]Element, len(elements))
	for k, e := range elements {
		el, err := DuplicateElement(e, newNodes, index)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		out[k] = el
	}
	return out, nil
}

// DuplicateElement rebuilds a single element, see DuplicateElements
func DuplicateElement(e Element, newNodes []Node, index []int) (Element, error) {
	if !e.Type.IsLinear() {
		return Element{}, fmt.Errorf("%w: %s", ErrUnknownElementType, e.Type)
	}
	nodes := make([]int, len(e.Nodes))
	for i, n := range e.Nodes {
		if index != nil {
			if n < 0 || n >= len(index) {
				return Element{}, fmt.Errorf("%w: node %d", ErrNodeReference, n)
			}
			n = index[n]
		}
		if n < 0 || n >= len(newNodes) {
			return Element{}, fmt.Errorf("%w: node %d of %d", ErrNodeReference, n, len(newNodes))
		}
		nodes[i] = n
	}
	return NewElement(e.Type, nodes, e.Material)
}
