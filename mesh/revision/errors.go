package revision

import (
	"errors"

	"github.com/notargets/meshrev/mesh"
)

var (
	ErrUnknownElementType = mesh.ErrUnknownElementType
	// ErrInvariantViolation is returned when an element's unique node count
	// cannot be reconciled with its node count.
	ErrInvariantViolation = errors.New("unique node count inconsistent with element node count")
	// ErrUnsupportedDegeneracy is returned for collapse patterns with no
	// decomposition rule, such as diametral hexahedron corners or a prism
	// node collapsing onto a node of the opposite cap.
	ErrUnsupportedDegeneracy = errors.New("unsupported degenerate element configuration")
	// ErrNoElements is returned instead of a mesh without elements
	ErrNoElements = errors.New("mesh has no elements")
	// ErrNothingMarked is returned when removal is asked for with no
	// element selected
	ErrNothingMarked = errors.New("no elements selected for removal")
)
