package mesh

import "errors"

var (
	// ErrUnknownElementType is returned for element type tags outside the
	// seven linear types a mesh may hold.
	ErrUnknownElementType = errors.New("unknown element type")
	// ErrNodeReference is returned when an element refers to a node the mesh
	// does not own.
	ErrNodeReference = errors.New("element references a node outside the mesh")
)
