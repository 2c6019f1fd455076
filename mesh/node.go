package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Node is a mesh vertex. ID equals the node's position in the owning mesh.
type Node struct {
	ID     int
	Coords r3.Vec
}

func NewNode(id int, x, y, z float64) Node {
	return Node{ID: id, Coords: r3.Vec{X: x, Y: y, Z: z}}
}
