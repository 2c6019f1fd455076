package utils

const (
	NODETOL = 1.e-12
	// COPLANARTOL bounds the normalized triple product of four points
	// treated as lying in one plane.
	COPLANARTOL = 1.e-9
)
