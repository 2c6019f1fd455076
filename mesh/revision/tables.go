package revision

// hexDiametral gives the hexahedron corner opposite each corner through the
// element center
var hexDiametral = [8]int{6, 7, 4, 5, 2, 3, 0, 1}

// hexCuttingQuads maps a directed hexahedron edge i-j to the quad cutting
// the element parallel to that edge, through the two edges opposite it on
// the adjacent faces. q0-q1 and q3-q2 run parallel to i-j and q0, q3 lie on
// the side of i.
var hexCuttingQuads = map[[2]int][4]int{
	{0, 1}: {3, 2, 5, 4},
	{1, 2}: {0, 3, 6, 5},
	{2, 3}: {1, 0, 7, 6},
	{3, 0}: {2, 1, 4, 7},
	{4, 5}: {0, 1, 6, 7},
	{5, 6}: {1, 2, 7, 4},
	{6, 7}: {2, 3, 4, 5},
	{7, 4}: {3, 0, 5, 6},
	{0, 4}: {3, 7, 5, 1},
	{1, 5}: {0, 4, 6, 2},
	{2, 6}: {1, 5, 7, 3},
	{3, 7}: {2, 6, 4, 0},

	{1, 0}: {2, 3, 4, 5},
	{2, 1}: {3, 0, 5, 6},
	{3, 2}: {0, 1, 6, 7},
	{0, 3}: {1, 2, 7, 4},
	{5, 4}: {1, 0, 7, 6},
	{6, 5}: {2, 1, 4, 7},
	{7, 6}: {3, 2, 5, 4},
	{4, 7}: {0, 3, 6, 5},
	{4, 0}: {7, 3, 1, 5},
	{5, 1}: {4, 0, 2, 6},
	{6, 2}: {5, 1, 3, 7},
	{7, 3}: {6, 2, 0, 4},
}

// hexCuttingQuad looks up the cutting quad of directed edge i-j. ok is false
// when i-j is not an edge of the hexahedron.
func hexCuttingQuad(i, j int) (q [4]int, ok bool) {
	q, ok = hexCuttingQuads[[2]int{i, j}]
	return
}

// hexBackNodes picks the hexahedron edge whose cutting quad splits the
// element into two prisms, one holding collapsed edge i-j and the other k-l.
// The prism across the quad from the returned edge b0-b1 is closed by the
// diametral edge of b1-b0.
func hexBackNodes(i, j, k, l int) (b [2]int, ok bool) {
	d := hexDiametral
	switch {
	case d[i] == k:
		return [2]int{i, d[l]}, true
	case d[i] == l:
		return [2]int{i, d[k]}, true
	case d[j] == k:
		return [2]int{j, d[l]}, true
	case d[j] == l:
		return [2]int{j, d[k]}, true
	case i == k:
		return [2]int{d[l], j}, true
	case i == l:
		return [2]int{d[k], j}, true
	case j == k:
		return [2]int{d[l], i}, true
	case j == l:
		return [2]int{d[k], i}, true
	}
	return b, false
}

// prismThirdNodes maps a prism cap edge to the remaining node of that cap
var prismThirdNodes = map[[2]int]int{
	{0, 1}: 2, {1, 0}: 2,
	{1, 2}: 0, {2, 1}: 0,
	{0, 2}: 1, {2, 0}: 1,
	{3, 4}: 5, {4, 3}: 5,
	{4, 5}: 3, {5, 4}: 3,
	{3, 5}: 4, {5, 3}: 4,
}

func prismThirdNode(i, j int) (k int, ok bool) {
	k, ok = prismThirdNodes[[2]int{i, j}]
	return
}
