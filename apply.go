package nxcube

// The move engine is table-driven: one adjacency table describes, for
// each rotatable face, the four boundary strips on the neighboring
// faces that cycle when a layer of that face turns. A single quarter-CW
// primitive consults the table; CCW is three CW quarters and a half
// turn is two, so every direction shares one code path.

// strip describes one boundary strip on a neighbor face as a function
// of the layer depth d and a running index k in [0, N).
type strip struct {
	face CubeFace
	row  bool // strip is a row (col varies with k); otherwise a column
	far  bool // fixed index is N-1-d instead of d
	rev  bool // enumerate k from the high end down
}

// adjacency lists, for each rotated face, its four neighbor strips in
// clockwise cycle order as seen from the rotated face: a quarter-CW
// turn moves the contents of strip i into strip i+1 (mod 4). The rev
// flags encode the index reversal where a strip meets the rotated face
// at a perpendicular edge.
var adjacency = [NumFaces][4]strip{
	CubeFaceU: {
		{face: CubeFaceF, row: true},
		{face: CubeFaceL, row: true},
		{face: CubeFaceB, row: true},
		{face: CubeFaceR, row: true},
	},
	CubeFaceD: {
		{face: CubeFaceF, row: true, far: true},
		{face: CubeFaceR, row: true, far: true},
		{face: CubeFaceB, row: true, far: true},
		{face: CubeFaceL, row: true, far: true},
	},
	CubeFaceF: {
		{face: CubeFaceU, row: true, far: true},
		{face: CubeFaceR},
		{face: CubeFaceD, row: true, rev: true},
		{face: CubeFaceL, far: true, rev: true},
	},
	CubeFaceB: {
		{face: CubeFaceU, row: true, rev: true},
		{face: CubeFaceL},
		{face: CubeFaceD, row: true, far: true},
		{face: CubeFaceR, far: true, rev: true},
	},
	CubeFaceR: {
		{face: CubeFaceU, far: true},
		{face: CubeFaceB, rev: true},
		{face: CubeFaceD, far: true},
		{face: CubeFaceF, far: true},
	},
	CubeFaceL: {
		{face: CubeFaceU},
		{face: CubeFaceF},
		{face: CubeFaceD},
		{face: CubeFaceB, far: true, rev: true},
	},
}

// stripIndex resolves the flat grid index of position k along the strip
// at layer depth d.
func (c *Cube) stripIndex(s strip, depth, k int) int {
	n := c.size
	idx := depth
	if s.far {
		idx = n - 1 - depth
	}
	if s.rev {
		k = n - 1 - k
	}
	if s.row {
		return idx*n + k
	}
	return k*n + idx
}

// ApplyMove applies a single move to the cube in place.
// Returns ErrInvalidMove for an unknown face or turn, and
// ErrInvalidLayer when the layer depth does not exist for this size
// (layer must satisfy 0 <= layer < size/2).
func (c *Cube) ApplyMove(m Move) error {
	face, err := m.Face.CubeFace()
	if err != nil {
		return err
	}
	if m.Layer < 0 || m.Layer >= c.size/2 {
		return ErrInvalidLayer
	}

	var reps int
	switch m.Turn {
	case CW:
		reps = 1
	case Double:
		reps = 2
	case CCW:
		reps = 3
	default:
		return ErrInvalidMove
	}

	for i := 0; i < reps; i++ {
		c.quarterCW(face, m.Layer)
	}
	return nil
}

// Apply applies moves left to right. It stops at the first invalid move
// and returns its error; moves before it have already been applied.
func (c *Cube) Apply(moves ...Move) error {
	return c.ApplyMoves(moves)
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses a space-separated move sequence and applies it.
// Example: "R U R' U'"
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.ApplyMoves(moves)
}

// quarterCW performs one quarter clockwise turn of the given layer.
// The outer layer rotates the face grid and cycles the depth-0 boundary
// strips; an inner slice only cycles strips at its depth, since no face
// grid corresponds to an inner layer.
func (c *Cube) quarterCW(face CubeFace, layer int) {
	if layer == 0 {
		c.rotateFaceCW(face)
	}
	c.cycleBoundaryCW(face, layer)
}

// rotateFaceCW rotates a face grid 90 degrees clockwise:
// new[j][N-1-i] = old[i][j].
func (c *Cube) rotateFaceCW(face CubeFace) {
	n := c.size
	old := c.faces[face]
	rotated := make([]Color, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rotated[j*n+(n-1-i)] = old[i*n+j]
		}
	}
	c.faces[face] = rotated
}

// cycleBoundaryCW shifts the four neighbor strips one position around
// the rotated face's perimeter at the given depth.
func (c *Cube) cycleBoundaryCW(face CubeFace, depth int) {
	strips := adjacency[face]
	n := c.size

	saved := make([]Color, n)
	for k := 0; k < n; k++ {
		saved[k] = c.faces[strips[3].face][c.stripIndex(strips[3], depth, k)]
	}

	for i := 3; i > 0; i-- {
		dst, src := strips[i], strips[i-1]
		for k := 0; k < n; k++ {
			c.faces[dst.face][c.stripIndex(dst, depth, k)] =
				c.faces[src.face][c.stripIndex(src, depth, k)]
		}
	}

	for k := 0; k < n; k++ {
		c.faces[strips[0].face][c.stripIndex(strips[0], depth, k)] = saved[k]
	}
}
