package nxcube

import "strings"

// Cube represents an N×N×N Rubik's cube as six N×N sticker grids.
// Each face grid is stored row-major; row 0 is the top row of the face
// as seen in the standard unfolded net (U above, L F R B in a band, D
// below).
//
// A Cube is not safe for concurrent mutation. Callers that want to
// explore move branches in parallel should Clone first and mutate only
// the private copy; clones share no state.
type Cube struct {
	size  int
	faces [NumFaces][]Color
}

// New creates a solved size×size×size cube with standard orientation:
// White on top, Green in front. Returns ErrInvalidSize for size < 2.
func New(size int) (*Cube, error) {
	c, err := newCube(size)
	if err != nil {
		return nil, err
	}
	for f := CubeFace(0); f < NumFaces; f++ {
		color := f.SolvedColor()
		grid := c.faces[f]
		for i := range grid {
			grid[i] = color
		}
	}
	return c, nil
}

// NewBlank creates a cube with every sticker set to White, pending
// external coloring via SetSticker.
func NewBlank(size int) (*Cube, error) {
	return newCube(size)
}

func newCube(size int) (*Cube, error) {
	if size < 2 {
		return nil, ErrInvalidSize
	}
	c := &Cube{size: size}
	for f := range c.faces {
		c.faces[f] = make([]Color, size*size)
	}
	return c, nil
}

// Size returns the edge length N of the cube.
func (c *Cube) Size() int {
	return c.size
}

// Sticker returns the color at (row, col) on the given face.
func (c *Cube) Sticker(face CubeFace, row, col int) (Color, error) {
	if face < 0 || face >= NumFaces {
		return 0, ErrIndexOutOfRange
	}
	if row < 0 || row >= c.size || col < 0 || col >= c.size {
		return 0, ErrIndexOutOfRange
	}
	return c.faces[face][row*c.size+col], nil
}

// SetSticker sets the color at (row, col) on the given face. This is the
// manual-coloring entry point; it performs no cube-level consistency
// checks (run Validate for those).
func (c *Cube) SetSticker(face CubeFace, row, col int, color Color) error {
	if face < 0 || face >= NumFaces {
		return ErrIndexOutOfRange
	}
	if row < 0 || row >= c.size || col < 0 || col >= c.size {
		return ErrIndexOutOfRange
	}
	c.faces[face][row*c.size+col] = color
	return nil
}

// IsSolved reports whether every face is internally uniform in color.
// This is a necessary but not sufficient condition for physical
// solvability: a manually colored cube can satisfy it without being a
// legally reachable arrangement.
func (c *Cube) IsSolved() bool {
	for f := range c.faces {
		grid := c.faces[f]
		first := grid[0]
		for _, color := range grid[1:] {
			if color != first {
				return false
			}
		}
	}
	return true
}

// Clone creates a deep copy of the cube. The clone's grids share no
// memory with the original; mutating one never affects the other.
func (c *Cube) Clone() *Cube {
	clone := &Cube{size: c.size}
	for f := range c.faces {
		clone.faces[f] = make([]Color, len(c.faces[f]))
		copy(clone.faces[f], c.faces[f])
	}
	return clone
}

// Equal reports whether both cubes have the same size and identical
// sticker grids.
func (c *Cube) Equal(other *Cube) bool {
	if c.size != other.size {
		return false
	}
	for f := range c.faces {
		for i := range c.faces[f] {
			if c.faces[f][i] != other.faces[f][i] {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var sb strings.Builder
	indent := strings.Repeat("  ", c.size)

	// U face (indented)
	for row := 0; row < c.size; row++ {
		sb.WriteString(indent)
		for col := 0; col < c.size; col++ {
			sb.WriteString(c.faces[CubeFaceU][row*c.size+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < c.size; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < c.size; col++ {
				sb.WriteString(c.faces[face][row*c.size+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < c.size; row++ {
		sb.WriteString(indent)
		for col := 0; col < c.size; col++ {
			sb.WriteString(c.faces[CubeFaceD][row*c.size+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
