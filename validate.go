package nxcube

import "fmt"

// ValidationError reports a structural problem found in a cube state.
// Exactly one of the three problem shapes applies:
//
//   - a face grid with the wrong number of stickers (Face set, Expected
//     and Actual are entry counts)
//   - a sticker holding a value outside the six legal colors (Face,
//     Row, Col and Color set)
//   - a color whose total count across the cube is not size² (Face is
//     -1, Color, Expected and Actual set)
type ValidationError struct {
	Face     CubeFace
	Row, Col int
	Color    Color
	Expected int
	Actual   int
}

func (e *ValidationError) Error() string {
	if e.Face >= 0 && !e.Color.Valid() {
		return fmt.Sprintf("nxcube: invalid color value %d at %s[%d][%d]",
			byte(e.Color), e.Face, e.Row, e.Col)
	}
	if e.Face >= 0 {
		return fmt.Sprintf("nxcube: face %s has %d stickers, want %d",
			e.Face, e.Actual, e.Expected)
	}
	return fmt.Sprintf("nxcube: color %s appears %d times, want %d",
		e.Color, e.Actual, e.Expected)
}

// Validate checks the structural invariants of a cube state: every face
// grid holds exactly size×size entries, every sticker is one of the six
// legal colors, and each color appears exactly size² times across the
// whole cube.
//
// Invalid states are reported, never repaired: the caller decides
// remediation. Returns nil or a *ValidationError for the first problem
// found.
func Validate(c *Cube) error {
	n := c.size
	want := n * n

	for f := CubeFace(0); f < NumFaces; f++ {
		if len(c.faces[f]) != want {
			return &ValidationError{Face: f, Color: White, Expected: want, Actual: len(c.faces[f])}
		}
	}

	var counts [NumColors]int
	for f := CubeFace(0); f < NumFaces; f++ {
		for i, color := range c.faces[f] {
			if !color.Valid() {
				return &ValidationError{Face: f, Row: i / n, Col: i % n, Color: color}
			}
			counts[color]++
		}
	}

	for color := Color(0); color < NumColors; color++ {
		if counts[color] != want {
			return &ValidationError{Face: -1, Color: color, Expected: want, Actual: counts[color]}
		}
	}

	return nil
}
