package nxcube

// Color represents a sticker color. The six constants below are the only
// legal values; anything else fails ParseColor and is reported by Validate.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// NumColors is the number of legal sticker colors.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the six legal colors.
func (c Color) Valid() bool {
	return c < NumColors
}

// ParseColor parses a single-letter color code (W, Y, G, B, R, O).
func ParseColor(s string) (Color, error) {
	switch s {
	case "W", "w":
		return White, nil
	case "Y", "y":
		return Yellow, nil
	case "G", "g":
		return Green, nil
	case "B", "b":
		return Blue, nil
	case "R", "r":
		return Red, nil
	case "O", "o":
		return Orange, nil
	default:
		return 0, ErrInvalidNotation
	}
}

// CubeFace identifies one of the six face grids of the cube model.
// This is distinct from Face which is used for move notation.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

// NumFaces is the number of cube faces.
const NumFaces = 6

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of this face on a solved cube.
func (f CubeFace) SolvedColor() Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	default:
		return Orange
	}
}
