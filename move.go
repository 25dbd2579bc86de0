package nxcube

import "strings"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six faces in a stable order.
var Faces = []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

// Axis is the pair grouping of opposite faces that share a rotation
// axis: Front/Back, Left/Right, Up/Down.
type Axis int

const (
	AxisUD Axis = 0 // Up/Down
	AxisFB Axis = 1 // Front/Back
	AxisLR Axis = 2 // Left/Right
)

// Axis returns the rotation axis of the face.
func (f Face) Axis() Axis {
	switch f {
	case FaceU, FaceD:
		return AxisUD
	case FaceF, FaceB:
		return AxisFB
	default:
		return AxisLR
	}
}

// CubeFace returns the face-grid identifier for this notation face.
func (f Face) CubeFace() (CubeFace, error) {
	switch f {
	case FaceU:
		return CubeFaceU, nil
	case FaceD:
		return CubeFaceD, nil
	case FaceF:
		return CubeFaceF, nil
	case FaceB:
		return CubeFaceB, nil
	case FaceR:
		return CubeFaceR, nil
	case FaceL:
		return CubeFaceL, nil
	default:
		return 0, ErrInvalidMove
	}
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move: which face to turn, the direction
// and amount, and the layer depth. Layer 0 is the outer layer; layers
// 1..size/2-1 are inner slices that rotate a ring of boundary stickers
// without turning any face grid (only meaningful for size >= 4).
type Move struct {
	Face  Face // Which face the layer is counted from
	Turn  Turn // Direction and amount
	Layer int  // 0 = outer layer, >= 1 = inner slice
}

// Notation returns the standard cube notation string for this move.
// Outer moves use upper-case (R, R', R2); layer-1 slices use the
// lower-case counterpart (r, r', r2). Deeper layers have no
// single-letter notation and render like layer-1 slices.
func (m Move) Notation() string {
	face := string(m.Face)
	if m.Layer > 0 {
		face = strings.ToLower(face)
	}
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return face + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// InverseMoves returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// ParseMove parses a standard notation string into a Move.
// Upper-case faces are outer-layer moves (R, R', R2); lower-case faces
// are first-inner-slice moves (r, r', r2), valid only for cubes of
// size >= 4 (checked when the move is applied).
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Extract face and layer
	var face Face
	layer := 0
	switch s[0] {
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	case 'r':
		face, layer = FaceR, 1
	case 'l':
		face, layer = FaceL, 1
	case 'u':
		face, layer = FaceU, 1
	case 'd':
		face, layer = FaceD, 1
	case 'f':
		face, layer = FaceF, 1
	case 'b':
		face, layer = FaceB, 1
	default:
		return Move{}, ErrInvalidNotation
	}

	// Extract turn
	turn := CW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // Same as 180
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn, Layer: layer}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Returns an error on the first invalid token.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
