package nxcube

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", Move{Face: FaceR, Turn: CW}},
		{"R'", Move{Face: FaceR, Turn: CCW}},
		{"R2", Move{Face: FaceR, Turn: Double}},
		{"U", Move{Face: FaceU, Turn: CW}},
		{"F2", Move{Face: FaceF, Turn: Double}},
		{"B'", Move{Face: FaceB, Turn: CCW}},
		{" L ", Move{Face: FaceL, Turn: CW}},
		{"r", Move{Face: FaceR, Turn: CW, Layer: 1}},
		{"f'", Move{Face: FaceF, Turn: CCW, Layer: 1}},
		{"u2", Move{Face: FaceU, Turn: Double, Layer: 1}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "RR", "2R", "'"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q): want ErrInvalidNotation, got %v", in, err)
		}
	}
}

func TestParseMovesRejectsInvalidToken(t *testing.T) {
	if _, err := ParseMoves("R U X F"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("want ErrInvalidNotation, got %v", err)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	in := "R U' F2 b l' d2"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves = %q, want %q", got, in)
	}
}

func TestMoveInverse(t *testing.T) {
	cases := []struct {
		in, want Move
	}{
		{Move{Face: FaceR, Turn: CW}, Move{Face: FaceR, Turn: CCW}},
		{Move{Face: FaceR, Turn: CCW}, Move{Face: FaceR, Turn: CW}},
		{Move{Face: FaceU, Turn: Double}, Move{Face: FaceU, Turn: Double}},
		{Move{Face: FaceF, Turn: CW, Layer: 1}, Move{Face: FaceF, Turn: CCW, Layer: 1}},
	}
	for _, tc := range cases {
		if got := tc.in.Inverse(); got != tc.want {
			t.Errorf("%s.Inverse() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestInverseMovesOrder(t *testing.T) {
	moves, _ := ParseMoves("F R U'")
	inv := InverseMoves(moves)
	if got := FormatMoves(inv); got != "U R' F'" {
		t.Errorf("InverseMoves = %q, want %q", got, "U R' F'")
	}
}

func TestFaceAxis(t *testing.T) {
	if FaceU.Axis() != FaceD.Axis() {
		t.Error("U and D should share an axis")
	}
	if FaceF.Axis() != FaceB.Axis() {
		t.Error("F and B should share an axis")
	}
	if FaceL.Axis() != FaceR.Axis() {
		t.Error("L and R should share an axis")
	}
	if FaceU.Axis() == FaceF.Axis() || FaceF.Axis() == FaceL.Axis() || FaceU.Axis() == FaceL.Axis() {
		t.Error("the three axes should be distinct")
	}
}
