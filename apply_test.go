package nxcube

import (
	"errors"
	"testing"
)

// scrambled returns a cube of the given size in a fixed non-trivial
// state, so identity checks exercise more than the solved coloring.
func scrambled(t *testing.T, size int) *Cube {
	t.Helper()
	c, err := New(size)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.ApplyNotation("R U2 F' D L2 B"); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestQuarterTurnOrderFour(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		for _, face := range Faces {
			c := scrambled(t, size)
			want := c.Clone()
			for i := 0; i < 4; i++ {
				if err := c.ApplyMove(Move{Face: face, Turn: CW}); err != nil {
					t.Fatalf("size %d %s: %v", size, face, err)
				}
			}
			if !c.Equal(want) {
				t.Errorf("size %d: %s x 4 should return to original state", size, face)
				t.Log(c.String())
			}
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		for _, face := range Faces {
			for _, turn := range []Turn{CW, CCW, Double} {
				c := scrambled(t, size)
				want := c.Clone()
				m := Move{Face: face, Turn: turn}
				if err := c.ApplyMove(m); err != nil {
					t.Fatal(err)
				}
				if err := c.ApplyMove(m.Inverse()); err != nil {
					t.Fatal(err)
				}
				if !c.Equal(want) {
					t.Errorf("size %d: %s then %s should cancel", size, m, m.Inverse())
					t.Log(c.String())
				}
			}
		}
	}
}

func TestOppositeFacesCommute(t *testing.T) {
	pairs := [][2]Face{
		{FaceU, FaceD},
		{FaceF, FaceB},
		{FaceL, FaceR},
	}
	for _, size := range []int{2, 3, 4} {
		for _, pair := range pairs {
			a := Move{Face: pair[0], Turn: CW}
			b := Move{Face: pair[1], Turn: CW}

			c1 := scrambled(t, size)
			c2 := c1.Clone()

			if err := c1.Apply(a, b); err != nil {
				t.Fatal(err)
			}
			if err := c2.Apply(b, a); err != nil {
				t.Fatal(err)
			}
			if !c1.Equal(c2) {
				t.Errorf("size %d: %s and %s should commute", size, a, b)
				t.Log(c1.String())
				t.Log(c2.String())
			}
		}
	}
}

func TestHalfTurnEqualsTwoQuarters(t *testing.T) {
	for _, face := range Faces {
		c1 := scrambled(t, 3)
		c2 := c1.Clone()

		if err := c1.ApplyMove(Move{Face: face, Turn: Double}); err != nil {
			t.Fatal(err)
		}
		if err := c2.Apply(Move{Face: face, Turn: CW}, Move{Face: face, Turn: CW}); err != nil {
			t.Fatal(err)
		}
		if !c1.Equal(c2) {
			t.Errorf("%s2 should equal %s %s", face, face, face)
		}
	}
}

func TestSexyTriggerAndReverse(t *testing.T) {
	c, _ := New(3)
	if err := c.ApplyNotation("F R U R' U' F'"); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Fatal("cube should not be solved after F R U R' U' F'")
	}
	if err := c.ApplyNotation("F U R U' R' F'"); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("reverse sequence with inverted modifiers should restore solved state")
		t.Log(c.String())
	}
}

func TestU2TwiceIsIdentity(t *testing.T) {
	c := scrambled(t, 3)
	want := c.Clone()
	if err := c.ApplyNotation("U2 U2"); err != nil {
		t.Fatal(err)
	}
	if !c.Equal(want) {
		t.Error("U2 U2 should be the identity")
		t.Log(c.String())
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c, _ := New(3)
	for i := 0; i < 6; i++ {
		if err := c.ApplyMoves(SexyMove); err != nil {
			t.Fatal(err)
		}
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestInverseMovesRestoresState(t *testing.T) {
	for _, size := range []int{2, 3, 5} {
		c, _ := New(size)
		moves, err := ParseMoves("R U2 F' D L2 B U' R2")
		if err != nil {
			t.Fatal(err)
		}
		if err := c.ApplyMoves(moves); err != nil {
			t.Fatal(err)
		}
		if err := c.ApplyMoves(InverseMoves(moves)); err != nil {
			t.Fatal(err)
		}
		if !c.IsSolved() {
			t.Errorf("size %d: scramble then inverse should restore solved state", size)
			t.Log(c.String())
		}
	}
}

func TestSliceMoveOrderFour(t *testing.T) {
	for _, size := range []int{4, 5, 6} {
		for _, face := range Faces {
			for layer := 1; layer < size/2; layer++ {
				c := scrambled(t, size)
				want := c.Clone()
				m := Move{Face: face, Turn: CW, Layer: layer}
				for i := 0; i < 4; i++ {
					if err := c.ApplyMove(m); err != nil {
						t.Fatalf("size %d %s layer %d: %v", size, face, layer, err)
					}
				}
				if !c.Equal(want) {
					t.Errorf("size %d: %s layer %d x 4 should return to original", size, face, layer)
				}
			}
		}
	}
}

func TestSliceMoveLeavesFaceGridsUnrotatedOnSolved(t *testing.T) {
	// On a solved 4x4, an inner slice turn must not disturb the rotated
	// face's own grid or its opposite face.
	c, _ := New(4)
	if err := c.ApplyNotation("u"); err != nil {
		t.Fatal(err)
	}
	for _, face := range []CubeFace{CubeFaceU, CubeFaceD} {
		want := face.SolvedColor()
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				color, _ := c.Sticker(face, row, col)
				if color != want {
					t.Fatalf("slice u disturbed face %s at [%d][%d]", face, row, col)
				}
			}
		}
	}
	// But it must move stickers on the side faces.
	if c.IsSolved() {
		t.Error("slice u should scramble the side faces")
	}
}

func TestSliceMoveDiffersFromOuterMove(t *testing.T) {
	c1, _ := New(4)
	c2, _ := New(4)
	if err := c1.ApplyNotation("f"); err != nil {
		t.Fatal(err)
	}
	if err := c2.ApplyNotation("F"); err != nil {
		t.Fatal(err)
	}
	if c1.Equal(c2) {
		t.Error("slice f and outer F should produce different states")
	}
}

func TestSliceRejectedForSmallCubes(t *testing.T) {
	for _, size := range []int{2, 3} {
		c, _ := New(size)
		err := c.ApplyMove(Move{Face: FaceF, Turn: CW, Layer: 1})
		if !errors.Is(err, ErrInvalidLayer) {
			t.Errorf("size %d: slice layer 1 should be ErrInvalidLayer, got %v", size, err)
		}
	}

	// Layer at or past size/2 never exists.
	c, _ := New(4)
	if err := c.ApplyMove(Move{Face: FaceR, Turn: CW, Layer: 2}); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("4x4 layer 2: want ErrInvalidLayer, got %v", err)
	}
	if err := c.ApplyMove(Move{Face: FaceR, Turn: CW, Layer: -1}); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("negative layer: want ErrInvalidLayer, got %v", err)
	}
}

func TestApplyUnknownFace(t *testing.T) {
	c, _ := New(3)
	err := c.ApplyMove(Move{Face: Face("X"), Turn: CW})
	if !errors.Is(err, ErrInvalidMove) {
		t.Errorf("unknown face: want ErrInvalidMove, got %v", err)
	}
}

func TestMovesPreserveColorCounts(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		c, _ := New(size)
		s := NewScrambler(WithSeed(7))
		moves, err := s.Generate(size, 40)
		if err != nil {
			t.Fatal(err)
		}
		if err := c.ApplyMoves(moves); err != nil {
			t.Fatal(err)
		}
		if err := Validate(c); err != nil {
			t.Errorf("size %d: legal moves broke state invariants: %v", size, err)
		}
	}
}
