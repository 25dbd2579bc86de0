package nxcube

import (
	"math/rand"
	"time"
)

// Scrambler generates random legal outer-layer move sequences.
type Scrambler struct {
	rng *rand.Rand
}

// NewScrambler creates a scrambler. Without options it seeds from the
// current time.
func NewScrambler(opts ...Option) *Scrambler {
	s := &Scrambler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var turns = []Turn{CW, CCW, Double}

// Generate produces length legal outer-layer moves for a cube of the
// given size. No two consecutive moves act on the same face, and no two
// consecutive moves share a rotation axis, so no pair of adjacent moves
// cancels or merges.
//
// Returns ErrInvalidArgument for length < 1, ErrInvalidSize for
// size < 2, and ErrExhaustedMoveSet if the constraints leave no
// candidate face (cannot happen with six faces on three axes, but a
// defined error beats an infinite loop).
func (s *Scrambler) Generate(size, length int) ([]Move, error) {
	if length < 1 {
		return nil, ErrInvalidArgument
	}
	if size < 2 {
		return nil, ErrInvalidSize
	}

	moves := make([]Move, 0, length)
	var prev Face
	for i := 0; i < length; i++ {
		candidates := make([]Face, 0, len(Faces))
		for _, f := range Faces {
			if i > 0 && (f == prev || f.Axis() == prev.Axis()) {
				continue
			}
			candidates = append(candidates, f)
		}
		if len(candidates) == 0 {
			return nil, ErrExhaustedMoveSet
		}

		face := candidates[s.rng.Intn(len(candidates))]
		turn := turns[s.rng.Intn(len(turns))]
		moves = append(moves, Move{Face: face, Turn: turn})
		prev = face
	}

	return moves, nil
}

// Difficulty is a preset scramble length.
type Difficulty int

const (
	Easy   Difficulty = 0
	Medium Difficulty = 1
	Hard   Difficulty = 2
	Expert Difficulty = 3
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return 0, ErrInvalidArgument
	}
}

// BaseLength returns the preset scramble length for a 3x3 cube.
func (d Difficulty) BaseLength() int {
	switch d {
	case Easy:
		return 10
	case Medium:
		return 20
	case Hard:
		return 30
	case Expert:
		return 50
	default:
		return 20
	}
}

// Length returns the scramble length for the given cube size: the base
// preset, scaled up for cubes larger than 3x3 (more layers need more
// moves to mix).
func (d Difficulty) Length(size int) int {
	base := d.BaseLength()
	if size <= 3 {
		return base
	}
	return base * size / 3
}
