package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scramble represents a saved scramble in the database.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	CubeSize   int
	Difficulty *string
	MoveCount  int
	MovesText  string
	Notes      *string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create saves a scramble and returns its ID.
func (r *ScrambleRepository) Create(size int, difficulty, movesText, notes string, moveCount int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var difficultyPtr, notesPtr *string
	if difficulty != "" {
		difficultyPtr = &difficulty
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, cube_size, difficulty, move_count, moves_text, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), size, difficultyPtr, moveCount, movesText, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// Get fetches a scramble by ID.
func (r *ScrambleRepository) Get(id string) (*Scramble, error) {
	row := r.db.QueryRow(`
		SELECT scramble_id, created_at, cube_size, difficulty, move_count, moves_text, notes
		FROM scrambles WHERE scramble_id = ?
	`, id)

	s, err := scanScramble(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scramble %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}
	return s, nil
}

// List returns the most recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]*Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, cube_size, difficulty, move_count, moves_text, notes
		FROM scrambles ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []*Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, s)
	}
	return scrambles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (*Scramble, error) {
	var s Scramble
	var createdAt string
	if err := row.Scan(&s.ScrambleID, &createdAt, &s.CubeSize, &s.Difficulty, &s.MoveCount, &s.MovesText, &s.Notes); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.CreatedAt = t
	return &s, nil
}
