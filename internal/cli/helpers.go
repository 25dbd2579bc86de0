package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/seamusw/nxcube"
	"github.com/seamusw/nxcube/internal/storage"
)

// loadCube reads a cube state from a JSON file, or returns a solved
// cube of the global --size when path is empty. Imported states are
// validated as a whole before use.
func loadCube(path string) (*nxcube.Cube, error) {
	if path == "" {
		return nxcube.New(cubeSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var cube nxcube.Cube
	if err := json.Unmarshal(data, &cube); err != nil {
		return nil, fmt.Errorf("failed to import state from %s: %w", path, err)
	}
	return &cube, nil
}

// writeCube writes a cube state to a JSON file, or to stdout when the
// path is empty.
func writeCube(cube *nxcube.Cube, path string) error {
	data, err := json.MarshalIndent(cube, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// openDB opens the scramble database at the --db flag path or the
// default location, and applies migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
