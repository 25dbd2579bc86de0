package nxcube

import (
	"encoding/json"
	"fmt"
)

// cubeJSON is the interchange schema shared with UI and import
// collaborators:
//
//	{ "size": N, "faces": { "U": [[ "W", ... ] x N ], "D": ..., ... } }
//
// Each color is a single-letter canonical code.
type cubeJSON struct {
	Size  int                   `json:"size"`
	Faces map[string][][]string `json:"faces"`
}

var faceKeys = []struct {
	key  string
	face CubeFace
}{
	{"U", CubeFaceU},
	{"D", CubeFaceD},
	{"L", CubeFaceL},
	{"R", CubeFaceR},
	{"F", CubeFaceF},
	{"B", CubeFaceB},
}

// MarshalJSON encodes the cube in the interchange schema.
func (c *Cube) MarshalJSON() ([]byte, error) {
	out := cubeJSON{
		Size:  c.size,
		Faces: make(map[string][][]string, NumFaces),
	}
	for _, fk := range faceKeys {
		grid := make([][]string, c.size)
		for row := 0; row < c.size; row++ {
			cells := make([]string, c.size)
			for col := 0; col < c.size; col++ {
				cells[col] = c.faces[fk.face][row*c.size+col].String()
			}
			grid[row] = cells
		}
		out.Faces[fk.key] = grid
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a cube from the interchange schema. The decoded
// state is validated as a whole before c is touched; on any failure the
// import is rejected and c is left unchanged.
func (c *Cube) UnmarshalJSON(data []byte) error {
	var in cubeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("nxcube: decode state: %w", err)
	}

	cube, err := NewBlank(in.Size)
	if err != nil {
		return err
	}
	for _, fk := range faceKeys {
		grid, ok := in.Faces[fk.key]
		if !ok {
			return fmt.Errorf("nxcube: state missing face %q", fk.key)
		}
		if len(grid) != in.Size {
			return fmt.Errorf("nxcube: face %s has %d rows, want %d", fk.key, len(grid), in.Size)
		}
		for row, cells := range grid {
			if len(cells) != in.Size {
				return fmt.Errorf("nxcube: face %s row %d has %d stickers, want %d", fk.key, row, len(cells), in.Size)
			}
			for col, cell := range cells {
				color, err := ParseColor(cell)
				if err != nil {
					return fmt.Errorf("nxcube: face %s[%d][%d]: invalid color %q", fk.key, row, col, cell)
				}
				cube.faces[fk.face][row*in.Size+col] = color
			}
		}
	}

	if err := Validate(cube); err != nil {
		return err
	}

	*c = *cube
	return nil
}
