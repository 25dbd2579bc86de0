// Package nxcube provides a size-parametric (N×N×N) Rubik's cube state
// and move-transformation engine.
//
// # Features
//
//   - Cube state for any size N >= 2 with deep Clone for branching
//   - Table-driven move engine: one adjacency table covers all six
//     faces, both directions, and inner-slice layers for N >= 4
//   - Standard move notation parsing and formatting (R, R', R2, r, ...)
//   - Axis-constrained scramble generation with difficulty presets
//   - Structural state validation with typed errors (never auto-repair)
//   - JSON state interchange with whole-import validation
//
// # Quick Start
//
// Create a cube and apply moves:
//
//	cube, err := nxcube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(nxcube.R, nxcube.U, nxcube.RPrime, nxcube.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube)
//
// # Scrambling
//
// Generate a legal scramble where no two consecutive moves share a face
// or an axis:
//
//	s := nxcube.NewScrambler()
//	moves, err := s.Generate(3, nxcube.Medium.Length(3))
//	fmt.Println(nxcube.FormatMoves(moves))
//
// # Bigger Cubes
//
// Sizes above 3 gain inner-slice moves (lower-case notation):
//
//	cube, _ := nxcube.New(4)
//	cube.ApplyNotation("r U r'")
//
// # Validation
//
// States assembled sticker by sticker (or imported from JSON) can be
// checked without being silently "fixed":
//
//	if err := nxcube.Validate(cube); err != nil {
//	    var verr *nxcube.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Println("bad state:", verr)
//	    }
//	}
//
// Note that IsSolved only checks that each face is uniform in color; it
// does not prove the arrangement is reachable by legal moves from a
// solved cube.
package nxcube
