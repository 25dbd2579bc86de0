package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/nxcube"
	"github.com/seamusw/nxcube/internal/render"
	"github.com/seamusw/nxcube/internal/storage"
)

var (
	scrambleLength     int
	scrambleDifficulty string
	scrambleSeed       int64
	scrambleSave       bool
	scrambleNotes      string
	scramblePreview    bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a legal scramble sequence",
	Long: `Generate a random legal scramble for a cube of the given size.

No two consecutive moves act on the same face or share a rotation axis,
so the sequence never contains trivially cancelling pairs.

Length comes from --length, or from --difficulty (easy/medium/hard/expert
mapped to 10/20/30/50 moves, scaled up for cubes larger than 3x3).`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "l", 0, "Number of moves (overrides --difficulty)")
	scrambleCmd.Flags().StringVarP(&scrambleDifficulty, "difficulty", "d", "medium", "Preset difficulty: easy, medium, hard, expert")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Save the scramble to the history database")
	scrambleCmd.Flags().StringVar(&scrambleNotes, "notes", "", "Notes to store with a saved scramble")
	scrambleCmd.Flags().BoolVarP(&scramblePreview, "preview", "p", false, "Render the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	difficulty, err := nxcube.ParseDifficulty(scrambleDifficulty)
	if err != nil {
		return fmt.Errorf("unknown difficulty %q", scrambleDifficulty)
	}

	length := scrambleLength
	if length == 0 {
		length = difficulty.Length(cubeSize)
	}

	var opts []nxcube.Option
	if scrambleSeed != 0 {
		opts = append(opts, nxcube.WithSeed(scrambleSeed))
	}

	scrambler := nxcube.NewScrambler(opts...)
	moves, err := scrambler.Generate(cubeSize, length)
	if err != nil {
		return err
	}

	notation := nxcube.FormatMoves(moves)
	fmt.Println(notation)

	if scramblePreview {
		cube, err := nxcube.New(cubeSize)
		if err != nil {
			return err
		}
		if err := cube.ApplyMoves(moves); err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(render.Net(cube))
	}

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewScrambleRepository(db)
		id, err := repo.Create(cubeSize, difficulty.String(), notation, scrambleNotes, len(moves))
		if err != nil {
			return err
		}
		fmt.Printf("Saved scramble %s\n", id)
	}

	return nil
}
