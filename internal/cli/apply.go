package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seamusw/nxcube"
	"github.com/seamusw/nxcube/internal/render"
)

var (
	applyStateFile string
	applyOutFile   string
	applyJSON      bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>...",
	Short: "Apply a move sequence to a cube state",
	Long: `Apply a move sequence in standard notation to a cube state.

The state comes from --state (a JSON state file) or defaults to a solved
cube of the global --size. The resulting state is rendered, or written
as JSON with --json / --out.

Examples:
  nxcube apply "R U R' U'"
  nxcube apply --size 4 "r U r'"
  nxcube apply --state cube.json --out cube.json F2 D`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyStateFile, "state", "s", "", "JSON state file to start from (default: solved cube)")
	applyCmd.Flags().StringVarP(&applyOutFile, "out", "o", "", "Write the resulting state as JSON to this file")
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "Print the resulting state as JSON instead of a net")
}

func runApply(cmd *cobra.Command, args []string) error {
	cube, err := loadCube(applyStateFile)
	if err != nil {
		return err
	}

	moves, err := nxcube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if err := cube.ApplyMoves(moves); err != nil {
		return err
	}

	if applyOutFile != "" || applyJSON {
		return writeCube(cube, applyOutFile)
	}

	fmt.Print(render.Net(cube))
	if cube.IsSolved() {
		fmt.Println("Solved!")
	}
	return nil
}
