package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/nxcube/internal/render"
)

var showAscii bool

var showCmd = &cobra.Command{
	Use:   "show [state.json]",
	Short: "Render a cube state in the terminal",
	Long: `Render a cube state as an unfolded net.

With a state file argument the state is imported (and validated) first;
without one a solved cube of the global --size is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showAscii, "ascii", false, "Use plain letters instead of colored blocks")
}

func runShow(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	cube, err := loadCube(path)
	if err != nil {
		return err
	}

	if showAscii {
		fmt.Print(cube.String())
	} else {
		fmt.Print(render.Net(cube))
	}
	fmt.Printf("Size: %dx%d  Solved: %v\n", cube.Size(), cube.Size(), cube.IsSolved())
	return nil
}
