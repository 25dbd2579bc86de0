package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/nxcube"
)

var validateCmd = &cobra.Command{
	Use:   "validate <state.json>",
	Short: "Check the structural invariants of a cube state",
	Long: `Validate a JSON cube state file.

Checks that every face grid is the right size, every sticker is one of
the six legal colors, and every color appears exactly N² times. Problems
are reported, never repaired; the file is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var cube nxcube.Cube
	if err := json.Unmarshal(data, &cube); err != nil {
		var verr *nxcube.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("INVALID: %v\n", verr)
			return fmt.Errorf("state failed validation")
		}
		return err
	}

	fmt.Printf("OK: %dx%d state, all invariants hold\n", cube.Size(), cube.Size())
	return nil
}
