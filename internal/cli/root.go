// Package cli implements the command-line interface for nxcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath   string
	cubeSize int
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "NxN Rubik's cube engine",
	Long: `nxcube - a size-parametric Rubik's cube state and move engine.

Generate legal scrambles, apply move sequences to cube states, validate
manually colored or imported states, and render cubes in the terminal.
Cube states travel as JSON files so other tools can produce and consume
them.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.nxcube/nxcube.db)")
	rootCmd.PersistentFlags().IntVarP(&cubeSize, "size", "n", 3, "Cube size N (N >= 2)")
}
