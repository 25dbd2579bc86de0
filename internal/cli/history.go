package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/nxcube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles",
	Long:  `Display recent scrambles saved with 'nxcube scramble --save', newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of scrambles to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	scrambles, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(scrambles) == 0 {
		fmt.Println("No saved scrambles. Generate one with: nxcube scramble --save")
		return nil
	}

	for _, s := range scrambles {
		difficulty := "-"
		if s.Difficulty != nil {
			difficulty = *s.Difficulty
		}
		fmt.Printf("%s  %dx%d  %-7s %2d moves  %s\n",
			s.CreatedAt.Local().Format(time.DateTime),
			s.CubeSize, s.CubeSize, difficulty, s.MoveCount, s.MovesText)
		if s.Notes != nil {
			fmt.Printf("  notes: %s\n", *s.Notes)
		}
	}
	return nil
}
