package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kellegous/wordle/internal/daily"
	"github.com/kellegous/wordle/internal/dtree"
)

var (
	scheduleDays int
	showFrom     int
	showCount    int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "List upcoming daily puzzles and their solutions",
	Args:  cobra.NoArgs,
	RunE:  runSchedule,
}

var showOffCmd = &cobra.Command{
	Use:   "show-off",
	Short: "Print share blocks for past puzzles as solved by the tree",
	Args:  cobra.NoArgs,
	RunE:  runShowOff,
}

func init() {
	scheduleCmd.Flags().IntVar(&scheduleDays, "n", 100, "number of days")
	showOffCmd.Flags().StringVarP(&treeFile, "tree", "t", "", "decision tree file (default from config)")
	showOffCmd.Flags().IntVar(&showFrom, "from", 0, "first puzzle number")
	showOffCmd.Flags().IntVar(&showCount, "count", 0, "number of puzzles (default all)")
	rootCmd.AddCommand(scheduleCmd, showOffCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	lists, err := loadLists()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range daily.Schedule(lists.Solutions, time.Now(), scheduleDays) {
		fmt.Fprintf(out, "%s\t#%d\t%s\n", daily.DateKey(e.Date), e.Number, strings.ToUpper(e.Word.String()))
	}
	return nil
}

func runShowOff(cmd *cobra.Command, args []string) error {
	if showFrom < 0 {
		return fmt.Errorf("--from must not be negative, got %d", showFrom)
	}
	if showCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", showCount)
	}
	lists, err := loadLists()
	if err != nil {
		return err
	}
	root, err := readTreeFile(treePath())
	if err != nil {
		return err
	}

	end := len(lists.Solutions)
	if showCount > 0 && showFrom+showCount < end {
		end = showFrom + showCount
	}

	out := cmd.OutOrStdout()
	for n := showFrom; n < end; n++ {
		sol := lists.Solutions[n]
		guesses, err := dtree.Play(root, sol)
		if err != nil {
			return fmt.Errorf("puzzle %d (%s): %w", n, sol, err)
		}
		fmt.Fprintln(out, daily.Date(n).Format("01/02/2006"))
		fmt.Fprintln(out, daily.Share(n, guesses))
	}
	return nil
}
