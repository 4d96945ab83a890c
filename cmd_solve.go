package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kellegous/wordle/internal/solver"
	"github.com/kellegous/wordle/internal/store"
	"github.com/kellegous/wordle/internal/words"
)

var (
	strategyName string
	saveRun      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <solution>",
	Short: "Solve one puzzle and print each guess",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

var solveAllCmd = &cobra.Command{
	Use:   "solve-all",
	Short: "Solve every solution and report guess statistics",
	Long: `Run the strategy against every word of the solution list, using the
guess list as candidates. Failures on individual words are reported and do
not stop the run.`,
	Args: cobra.NoArgs,
	RunE: runSolveAll,
}

func init() {
	for _, c := range []*cobra.Command{solveCmd, solveAllCmd} {
		c.Flags().StringVarP(&strategyName, "strategy", "s", "greedy", "solver strategy (greedy, matching)")
		rootCmd.AddCommand(c)
	}
	solveAllCmd.Flags().BoolVar(&saveRun, "save", false, "record the results in the database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	sol, err := words.Parse(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	strategy, err := solver.Lookup(strategyName)
	if err != nil {
		return err
	}
	lists, err := loadLists()
	if err != nil {
		return err
	}

	guesses, err := strategy(lists.Guesses, sol)
	out := cmd.OutOrStdout()
	for _, g := range guesses {
		fmt.Fprintln(out, g)
	}
	return err
}

func runSolveAll(cmd *cobra.Command, args []string) error {
	strategy, err := solver.Lookup(strategyName)
	if err != nil {
		return err
	}
	lists, err := loadLists()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(lists.Solutions),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("solving"),
		progressbar.OptionShowCount(),
	)
	results, st := solver.SolveAll(lists.Guesses, lists.Solutions, strategy, func(r solver.Result) {
		_ = bar.Add(1)
		if r.Err != nil {
			log.Warn().Err(r.Err).Str("solution", r.Solution.String()).Msg("unsolved")
		}
	})
	_ = bar.Finish()

	printStats(cmd, st)

	if saveRun {
		if cfg.DBPath == "" {
			return fmt.Errorf("--save needs a database (set DB_PATH)")
		}
		db, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		id, err := db.SaveRun(cmd.Context(), strategyName, results)
		if err != nil {
			return err
		}
		log.Info().Int64("run", id).Str("strategy", strategyName).Msg("results saved")
	}
	return nil
}

func printStats(cmd *cobra.Command, st solver.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "total:  %d\n", st.Total)
	fmt.Fprintf(out, "solved: %d\n", st.Solved)
	fmt.Fprintf(out, "failed: %d (%d errors)\n", st.Failed, st.Errors)
	fmt.Fprintf(out, "median: %d\n", st.Median)
	fmt.Fprintf(out, "max:    %d\n", st.Max)
	fmt.Fprintf(out, "mean:   %.3f\n", st.Mean)

	counts := make([]int, 0, len(st.Histogram))
	for n := range st.Histogram {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		fmt.Fprintf(out, "%3d: %d\n", n, st.Histogram[n])
	}
}
