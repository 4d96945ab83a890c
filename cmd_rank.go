package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kellegous/wordle/internal/solver"
	"github.com/kellegous/wordle/internal/words"
)

var (
	rankMethod string
	rankSrc    string
	rankDict   bool
	rankOut    string
	rankScores bool
)

var rankWordsCmd = &cobra.Command{
	Use:   "rank-words",
	Short: "Order a word list for use as the guess list",
	Long: `Rank words so the solvers and the tree builder try the most useful
guesses first.

  frequency  distinct letters weighted by how common they are in the list
  partition  smallest mean feedback class against the rest of the list

The source defaults to the configured guess list. With --dict the source is
read as a general dictionary and only five-letter a-z entries are kept.`,
	Args: cobra.NoArgs,
	RunE: runRankWords,
}

func init() {
	rankWordsCmd.Flags().StringVarP(&rankMethod, "method", "m", "frequency", "ranking method (frequency, partition)")
	rankWordsCmd.Flags().StringVar(&rankSrc, "src", "", "word list to rank (default the guess list)")
	rankWordsCmd.Flags().BoolVar(&rankDict, "dict", false, "treat --src as a general dictionary")
	rankWordsCmd.Flags().StringVarP(&rankOut, "out", "o", "", "output file (default stdout)")
	rankWordsCmd.Flags().BoolVar(&rankScores, "scores", false, "print each word's score after it")
	rootCmd.AddCommand(rankWordsCmd)
}

func runRankWords(cmd *cobra.Command, args []string) error {
	rank, err := solver.LookupRanker(rankMethod)
	if err != nil {
		return err
	}
	list, err := rankSource()
	if err != nil {
		return err
	}

	ranked := rank(list)
	log.Info().Str("method", rankMethod).Int("words", len(ranked)).Msg("ranked")

	if rankOut == "" {
		return writeRanked(cmd.OutOrStdout(), ranked)
	}
	f, err := os.Create(rankOut)
	if err != nil {
		return err
	}
	if err := writeRanked(f, ranked); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rankSource() ([]words.Word, error) {
	if rankSrc == "" {
		lists, err := loadLists()
		if err != nil {
			return nil, err
		}
		return lists.Guesses, nil
	}
	if !rankDict {
		return words.ReadFile(rankSrc)
	}
	f, err := os.Open(rankSrc)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return words.ReadDictionary(f)
}

func writeRanked(w io.Writer, ranked []solver.Ranked) error {
	bw := bufio.NewWriter(w)
	for _, r := range ranked {
		if rankScores {
			fmt.Fprintf(bw, "%s\t%g\n", r.Word, r.Score)
		} else {
			fmt.Fprintln(bw, r.Word)
		}
	}
	return bw.Flush()
}
