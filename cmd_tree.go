package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kellegous/wordle/internal/dtree"
	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/httpserver"
	"github.com/kellegous/wordle/internal/store"
)

// DefaultStrategyURL is a published hard-mode strategy listing.
const DefaultStrategyURL = "http://sonorouschocolate.com/notes/images/0/0e/Optimaltree.hardmode5.txt"

var (
	treeFile    string
	treeDepth   int
	treeWorkers int
	treeSave    bool
	strategySrc string
)

var buildTreeCmd = &cobra.Command{
	Use:   "build-tree",
	Short: "Search for a decision tree and write it as JSON",
	Long: `Search the guess list, in order, for a decision tree that solves every
solution within the depth budget. The first feasible guess at each node is
kept, so reordering the guess list changes the tree.`,
	Args: cobra.NoArgs,
	RunE: runBuildTree,
}

var importStrategyCmd = &cobra.Command{
	Use:   "import-strategy",
	Short: "Convert a published strategy listing into a JSON tree",
	Args:  cobra.NoArgs,
	RunE:  runImportStrategy,
}

var nextCmd = &cobra.Command{
	Use:   "next [feedback...]",
	Short: "Print the tree's next guess after the given feedback",
	Long: `Walk the decision tree by feedback codes, one per guess made so far,
and print the word to guess next. Codes are five of g, y and b (or x).`,
	RunE: runNext,
}

func init() {
	for _, c := range []*cobra.Command{buildTreeCmd, importStrategyCmd, nextCmd} {
		c.Flags().StringVarP(&treeFile, "tree", "t", "", "decision tree file (default from config)")
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{buildTreeCmd, importStrategyCmd} {
		c.Flags().BoolVar(&treeSave, "save", false, "also store the tree in the database as the served tree")
	}
	buildTreeCmd.Flags().IntVar(&treeDepth, "depth", 0, "depth budget (default from config)")
	buildTreeCmd.Flags().IntVar(&treeWorkers, "workers", 0, "root candidates evaluated in parallel (default from config)")
	importStrategyCmd.Flags().StringVarP(&strategySrc, "strategy", "s", DefaultStrategyURL, "strategy file or http(s) URL")
}

func treePath() string {
	if treeFile != "" {
		return treeFile
	}
	return cfg.Tree.File
}

func runBuildTree(cmd *cobra.Command, args []string) error {
	lists, err := loadLists()
	if err != nil {
		return err
	}

	depth, workers := cfg.Tree.Depth, cfg.Tree.Workers
	if treeDepth > 0 {
		depth = treeDepth
	}
	if treeWorkers > 0 {
		workers = treeWorkers
	}

	bar := progressbar.NewOptions(len(lists.Guesses),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("root candidates"),
		progressbar.OptionShowCount(),
	)
	b := dtree.NewBuilder(lists.Solutions,
		dtree.WithDepth(depth),
		dtree.WithWorkers(workers),
		dtree.WithProgress(func(done, total int) { _ = bar.Set(done) }),
	)

	start := time.Now()
	root, err := b.Build(cmd.Context(), lists.Guesses)
	_ = bar.Finish()
	if err != nil {
		return err
	}
	log.Info().
		Str("root", root.Word.String()).
		Int("nodes", root.Size()).
		Int("depth", root.Depth()).
		Dur("took", time.Since(start)).
		Msg("tree built")

	return saveTree(cmd, root)
}

func runImportStrategy(cmd *cobra.Command, args []string) error {
	r, err := openSource(strategySrc)
	if err != nil {
		return err
	}
	defer r.Close()

	root, err := dtree.ReadStrategy(r)
	if err != nil {
		return err
	}
	log.Info().
		Str("root", root.Word.String()).
		Int("nodes", root.Size()).
		Int("depth", root.Depth()).
		Msg("strategy imported")

	return saveTree(cmd, root)
}

// openSource opens a local file or fetches an http(s) URL.
func openSource(src string) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return os.Open(src)
	}

	client := &http.Client{Timeout: time.Minute}
	res, err := client.Get(src)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", src, res.Status)
	}
	return res.Body, nil
}

func saveTree(cmd *cobra.Command, root *dtree.Node) error {
	path := treePath()
	if err := writeTreeFile(path, root); err != nil {
		return err
	}
	log.Info().Str("file", path).Msg("tree written")

	if !treeSave {
		return nil
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("--save needs a database (set DB_PATH)")
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.SaveTree(cmd.Context(), httpserver.DefaultTreeName, root)
}

func runNext(cmd *cobra.Command, args []string) error {
	fbs := make([]game.Feedback, 0, len(args))
	for _, a := range args {
		fb, err := game.ParseFeedback(a)
		if err != nil {
			return err
		}
		fbs = append(fbs, fb)
	}

	root, err := readTreeFile(treePath())
	if err != nil {
		return err
	}
	n, err := dtree.Walk(root, fbs)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.ToUpper(n.Word.String()))
	return nil
}
