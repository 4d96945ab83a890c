// main.go
//
// Command-line entry point.
// Commands:
//   - serve:            HTTP API for games, solving and tree lookups.
//   - solve, solve-all: run a solver strategy on one or every solution.
//   - build-tree, import-strategy, next: produce and query decision trees.
//   - show-off, schedule: daily puzzle listings.
//   - hash-password:    bcrypt hash for the admin password setting.
//
// Configuration is loaded once before any command runs (see internal/config);
// command flags override it.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kellegous/wordle/internal/config"
)

var (
	configPath string
	logLevel   string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle solver and decision-tree toolkit",
	Long: `wordle plays and solves five-letter word puzzles.

A greedy solver narrows a candidate pool with the feedback from each guess,
and a tree builder precomputes the next guess for every feedback sequence so
a game can be replayed by lookup alone.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.LogLevel = logLevel
		}
		cfg = c
		setupLogging(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (or set CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (or set LOG_LEVEL)")
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
