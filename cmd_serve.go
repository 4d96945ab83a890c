package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kellegous/wordle/internal/dtree"
	"github.com/kellegous/wordle/internal/httpserver"
	"github.com/kellegous/wordle/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve games, solver runs and decision-tree lookups over HTTP.

The served tree is loaded from the database when one is configured and holds
a stored tree, otherwise from the decision tree file. The server starts
without a tree when neither exists; one can be uploaded with PUT /tree.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	lists, err := loadLists()
	if err != nil {
		return err
	}

	var db *store.DB
	if cfg.DBPath != "" {
		db, err = store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	tree, err := servedTree(cmd.Context(), db)
	if err != nil {
		return err
	}

	srv := httpserver.New(httpserver.Options{
		Lists:        lists,
		Sessions:     store.NewMemory(),
		DB:           db,
		Tree:         tree,
		ClientOrigin: cfg.Server.ClientOrigin,
		Auth: httpserver.AuthOptions{
			Secret:       cfg.Auth.JWTSecret,
			PasswordHash: cfg.Auth.AdminPasswordHash,
			TTL:          cfg.TokenTTL(),
		},
	})

	log.Info().Str("port", cfg.Server.Port).Bool("tree", tree != nil).Bool("db", db != nil).Msg("starting server")
	return srv.Start(":" + cfg.Server.Port)
}

func servedTree(ctx context.Context, db *store.DB) (*dtree.Node, error) {
	if db != nil {
		tree, err := db.LoadTree(ctx, httpserver.DefaultTreeName)
		if err == nil {
			return tree, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	tree, err := readTreeFile(cfg.Tree.File)
	if isNotExist(err) {
		log.Warn().Str("file", cfg.Tree.File).Msg("no decision tree, serving without one")
		return nil, nil
	}
	return tree, err
}
