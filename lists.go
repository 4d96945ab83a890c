package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/kellegous/wordle/internal/dtree"
	"github.com/kellegous/wordle/internal/words"
)

func loadLists() (*words.Lists, error) {
	lists, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	sols, allowed := lists.Stats()
	log.Debug().Int("solutions", sols).Int("allowed", allowed).Msg("word lists loaded")
	return lists, nil
}

func readTreeFile(path string) (*dtree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dtree.ReadJSON(f)
}

func writeTreeFile(path string, root *dtree.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dtree.WriteJSON(f, root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
