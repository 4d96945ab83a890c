// internal/store/sqlite.go
//
// SQLite persistence for decision trees, batch solve results and finished
// daily games.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Storing trees by name as JSON.
//   - Recording solve runs and summarizing their guess counts.
//   - Recording daily games and their per-date distribution.

package store

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/kellegous/wordle/internal/dtree"
	"github.com/kellegous/wordle/internal/solver"
)

//go:embed sql/*.sql
var migrations embed.FS

// DB wraps a migrated SQLite database.
type DB struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite database at path and brings
// its schema up to date.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// Connection options go in the DSN so every pooled connection gets them.
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// migrate applies embedded sql/*.sql files in lexical order, each in its own
// transaction, skipping files already listed in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

/* ------------------------------ Trees ------------------------------ */

// TreeInfo describes a stored tree without loading it.
type TreeInfo struct {
	Name      string    `json:"name"`
	Nodes     int       `json:"nodes"`
	Depth     int       `json:"depth"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveTree stores root under name, replacing any tree with that name.
func (d *DB) SaveTree(ctx context.Context, name string, root *dtree.Node) error {
	var buf bytes.Buffer
	if err := dtree.WriteJSON(&buf, root); err != nil {
		return err
	}
	_, err := d.db.ExecContext(ctx, `
        INSERT INTO trees (name, body, nodes, depth, updated_at)
        VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(name) DO UPDATE SET
            body=excluded.body, nodes=excluded.nodes,
            depth=excluded.depth, updated_at=excluded.updated_at`,
		name, buf.String(), root.Size(), root.Depth(),
	)
	return err
}

// LoadTree returns the tree stored under name, or ErrNotFound.
func (d *DB) LoadTree(ctx context.Context, name string) (*dtree.Node, error) {
	var body string
	err := d.db.QueryRowContext(ctx, `SELECT body FROM trees WHERE name=?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tree %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return dtree.ReadJSON(bytes.NewBufferString(body))
}

// Trees lists stored trees by name.
func (d *DB) Trees(ctx context.Context) ([]TreeInfo, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT name, nodes, depth, updated_at FROM trees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TreeInfo
	for rows.Next() {
		var t TreeInfo
		if err := rows.Scan(&t.Name, &t.Nodes, &t.Depth, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

/* --------------------------- Solve runs ---------------------------- */

// RunSummary is the stored outcome of one SolveAll batch.
type RunSummary struct {
	RunID     int64       `json:"runId"`
	Strategy  string      `json:"strategy"`
	Total     int         `json:"total"`
	Errors    int         `json:"errors"`
	Histogram map[int]int `json:"histogram"`
}

// SaveRun records results under a new run for strategy and returns its ID.
func (d *DB) SaveRun(ctx context.Context, strategy string, results []solver.Result) (int64, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO solve_runs (strategy) VALUES (?)`, strategy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO solve_results (run_id, solution, guesses, error)
        VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, r := range results {
		var msg sql.NullString
		if r.Err != nil {
			msg = sql.NullString{String: r.Err.Error(), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, id, r.Solution.String(), len(r.Guesses), msg); err != nil {
			return 0, fmt.Errorf("insert %s: %w", r.Solution, err)
		}
	}
	return id, tx.Commit()
}

// LatestRun summarizes the most recent run for strategy, or ErrNotFound.
func (d *DB) LatestRun(ctx context.Context, strategy string) (RunSummary, error) {
	s := RunSummary{Strategy: strategy, Histogram: map[int]int{}}
	err := d.db.QueryRowContext(ctx,
		`SELECT id FROM solve_runs WHERE strategy=? ORDER BY id DESC LIMIT 1`, strategy,
	).Scan(&s.RunID)
	if errors.Is(err, sql.ErrNoRows) {
		return s, fmt.Errorf("run for %q: %w", strategy, ErrNotFound)
	}
	if err != nil {
		return s, err
	}

	rows, err := d.db.QueryContext(ctx, `
        SELECT guesses, error IS NOT NULL, COUNT(1)
        FROM solve_results
        WHERE run_id=?
        GROUP BY guesses, error IS NOT NULL`, s.RunID)
	if err != nil {
		return s, err
	}
	defer rows.Close()

	for rows.Next() {
		var guesses, count int
		var failed bool
		if err := rows.Scan(&guesses, &failed, &count); err != nil {
			return s, err
		}
		s.Total += count
		if failed {
			s.Errors += count
			continue
		}
		s.Histogram[guesses] += count
	}
	return s, rows.Err()
}

/* -------------------------- Daily results -------------------------- */

// DailyResult is a finished daily game.
type DailyResult struct {
	GameID  string `json:"gameId"`
	Date    string `json:"date"` // YYYY-MM-DD
	Number  int    `json:"number"`
	Guesses int    `json:"guesses"`
	Won     bool   `json:"won"`
}

// DailyStats is the distribution of finished games for one date.
type DailyStats struct {
	Date      string      `json:"date"`
	Played    int         `json:"played"`
	Won       int         `json:"won"`
	Histogram map[int]int `json:"histogram"` // guesses of won games
}

// RecordDaily inserts r. A game already recorded is ignored.
func (d *DB) RecordDaily(ctx context.Context, r DailyResult) error {
	_, err := d.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO daily_results (game_id, date, number, guesses, won)
        VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Date, r.Number, r.Guesses, r.Won,
	)
	return err
}

// Daily returns the stats for date.
func (d *DB) Daily(ctx context.Context, date string) (DailyStats, error) {
	st := DailyStats{Date: date, Histogram: map[int]int{}}
	rows, err := d.db.QueryContext(ctx, `
        SELECT guesses, won, COUNT(1)
        FROM daily_results
        WHERE date=?
        GROUP BY guesses, won`, date)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var guesses, count int
		var won bool
		if err := rows.Scan(&guesses, &won, &count); err != nil {
			return st, err
		}
		st.Played += count
		if won {
			st.Won += count
			st.Histogram[guesses] += count
		}
	}
	return st, rows.Err()
}
