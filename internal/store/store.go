// Package store keeps the in-process race log in SQLite.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/kingcabrams/typing/internal/model"
	"github.com/kingcabrams/typing/internal/race"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryDSN opens a private in-memory database that lives as long as the Store.
const MemoryDSN = ":memory:"

// Store wraps SQLite access for the race log.
type Store struct {
	db *sql.DB
}

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// OpenMemory opens a fresh in-memory race log.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS races (
			id INTEGER PRIMARY KEY,
			quote_name TEXT NOT NULL,
			username TEXT NOT NULL,
			layout TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			correct INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			wpm REAL NOT NULL,
			raw REAL NOT NULL,
			accuracy REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS race_splits (
			race_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			PRIMARY KEY (race_id, seq)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRace stores a finished race and its splits.
func (s *Store) InsertRace(ctx context.Context, summary model.RaceSummary, splits []model.SplitRow) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO races (quote_name, username, layout, ended_at, correct, misses, elapsed_ns, wpm, raw, accuracy)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.QuoteName,
		summary.Username,
		summary.Layout,
		summary.EndedAt.Format(time.RFC3339Nano),
		summary.Correct,
		summary.Misses,
		summary.ElapsedNs,
		summary.WPM,
		summary.Raw,
		summary.Accuracy,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(splits) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT INTO race_splits (race_id, seq, elapsed_ns, hits, misses) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, sp := range splits {
			if _, err = stmt.ExecContext(ctx, id, i, sp.ElapsedNs, sp.Hits, sp.Misses); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRaces returns logged races in the order they finished.
func (s *Store) ListRaces(ctx context.Context) ([]model.RaceSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, quote_name, username, layout, ended_at, correct, misses, elapsed_ns, wpm, raw, accuracy
		 FROM races ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var races []model.RaceSummary
	for rows.Next() {
		var r model.RaceSummary
		var endedAt string
		if err := rows.Scan(&r.ID, &r.QuoteName, &r.Username, &r.Layout, &endedAt, &r.Correct, &r.Misses, &r.ElapsedNs, &r.WPM, &r.Raw, &r.Accuracy); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		r.EndedAt = parsed
		races = append(races, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return races, nil
}

// ListSplits returns the splits of one race in order.
func (s *Store) ListSplits(ctx context.Context, raceID int64) ([]model.SplitRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT race_id, seq, elapsed_ns, hits, misses FROM race_splits WHERE race_id = ? ORDER BY seq ASC`, raceID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var splits []model.SplitRow
	for rows.Next() {
		var sp model.SplitRow
		if err := rows.Scan(&sp.RaceID, &sp.Seq, &sp.ElapsedNs, &sp.Hits, &sp.Misses); err != nil {
			return nil, err
		}
		splits = append(splits, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return splits, nil
}

// Aggregate summarizes every logged race.
func (s *Store) Aggregate(ctx context.Context) (model.SessionAggregate, error) {
	var agg model.SessionAggregate
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(correct), 0), COALESCE(SUM(misses), 0),
			COALESCE(SUM(elapsed_ns), 0), COALESCE(MAX(wpm), 0)
		 FROM races`)
	if err := row.Scan(&agg.Races, &agg.Correct, &agg.Misses, &agg.ElapsedNs, &agg.BestWPM); err != nil {
		return model.SessionAggregate{}, err
	}
	var session race.Session
	session.Record(race.Record{Correct: agg.Correct, Misses: agg.Misses, Elapsed: time.Duration(agg.ElapsedNs)})
	agg.AverageWPM, _ = session.Average()
	return agg, nil
}
