package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dasdy/gamepedia/logging"
	"github.com/dasdy/gamepedia/model"

	_ "github.com/mattn/go-sqlite3"
)

const InMemory = ":memory:"

// Storage records how often games are shown in the gallery and opened on the detail page.
type Storage interface {
	RecordImpressions(ctx context.Context, ids []int) error
	RecordOpen(ctx context.Context, id int) error
	GatherAll(ctx context.Context) (map[int]model.GameStats, error)
	Close()
}

type SQLiteStorage struct {
	db *sql.DB
}

func InitDBStorage(ctx context.Context, db *sql.DB) error {
	sqlStmt := `
	create table if not exists game_events(game_id int not null, kind text not null, ts datetime not null);`

	if _, err := db.ExecContext(ctx, sqlStmt); err != nil {
		return fmt.Errorf("could not create game_events table: %w", err)
	}

	sqlStmt = `create index if not exists game_events_gameix on game_events (game_id, kind);`
	if _, err := db.ExecContext(ctx, sqlStmt); err != nil {
		return fmt.Errorf("could not create game_events index: %w", err)
	}

	return nil
}

// ConnectDB opens the sqlite file at path, or an in-memory database for InMemory.
func ConnectDB(ctx context.Context, path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	// Every new connection to :memory: gets its own empty database.
	if path == InMemory {
		db.SetMaxOpenConns(1)
	}

	if err := InitDBStorage(ctx, db); err != nil {
		db.Close()

		return nil, err
	}

	slog.DebugContext(logging.PackageCtx("db"), "Connected to storage", "path", path)

	return &SQLiteStorage{db}, nil
}

const (
	kindImpression = "impression"
	kindOpen       = "open"
)

func (s *SQLiteStorage) RecordImpressions(ctx context.Context, ids []int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	for _, id := range ids {
		_, err := tx.ExecContext(ctx, `insert into game_events(game_id, kind, ts) values(?, ?, datetime('now', 'subsec'))`, id, kindImpression)
		if err != nil {
			_ = tx.Rollback()

			return fmt.Errorf("could not store impression of %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit impressions: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) RecordOpen(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, `insert into game_events(game_id, kind, ts) values(?, ?, datetime('now', 'subsec'))`, id, kindOpen)
	if err != nil {
		return fmt.Errorf("could not store open of %d: %w", id, err)
	}

	return nil
}

// GatherAll returns counters keyed by game id. Labels are left empty.
func (s *SQLiteStorage) GatherAll(ctx context.Context) (map[int]model.GameStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`select game_id,
		        sum(case when kind = 'impression' then 1 else 0 end),
		        sum(case when kind = 'open' then 1 else 0 end)
        from game_events
        group by game_id`)
	if err != nil {
		return nil, fmt.Errorf("could not query stats: %w", err)
	}

	defer rows.Close()

	result := make(map[int]model.GameStats)

	for rows.Next() {
		var id, impressions, opens int

		if err := rows.Scan(&id, &impressions, &opens); err != nil {
			return nil, fmt.Errorf("could not scan stats: %w", err)
		}

		result[id] = model.GameStats{ID: id, Impressions: impressions, Opens: opens}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read stats: %w", err)
	}

	return result, nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("Failed to close storage", "error", err)
	}
}
