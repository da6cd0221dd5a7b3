package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"
)

// PostgresStore keeps one jsonb row per collection key.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the collections table if it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			key TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *PostgresStore) Read(ctx context.Context, key string, v any) error {
	query := `SELECT data FROM collections WHERE key = $1`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return json.Unmarshal([]byte("[]"), v)
		}
		slog.Info(err.Error())
		return err
	}

	return json.Unmarshal(raw, v)
}

func (s *PostgresStore) Write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	query := `
		INSERT INTO collections (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query, key, raw, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
