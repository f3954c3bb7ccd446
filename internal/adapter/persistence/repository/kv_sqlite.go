package repository

import (
	"context"
	"database/sql"
	"errors"

	"thaki_platform/internal/usecase/interfaces"

	_ "modernc.org/sqlite"
)

// SQLiteKVStore backs the record store with an embedded SQLite file for
// local runs that have no DynamoDB endpoint.

type SQLiteKVStore struct {
	db *sql.DB
}

var _ interfaces.IKeyValueStore = (*SQLiteKVStore)(nil)

func OpenSQLiteKVStore(path string) (*SQLiteKVStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS records (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteKVStore{db: db}, nil
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value))
	return err
}

func (s *SQLiteKVStore) Close() error { return s.db.Close() }
