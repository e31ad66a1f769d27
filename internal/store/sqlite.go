package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const schema = `CREATE TABLE IF NOT EXISTS records (
	namespace  TEXT NOT NULL,
	record_key TEXT NOT NULL,
	payload    TEXT NOT NULL,
	PRIMARY KEY (namespace, record_key)
)`

// SQLiteStore keeps all namespaces in a single table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	log.Debug().Msgf("Opening sqlite database %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not reach sqlite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) List(ctx context.Context, namespace string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record_key FROM records WHERE namespace = ? ORDER BY record_key`, namespace)
	if err != nil {
		return nil, fmt.Errorf("could not list namespace %s: %w", namespace, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("could not scan key in namespace %s: %w", namespace, err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate namespace %s: %w", namespace, err)
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, namespace)
	}

	return keys, nil
}

func (s *SQLiteStore) Read(ctx context.Context, namespace string, key string) (Record, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM records WHERE namespace = ? AND record_key = ?`, namespace, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, namespace, key)
		}
		return nil, fmt.Errorf("could not read %s/%s: %w", namespace, key, err)
	}

	return decodeRecord([]byte(payload))
}

func (s *SQLiteStore) Create(ctx context.Context, namespace string, key string, record any) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO records (namespace, record_key, payload) VALUES (?, ?, ?)`, namespace, key, string(data))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("%w: %s/%s", ErrAlreadyExists, namespace, key)
		}
		return fmt.Errorf("could not create %s/%s: %w", namespace, key, err)
	}

	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, namespace string, key string, record any) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `UPDATE records SET payload = ? WHERE namespace = ? AND record_key = ?`, string(data), namespace, key)
	if err != nil {
		return fmt.Errorf("could not update %s/%s: %w", namespace, key, err)
	}

	return expectAffected(result, namespace, key)
}

func (s *SQLiteStore) Delete(ctx context.Context, namespace string, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE namespace = ? AND record_key = ?`, namespace, key)
	if err != nil {
		return fmt.Errorf("could not delete %s/%s: %w", namespace, key, err)
	}

	return expectAffected(result, namespace, key)
}

func (s *SQLiteStore) Close(ctx context.Context) error {
	return s.db.Close()
}

func expectAffected(result sql.Result, namespace string, key string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not determine affected rows for %s/%s: %w", namespace, key, err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, namespace, key)
	}
	return nil
}
