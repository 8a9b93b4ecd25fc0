//go:build sqlite

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Reset(ctx context.Context) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		DELETE FROM field_sets;
		DELETE FROM event_sets;
	`)
	return err
}

func (s *SQLiteStore) SaveEventSet(ctx context.Context, set EventSet) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeEventSet(set)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO event_sets (id, schema_version, codec_version, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			codec_version = excluded.codec_version,
			payload = excluded.payload
	`, set.ID, set.SchemaVersion, set.CodecVersion, payload)
	return err
}

func (s *SQLiteStore) GetEventSet(ctx context.Context, id string) (EventSet, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return EventSet{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM event_sets WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EventSet{}, false, nil
		}
		return EventSet{}, false, err
	}

	set, err := DecodeEventSet(payload)
	if err != nil {
		return EventSet{}, false, fmt.Errorf("decode event set %s: %w", id, err)
	}
	return set, true, nil
}

func (s *SQLiteStore) ListEventSets(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id FROM event_sets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLiteStore) SaveFieldSet(ctx context.Context, fields FieldSet) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeFieldSet(fields)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO field_sets (id, event_set_id, schema_version, codec_version, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			event_set_id = excluded.event_set_id,
			schema_version = excluded.schema_version,
			codec_version = excluded.codec_version,
			payload = excluded.payload
	`, fields.ID, fields.EventSetID, fields.SchemaVersion, fields.CodecVersion, payload)
	return err
}

func (s *SQLiteStore) GetFieldSet(ctx context.Context, id string) (FieldSet, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return FieldSet{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM field_sets WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FieldSet{}, false, nil
		}
		return FieldSet{}, false, err
	}

	fields, err := DecodeFieldSet(payload)
	if err != nil {
		return FieldSet{}, false, fmt.Errorf("decode field set %s: %w", id, err)
	}
	return fields, true, nil
}

func (s *SQLiteStore) ListFieldSets(ctx context.Context, eventSetID string) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id FROM field_sets WHERE event_set_id = ? ORDER BY id`, eventSetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS event_sets (
			id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS field_sets (
			id TEXT PRIMARY KEY,
			event_set_id TEXT NOT NULL,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS field_sets_event_set
			ON field_sets (event_set_id);
	`)
	return err
}
