package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type KVSQLite struct {
	db *sql.DB
}

func NewKVSQLite(db *sql.DB) *KVSQLite {
	return &KVSQLite{db: db}
}

// Ensure implementation of KVRepo interface at compile time.
var _ KVRepo = (*KVSQLite)(nil)

const (
	selectValueSQL = `SELECT value FROM kv_store WHERE key = ?`
	upsertValueSQL = `
		INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value
	`
	deleteValueSQL = `DELETE FROM kv_store WHERE key = ?`
)

// Get returns the stored value and whether the key exists.
func (r *KVSQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, selectValueSQL, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select key %q: %w", key, err)
	}
	return v, true, nil
}

// Set overwrites the value for key.
func (r *KVSQLite) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertValueSQL, key, value); err != nil {
		return fmt.Errorf("upsert key %q: %w", key, err)
	}
	return nil
}

// Delete removes key; a missing key is not an error.
func (r *KVSQLite) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteValueSQL, key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
