package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLStore is a SQL-backed Store.
// It works with any database/sql compatible driver (PostgreSQL, MySQL, SQLite).
// Requires a table with schema:
//
//	CREATE TABLE sessionslot_entries (
//	    entry_key VARCHAR(255) PRIMARY KEY,
//	    entry_value TEXT NOT NULL,
//	    updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
//	);
type SQLStore struct {
	db        *sql.DB
	tableName string
	dialect   SQLDialect
	closed    bool
}

// SQLDialect represents the SQL dialect for query generation.
type SQLDialect int

const (
	// DialectPostgreSQL uses PostgreSQL syntax ($1, $2 placeholders).
	DialectPostgreSQL SQLDialect = iota
	// DialectMySQL uses MySQL syntax (? placeholders).
	DialectMySQL
	// DialectSQLite uses SQLite syntax (? placeholders).
	DialectSQLite
)

// SQLStoreOption configures SQLStore behavior.
type SQLStoreOption func(*sqlStoreConfig)

type sqlStoreConfig struct {
	tableName string
	dialect   SQLDialect
}

// WithSQLTableName sets the table name for entry storage.
// Default: "sessionslot_entries".
func WithSQLTableName(name string) SQLStoreOption {
	return func(c *sqlStoreConfig) {
		c.tableName = name
	}
}

// WithSQLDialect sets the SQL dialect for query generation.
// Default: DialectPostgreSQL.
func WithSQLDialect(dialect SQLDialect) SQLStoreOption {
	return func(c *sqlStoreConfig) {
		c.dialect = dialect
	}
}

// NewSQLStore creates a new SQL-backed store.
func NewSQLStore(db *sql.DB, opts ...SQLStoreOption) *SQLStore {
	cfg := &sqlStoreConfig{
		tableName: "sessionslot_entries",
		dialect:   DialectPostgreSQL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &SQLStore{
		db:        db,
		tableName: cfg.tableName,
		dialect:   cfg.dialect,
	}
}

// placeholder returns the placeholder syntax for the dialect.
func (s *SQLStore) placeholder(n int) string {
	switch s.dialect {
	case DialectPostgreSQL:
		return fmt.Sprintf("$%d", n)
	default:
		return "?"
	}
}

// Get retrieves the value for key if an entry exists.
func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.closed {
		return "", false, ErrStoreClosed{}
	}

	query := fmt.Sprintf(`SELECT entry_value FROM %s WHERE entry_key = %s`, s.tableName, s.placeholder(1))

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}

	return value, true, nil
}

// Set writes the value for key using a dialect-appropriate upsert.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if s.closed {
		return ErrStoreClosed{}
	}

	var query string
	switch s.dialect {
	case DialectPostgreSQL:
		query = fmt.Sprintf(`
			INSERT INTO %s (entry_key, entry_value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (entry_key) DO UPDATE SET
				entry_value = EXCLUDED.entry_value,
				updated_at = NOW()
		`, s.tableName)
	case DialectMySQL:
		query = fmt.Sprintf(`
			INSERT INTO %s (entry_key, entry_value, updated_at)
			VALUES (?, ?, NOW())
			ON DUPLICATE KEY UPDATE
				entry_value = VALUES(entry_value),
				updated_at = NOW()
		`, s.tableName)
	case DialectSQLite:
		query = fmt.Sprintf(`
			INSERT OR REPLACE INTO %s (entry_key, entry_value, updated_at)
			VALUES (?, ?, datetime('now'))
		`, s.tableName)
	}

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

// Delete removes the entry for key.
func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if s.closed {
		return ErrStoreClosed{}
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE entry_key = %s`, s.tableName, s.placeholder(1))
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}

// Close marks the store as closed.
// Note: This does not close the underlying *sql.DB,
// as it may be shared with other components.
func (s *SQLStore) Close() error {
	s.closed = true
	return nil
}
