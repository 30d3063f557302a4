package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQL is a Store backed by a single key-value collections table.
type MySQL struct {
	db *sql.DB
}

// OpenMySQL creates a MySQL-backed store with a connection pool for the
// given DSN. The schema is managed separately by migrations.
func OpenMySQL(dsn string) (*MySQL, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &MySQL{db: db}, nil
}

// DB exposes the underlying connection pool, used for running migrations.
func (s *MySQL) DB() *sql.DB {
	return s.db
}

// Close releases the connection pool.
func (s *MySQL) Close() error {
	return s.db.Close()
}

// Read fetches the blob for the named collection.
func (s *MySQL) Read(ctx context.Context, collection string) ([]byte, error) {
	query := `SELECT data FROM collections WHERE name = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, collection).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCollectionMissing
		}
		return nil, err
	}

	return data, nil
}

// Write upserts the blob for the named collection.
func (s *MySQL) Write(ctx context.Context, collection string, data []byte) error {
	query := `INSERT INTO collections (name, data) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data)`

	_, err := s.db.ExecContext(ctx, query, collection, data)
	return err
}
