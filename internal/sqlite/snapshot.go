// Package sqlite loads a Directory into an in-memory SQLite database so it
// can be queried across records. The database lives only as long as the
// Snapshot and is never written to disk.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// memoryDSN opens a private in-memory database.
const memoryDSN = "file::memory:"

// ErrSnapshotClosed is returned by every method called after Close.
var ErrSnapshotClosed = errors.New("snapshot is closed")

// Snapshot is a read-only SQLite copy of a Directory taken by Load.
type Snapshot struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates an empty in-memory database with the snapshot schema.
// The caller must Close the returned Snapshot.
func Open(ctx context.Context) (*Snapshot, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Each connection to :memory: is its own database; pin to one.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Snapshot{db: db}, nil
}

// Load replaces the snapshot contents with the records of dir.
func (s *Snapshot) Load(ctx context.Context, dir *types.Directory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrSnapshotClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM phones`); err != nil {
		return fmt.Errorf("clear phones: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	pos := 0
	for name, r := range dir.All() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (record_id, name, position) VALUES (?, ?, ?)`,
			r.ID(), name, pos,
		); err != nil {
			return fmt.Errorf("insert record %q: %w", name, err)
		}
		for i, p := range r.Phones() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO phones (record_id, phone, position) VALUES (?, ?, ?)`,
				r.ID(), p.String(), i,
			); err != nil {
				return fmt.Errorf("insert phone %q of %q: %w", p.String(), name, err)
			}
		}
		pos++
	}

	return tx.Commit()
}

// Owners returns the names of the records holding exactly phone, in
// directory order. A phone nobody holds yields an empty slice.
func (s *Snapshot) Owners(ctx context.Context, phone string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrSnapshotClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.name FROM phones p
         JOIN records r ON r.record_id = p.record_id
         WHERE p.phone = ?
         ORDER BY r.position`,
		phone,
	)
	if err != nil {
		return nil, fmt.Errorf("query owners: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Counts returns the number of records and phone entries in the snapshot.
func (s *Snapshot) Counts(ctx context.Context) (records, phones int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, 0, ErrSnapshotClosed
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM records), (SELECT COUNT(*) FROM phones)`,
	).Scan(&records, &phones)
	if err != nil {
		return 0, 0, fmt.Errorf("count rows: %w", err)
	}
	return records, phones, nil
}

// Close releases the database. Close is idempotent.
func (s *Snapshot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
