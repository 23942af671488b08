// Package store implements the dictionary's query surface: four
// parameterized statements over an open connection, each write
// committed immediately in its own transaction.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const (
	versionQuery = "SHOW VARIABLES LIKE 'version'"
	lookupQuery  = "SELECT word FROM words WHERE word = ?"
	insertQuery  = "INSERT INTO words (word) VALUES (?)"
	updateQuery  = "UPDATE words SET word = ? WHERE word = ?"
	deleteQuery  = "DELETE FROM words WHERE word = ?"
)

// ErrUnverified reports that the version self-test failed at
// construction time.
var ErrUnverified = errors.New("connection unverified")

// Store executes the dictionary statements. All statements use bound
// parameters.
type Store struct {
	db     *sql.DB
	out    io.Writer
	logger *slog.Logger
}

// New wraps an open connection and verifies it by querying the server
// version. The reported version is written to the transcript writer.
// A failed self-test is returned, not swallowed. If logger is nil, a
// discard logger is used.
func New(ctx context.Context, db *sql.DB, out io.Writer, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if out == nil {
		out = io.Discard
	}

	s := &Store{db: db, out: out, logger: logger}
	if err := s.verify(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnverified, err)
	}
	return s, nil
}

// verify tests the connection with a version query.
func (s *Store) verify(ctx context.Context) error {
	var name, version string
	if err := s.db.QueryRowContext(ctx, versionQuery).Scan(&name, &version); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "MySQL v%s\n", version)
	s.logger.Debug("connection verified", slog.String("server_version", version))
	return nil
}

// Lookup returns the stored word exactly matching w, and whether it
// was found.
func (s *Store) Lookup(ctx context.Context, w string) (string, bool, error) {
	var word string
	err := s.db.QueryRowContext(ctx, lookupQuery, w).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up %q: %w", w, err)
	}
	return word, true, nil
}

// Insert adds a new word to the dictionary.
func (s *Store) Insert(ctx context.Context, w string) error {
	return s.write(ctx, insertQuery, w)
}

// Update replaces the row matching oldWord with newWord.
func (s *Store) Update(ctx context.Context, oldWord, newWord string) error {
	return s.write(ctx, updateQuery, newWord, oldWord)
}

// Delete removes the row matching w.
func (s *Store) Delete(ctx context.Context, w string) error {
	return s.write(ctx, deleteQuery, w)
}

// write runs a single statement in its own transaction and commits
// immediately. There is no batching across calls.
func (s *Store) write(ctx context.Context, query string, args ...any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
