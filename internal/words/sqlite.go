// internal/words/sqlite.go
//
// SQLite-backed word table.
// Responsibilities:
//   - Opening an existing SQLite database read-only with a busy timeout.
//   - Serving words by tier from a table shaped words(word, difficulty).
//
// The database is only read; the game never writes rounds or scores to it.

package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens an existing SQLite word database read-only.
//
// - A missing file is an error; nothing is created on disk.
// - Busy timeout so concurrent readers wait instead of failing.
// - The database must hold a words table.
func OpenSQLite(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordSourceUnavailable, err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrWordSourceUnavailable, path, err)
	}
	var n int
	err = db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'words'`).Scan(&n)
	if err == nil && n == 0 {
		err = errors.New("no words table")
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrWordSourceUnavailable, path, err)
	}
	return db, nil
}

// SQLSource serves words from the words(word, difficulty) table.
type SQLSource struct {
	db *sql.DB
}

// NewSQLSource wraps an open database handle.
func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

// Words returns every word tagged d, ordered by rowid.
func (s *SQLSource) Words(ctx context.Context, d Difficulty) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM words WHERE lower(trim(difficulty)) = ? ORDER BY rowid`, string(d))
	if err != nil {
		return nil, fmt.Errorf("%w: query words: %v", ErrWordSourceUnavailable, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w sql.NullString
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("%w: scan word: %v", ErrWordSourceUnavailable, err)
		}
		if v, ok := normalize(w.String); ok {
			out = append(out, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordSourceUnavailable, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %s words in table", ErrWordSourceUnavailable, d)
	}
	return out, nil
}
