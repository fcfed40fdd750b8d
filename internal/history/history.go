// Package history persists a record of every REPL submission to a local
// SQLite database, backing the front end's `:history` command. Uses
// modernc.org/sqlite (a pure-Go driver, no cgo) for a small single-table
// store instead of hand-rolling a flat-file log, so `:history --grep`
// can run a real `WHERE text LIKE ?` query.
package history

import (
	"database/sql"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	text      TEXT    NOT NULL,
	kind      TEXT    NOT NULL,
	outcome   TEXT    NOT NULL,
	unix_time INTEGER NOT NULL
);`

// Store wraps the on-disk submission-history database.
type Store struct {
	db *sql.DB
}

// Open creates (or reuses) the SQLite database at path and ensures its
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record stores one submission: its text, whether it was a "definition"
// or "statements" submission (session.Kind.String()), its outcome ("ok"
// or the first diagnostic's message), and the Unix time it completed at.
func (s *Store) Record(text, kind, outcome string, unixTime int64) error {
	_, err := s.db.Exec(
		`INSERT INTO submissions (text, kind, outcome, unix_time) VALUES (?, ?, ?, ?)`,
		text, kind, outcome, unixTime,
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Entry is one row of submission history, formatted for display.
type Entry struct {
	ID      int64
	Text    string
	Kind    string
	Outcome string
	When    int64
}

// Recent returns the last n submissions, most recent first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, text, kind, outcome, unix_time FROM submissions ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search returns every submission whose text contains substr (a SQL
// LIKE scan, which SQLite matches case-insensitively for ASCII letters by
// default), most recent first.
func (s *Store) Search(substr string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, text, kind, outcome, unix_time FROM submissions WHERE text LIKE ? ORDER BY id DESC`,
		"%"+substr+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("history: search: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Text, &e.Kind, &e.Outcome, &e.When); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// FormatLine renders e the way the `:history` command lists it: an
// absolute timestamp (go-strftime) followed by go-humanize's relative
// "2m ago" gloss.
func (e Entry) FormatLine() string {
	t := unixToTime(e.When)
	abs := strftime.Format("%Y-%m-%d %H:%M:%S", t)
	rel := humanize.Time(t)
	return fmt.Sprintf("#%d [%s] (%s, %s): %s -> %s", e.ID, e.Kind, abs, rel, e.Text, e.Outcome)
}
