// Package search maintains a derived SQLite index over every highlight in
// the store, powering cross-document search. The JSON records remain the
// source of truth; this database is a disposable cache that can be rebuilt
// from them at any time.
package search

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/marginnotes/margin/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS highlights (
	id          TEXT PRIMARY KEY,
	uri         TEXT NOT NULL,
	file_name   TEXT NOT NULL,
	block_index INTEGER NOT NULL,
	text        TEXT NOT NULL,
	color       TEXT NOT NULL,
	comment     TEXT NOT NULL DEFAULT '',
	tags        TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_highlights_uri ON highlights(uri);
`

// Database is the search index handle.
type Database struct {
	db *sql.DB
}

// Hit is one search result.
type Hit struct {
	HighlightID string `json:"highlightId"`
	URI         string `json:"uri"`
	FileName    string `json:"fileName"`
	BlockIndex  int    `json:"blockIndex"`
	Text        string `json:"text"`
	Comment     string `json:"comment,omitempty"`
	Tags        string `json:"tags,omitempty"`
}

// Open opens or creates the search database inside the notes directory.
func Open(notesDir string) (*Database, error) {
	db, err := sql.Open("sqlite", filepath.Join(notesDir, "search.db"))
	if err != nil {
		return nil, fmt.Errorf("open search database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize search schema: %w", err)
	}
	return &Database{db: db}, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

// Rebuild replaces the whole index from the store's current records.
// Records that fail to load are skipped, matching the store's treatment of
// corrupt files.
func (d *Database) Rebuild(s *store.Store) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM highlights`); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO highlights (id, uri, file_name, block_index, text, color, comment, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range s.LoadIndex().Files {
		n, ok := s.LoadNotes(entry.NotesFileName)
		if !ok {
			continue
		}
		for _, h := range n.Highlights {
			_, err := stmt.Exec(
				h.ID, entry.URI, entry.Name, h.BlockIndex,
				h.HighlightedText, string(h.Color), h.Comment,
				strings.Join(h.Tags, " "), h.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("index highlight %s: %w", h.ID, err)
			}
		}
	}
	return tx.Commit()
}

// Search returns highlights whose text, comment, or tags contain the query,
// newest first.
func (d *Database) Search(query string) ([]Hit, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := d.db.Query(`
		SELECT id, uri, file_name, block_index, text, comment, tags
		FROM highlights
		WHERE text LIKE ? ESCAPE '\'
		   OR comment LIKE ? ESCAPE '\'
		   OR tags LIKE ? ESCAPE '\'
		ORDER BY created_at DESC`,
		pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search highlights: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.HighlightID, &h.URI, &h.FileName, &h.BlockIndex, &h.Text, &h.Comment, &h.Tags); err != nil {
			return nil, fmt.Errorf("scan hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Count returns the number of indexed highlights.
func (d *Database) Count() (int, error) {
	var n int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM highlights`).Scan(&n)
	return n, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
