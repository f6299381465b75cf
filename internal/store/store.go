// Package store persists annotation records and the document catalog as
// whole-record JSON files under a notes directory, one file per document
// plus a single index file. Writes are atomic; unreadable records silently
// fall back to fresh ones so a corrupt annotation file can never take the
// reader down with it.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marginnotes/margin/internal/atomicfile"
	"github.com/marginnotes/margin/internal/catalog"
	"github.com/marginnotes/margin/internal/notes"
)

const indexFileName = "index.json"

// Store is a notes-directory handle. It is safe for one logical caller at a
// time per document key; concurrent mutation of the same document must be
// serialized by the caller.
type Store struct {
	dir string
}

// Open opens (creating if needed) the notes directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create notes directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the notes directory path.
func (s *Store) Dir() string {
	return s.dir
}

// NotesFileNameForURI derives the stable persistence key for a document
// identifier. The derivation is a pure one-way hash: the same uri always
// maps to the same file name.
func NotesFileNameForURI(uri string) string {
	sum := sha256.Sum256([]byte(uri))
	return hex.EncodeToString(sum[:]) + ".json"
}

// ContentHash hashes raw document text for change detection. It is not a
// security boundary; any stable hash works.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// LoadIndex reads the catalog. A missing or unreadable index yields a fresh
// empty one, never an error.
func (s *Store) LoadIndex() catalog.Index {
	data, err := os.ReadFile(filepath.Join(s.dir, indexFileName))
	if err != nil {
		return catalog.New()
	}
	var ix catalog.Index
	if err := json.Unmarshal(data, &ix); err != nil {
		return catalog.New()
	}
	return ix.Normalize()
}

// SaveIndex persists the catalog atomically.
func (s *Store) SaveIndex(ix catalog.Index) error {
	data, err := json.MarshalIndent(ix.Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := atomicfile.WriteFile(filepath.Join(s.dir, indexFileName), data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// LoadNotes reads a per-document record by its derived file name. Missing
// and corrupt records both report false; the caller starts fresh either way.
func (s *Store) LoadNotes(notesFileName string) (notes.FileNotes, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, notesFileName))
	if err != nil {
		return notes.FileNotes{}, false
	}
	var n notes.FileNotes
	if err := json.Unmarshal(data, &n); err != nil {
		return notes.FileNotes{}, false
	}
	return n.Normalize(), true
}

// SaveNotes persists a per-document record atomically, overwriting the whole
// record.
func (s *Store) SaveNotes(notesFileName string, n notes.FileNotes) error {
	data, err := json.MarshalIndent(n.Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := atomicfile.WriteFile(filepath.Join(s.dir, notesFileName), data, 0o644); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}

// Forget removes a document from the catalog. Its annotation record stays on
// disk; records are never deleted automatically.
func (s *Store) Forget(uri string) error {
	return s.SaveIndex(s.LoadIndex().Remove(uri))
}

// Move re-keys a document's annotation record under a new uri and updates
// the catalog entry, preserving all annotations. Used when the underlying
// document is renamed or relocated.
func (s *Store) Move(oldURI, newURI, newName string) error {
	ix := s.LoadIndex()
	entry, ok := ix.Find(oldURI)
	if !ok {
		return fmt.Errorf("no catalog entry for %s", oldURI)
	}

	newKey := NotesFileNameForURI(newURI)
	if n, ok := s.LoadNotes(entry.NotesFileName); ok {
		n.FileURI = newURI
		if newName != "" {
			n.FileName = newName
		}
		if err := s.SaveNotes(newKey, n); err != nil {
			return err
		}
	}

	entry.URI = newURI
	entry.NotesFileName = newKey
	if newName != "" {
		entry.Name = newName
	}
	return s.SaveIndex(ix.Remove(oldURI).Upsert(entry))
}
