package store

import (
	"time"

	"github.com/marginnotes/margin/internal/catalog"
	"github.com/marginnotes/margin/internal/markdown"
	"github.com/marginnotes/margin/internal/notes"
	"github.com/marginnotes/margin/internal/source"
)

// Document is an open annotation session: the parsed blocks of one document
// together with its annotation record. Mutations go through the Document so
// the catalog entry (counts, recency, tag vocabulary) can never drift out of
// sync with the record.
type Document struct {
	URI           string
	Name          string
	Text          string
	Frontmatter   *markdown.Frontmatter
	Blocks        []markdown.Block
	Notes         notes.FileNotes
	NotesFileName string

	// Stale is set when the stored record's content hash differs from the
	// document's current text. Existing highlights stay usable; their
	// offsets may simply no longer line up with the text.
	Stale bool

	store *Store
}

// OpenDocument reads a document through src, parses it, and reconciles its
// annotation record against the current content hash.
//
// First open creates and persists an empty record carrying the current hash.
// A hash mismatch on a later open only raises the Stale flag; annotations
// are never discarded or repaired automatically. The catalog entry is
// refreshed on every open.
func (s *Store) OpenDocument(src source.Source, uri string) (*Document, error) {
	text, err := src.Read(uri)
	if err != nil {
		return nil, err
	}

	name := src.DisplayName(uri)
	fm, blocks := markdown.ParseDocument(text)
	key := NotesFileNameForURI(uri)
	hash := ContentHash(text)

	doc := &Document{
		URI:           uri,
		Name:          name,
		Text:          text,
		Frontmatter:   fm,
		Blocks:        blocks,
		NotesFileName: key,
		store:         s,
	}

	if existing, ok := s.LoadNotes(key); ok {
		doc.Notes = existing
		doc.Stale = existing.ContentHash != hash
	} else {
		doc.Notes = notes.FileNotes{
			FileURI:     uri,
			FileName:    name,
			ContentHash: hash,
		}.Normalize()
		if err := s.SaveNotes(key, doc.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.refreshEntry(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Block returns the block at the given index, when in range.
func (d *Document) Block(index int) (markdown.Block, bool) {
	if index < 0 || index >= len(d.Blocks) {
		return markdown.Block{}, false
	}
	return d.Blocks[index], true
}

// AddHighlight appends a highlight and persists record and catalog.
func (d *Document) AddHighlight(h notes.Highlight) error {
	d.Notes = d.Notes.AddHighlight(h)
	return d.persist()
}

// UpdateHighlight replaces the highlight with a matching id; unknown ids
// persist the record unchanged.
func (d *Document) UpdateHighlight(h notes.Highlight) error {
	d.Notes = d.Notes.UpdateHighlight(h)
	return d.persist()
}

// DeleteHighlight removes the highlight with the given id, if any.
func (d *Document) DeleteHighlight(id string) error {
	d.Notes = d.Notes.DeleteHighlight(id)
	return d.persist()
}

// ToggleBookmark toggles the bookmark set for a block.
func (d *Document) ToggleBookmark(blockIndex int) error {
	d.Notes = d.Notes.ToggleBookmark(blockIndex)
	return d.persist()
}

// Rehash accepts the document's current content as the annotated baseline:
// the record's hash is replaced and the stale signal clears on next open.
// Highlight offsets are left exactly as they are.
func (d *Document) Rehash() error {
	d.Notes.ContentHash = ContentHash(d.Text)
	d.Stale = false
	return d.persist()
}

func (d *Document) persist() error {
	if err := d.store.SaveNotes(d.NotesFileName, d.Notes); err != nil {
		return err
	}
	return d.store.refreshEntry(d)
}

// refreshEntry syncs the catalog with the session: annotation counts, last
// opened time, and any tags newly introduced by highlights. Keeping this in
// the store prevents callers from forgetting the index half of a mutation.
func (s *Store) refreshEntry(d *Document) error {
	ix := s.LoadIndex()
	ix = ix.Upsert(catalog.FileEntry{
		URI:            d.URI,
		Name:           d.Name,
		NotesFileName:  d.NotesFileName,
		HighlightCount: len(d.Notes.Highlights),
		BookmarkCount:  len(d.Notes.Bookmarks),
		LastOpened:     time.Now().UnixMilli(),
	})
	ix = ix.MergeTags(d.Notes.TagSet())
	return s.SaveIndex(ix)
}
