package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marginnotes/margin/internal/catalog"
	"github.com/marginnotes/margin/internal/notes"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestNotesFileNameForURI(t *testing.T) {
	a := NotesFileNameForURI("file:///tmp/a.md")
	b := NotesFileNameForURI("file:///tmp/b.md")
	if a == b {
		t.Error("different uris must map to different keys")
	}
	if a != NotesFileNameForURI("file:///tmp/a.md") {
		t.Error("key derivation must be stable")
	}
	if filepath.Ext(a) != ".json" {
		t.Errorf("key = %q, want .json suffix", a)
	}
}

func TestContentHashStable(t *testing.T) {
	if ContentHash("abc") != ContentHash("abc") {
		t.Error("hash must be stable")
	}
	if ContentHash("abc") == ContentHash("abd") {
		t.Error("different content must hash differently")
	}
}

func TestSaveLoadNotes(t *testing.T) {
	s := newTestStore(t)
	key := NotesFileNameForURI("file:///tmp/doc.md")

	n := notes.FileNotes{
		FileURI:     "file:///tmp/doc.md",
		FileName:    "doc.md",
		ContentHash: ContentHash("body"),
	}.AddHighlight(notes.NewHighlight(0, 0, 4, "body text", notes.ColorBlue, "", []string{"tag"}))

	if err := s.SaveNotes(key, n); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := s.LoadNotes(key)
	if !ok {
		t.Fatal("expected record to load")
	}
	if len(got.Highlights) != 1 || got.Highlights[0].Color != notes.ColorBlue {
		t.Errorf("loaded record differs: %+v", got)
	}
}

func TestLoadNotesMissingOrCorrupt(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.LoadNotes("nope.json"); ok {
		t.Error("missing record should report false")
	}

	if err := os.WriteFile(filepath.Join(s.Dir(), "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.LoadNotes("bad.json"); ok {
		t.Error("corrupt record should report false, not error")
	}
}

func TestLoadIndexMissingOrCorrupt(t *testing.T) {
	s := newTestStore(t)

	ix := s.LoadIndex()
	if len(ix.Files) != 0 || ix.Version != 1 {
		t.Errorf("missing index should yield fresh one, got %+v", ix)
	}

	if err := os.WriteFile(filepath.Join(s.Dir(), "index.json"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	ix = s.LoadIndex()
	if len(ix.Files) != 0 {
		t.Errorf("corrupt index should yield fresh one, got %+v", ix)
	}
}

func TestSaveLoadIndexRoundTrip(t *testing.T) {
	s := newTestStore(t)

	ix := catalog.New().
		Upsert(catalog.FileEntry{URI: "u", Name: "n.md", NotesFileName: "k.json", HighlightCount: 2}).
		MergeTags([]string{"alpha"})
	if err := s.SaveIndex(ix); err != nil {
		t.Fatalf("save index: %v", err)
	}

	got := s.LoadIndex()
	entry, ok := got.Find("u")
	if !ok || entry.HighlightCount != 2 {
		t.Errorf("entry lost: %+v", got.Files)
	}
	if len(got.Tags) != 1 || got.Tags[0].Name != "alpha" {
		t.Errorf("tags lost: %+v", got.Tags)
	}
}

func TestForgetKeepsRecord(t *testing.T) {
	s := newTestStore(t)
	key := NotesFileNameForURI("u")

	if err := s.SaveNotes(key, notes.FileNotes{FileURI: "u"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveIndex(catalog.New().Upsert(catalog.FileEntry{URI: "u", NotesFileName: key})); err != nil {
		t.Fatal(err)
	}

	if err := s.Forget("u"); err != nil {
		t.Fatalf("forget: %v", err)
	}

	if _, ok := s.LoadIndex().Find("u"); ok {
		t.Error("catalog entry should be gone")
	}
	if _, ok := s.LoadNotes(key); !ok {
		t.Error("annotation record must survive forget")
	}
}

func TestMoveRekeysRecord(t *testing.T) {
	s := newTestStore(t)
	oldKey := NotesFileNameForURI("old")

	n := notes.FileNotes{FileURI: "old", FileName: "old.md"}.
		AddHighlight(notes.NewHighlight(0, 0, 3, "txt", notes.ColorYellow, "", nil))
	if err := s.SaveNotes(oldKey, n); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveIndex(catalog.New().Upsert(catalog.FileEntry{
		URI: "old", Name: "old.md", NotesFileName: oldKey, HighlightCount: 1,
	})); err != nil {
		t.Fatal(err)
	}

	if err := s.Move("old", "new", "new.md"); err != nil {
		t.Fatalf("move: %v", err)
	}

	ix := s.LoadIndex()
	if _, ok := ix.Find("old"); ok {
		t.Error("old entry should be gone")
	}
	entry, ok := ix.Find("new")
	if !ok || entry.Name != "new.md" || entry.NotesFileName != NotesFileNameForURI("new") {
		t.Fatalf("unexpected moved entry: %+v", entry)
	}

	moved, ok := s.LoadNotes(entry.NotesFileName)
	if !ok {
		t.Fatal("moved record should load under new key")
	}
	if moved.FileURI != "new" || moved.FileName != "new.md" || len(moved.Highlights) != 1 {
		t.Errorf("moved record lost data: %+v", moved)
	}
}

func TestMoveUnknownURI(t *testing.T) {
	s := newTestStore(t)
	if err := s.Move("ghost", "elsewhere", ""); err == nil {
		t.Error("expected error for unknown uri")
	}
}
