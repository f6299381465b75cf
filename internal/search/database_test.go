package search

import (
	"testing"

	"github.com/marginnotes/margin/internal/catalog"
	"github.com/marginnotes/margin/internal/notes"
	"github.com/marginnotes/margin/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	type doc struct {
		uri        string
		highlights []notes.Highlight
	}
	docs := []doc{
		{"file:///a.md", []notes.Highlight{
			{ID: "h1", BlockIndex: 0, HighlightedText: "force layout notes", Color: notes.ColorYellow, Tags: []string{"physics"}, CreatedAt: 100},
			{ID: "h2", BlockIndex: 2, HighlightedText: "unrelated", Color: notes.ColorGreen, Comment: "check the layout later", CreatedAt: 300},
		}},
		{"file:///b.md", []notes.Highlight{
			{ID: "h3", BlockIndex: 1, HighlightedText: "nothing here", Color: notes.ColorBlue, Tags: []string{"misc"}, CreatedAt: 200},
		}},
	}

	ix := catalog.New()
	for _, d := range docs {
		key := store.NotesFileNameForURI(d.uri)
		n := notes.FileNotes{FileURI: d.uri, FileName: d.uri, Highlights: d.highlights}
		if err := s.SaveNotes(key, n); err != nil {
			t.Fatal(err)
		}
		ix = ix.Upsert(catalog.FileEntry{URI: d.uri, Name: d.uri, NotesFileName: key})
	}
	if err := s.SaveIndex(ix); err != nil {
		t.Fatal(err)
	}
	return s
}

func openRebuilt(t *testing.T, s *store.Store) *Database {
	t.Helper()
	db, err := Open(s.Dir())
	if err != nil {
		t.Fatalf("open search db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Rebuild(s); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	return db
}

func TestRebuildAndCount(t *testing.T) {
	db := openRebuilt(t, seededStore(t))
	n, err := db.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestSearchMatchesTextCommentAndTags(t *testing.T) {
	db := openRebuilt(t, seededStore(t))

	tests := []struct {
		query string
		ids   []string
	}{
		{"layout", []string{"h2", "h1"}}, // text and comment, newest first
		{"physics", []string{"h1"}},      // tag match
		{"absent", nil},
	}
	for _, tt := range tests {
		hits, err := db.Search(tt.query)
		if err != nil {
			t.Fatalf("search %q: %v", tt.query, err)
		}
		var ids []string
		for _, h := range hits {
			ids = append(ids, h.HighlightID)
		}
		if len(ids) != len(tt.ids) {
			t.Errorf("search %q ids = %v, want %v", tt.query, ids, tt.ids)
			continue
		}
		for i := range ids {
			if ids[i] != tt.ids[i] {
				t.Errorf("search %q ids = %v, want %v", tt.query, ids, tt.ids)
				break
			}
		}
	}
}

func TestSearchEscapesLikeMetacharacters(t *testing.T) {
	s := seededStore(t)
	key := store.NotesFileNameForURI("file:///c.md")
	n := notes.FileNotes{FileURI: "file:///c.md", Highlights: []notes.Highlight{
		{ID: "h4", HighlightedText: "100% done_deal", CreatedAt: 400},
	}}
	if err := s.SaveNotes(key, n); err != nil {
		t.Fatal(err)
	}
	ix := s.LoadIndex().Upsert(catalog.FileEntry{URI: "file:///c.md", Name: "c.md", NotesFileName: key})
	if err := s.SaveIndex(ix); err != nil {
		t.Fatal(err)
	}

	db := openRebuilt(t, s)

	hits, err := db.Search("100%")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].HighlightID != "h4" {
		t.Errorf("literal %% search = %+v", hits)
	}

	// A bare underscore must not act as a single-char wildcard.
	hits, err = db.Search("done_")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Errorf("literal _ search = %+v", hits)
	}
}

func TestRebuildReplacesStaleRows(t *testing.T) {
	s := seededStore(t)
	db := openRebuilt(t, s)

	// Remove one document and rebuild; its rows must disappear.
	if err := s.Forget("file:///b.md"); err != nil {
		t.Fatal(err)
	}
	if err := db.Rebuild(s); err != nil {
		t.Fatal(err)
	}

	n, err := db.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("count after rebuild = %d, want 2", n)
	}
	hits, err := db.Search("nothing here")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("forgotten document still indexed: %+v", hits)
	}
}
