// Package catalog maintains the single process-wide index of annotated
// documents and the global tag vocabulary. The index references documents by
// uri only; the per-document annotation records are owned by the store.
package catalog

import "sort"

// Index is the catalog record. Files are unique by URI; Tags are unique by
// Name. Stored order of Files is not meaningful, recency order is derived at
// read time from LastOpened.
type Index struct {
	Version int         `json:"version"`
	Files   []FileEntry `json:"files"`
	Tags    []TagInfo   `json:"tags"`
}

// FileEntry is the catalog's view of one annotated document.
type FileEntry struct {
	URI            string `json:"uri"`
	Name           string `json:"name"`
	NotesFileName  string `json:"notesFileName"`
	HighlightCount int    `json:"highlightCount"`
	BookmarkCount  int    `json:"bookmarkCount"`
	LastOpened     int64  `json:"lastOpened"`
}

// TagInfo is an entry in the global tag vocabulary. Tags accumulate as
// highlights introduce them and are never pruned when the last highlight
// using one is removed; stale entries are accepted behavior.
type TagInfo struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Normalize fills defaults for a freshly decoded index.
func (ix Index) Normalize() Index {
	if ix.Version == 0 {
		ix.Version = 1
	}
	if ix.Files == nil {
		ix.Files = []FileEntry{}
	}
	if ix.Tags == nil {
		ix.Tags = []TagInfo{}
	}
	return ix
}

// New returns an empty index.
func New() Index {
	return Index{}.Normalize()
}

// Find returns the entry for the given uri.
func (ix Index) Find(uri string) (FileEntry, bool) {
	for _, f := range ix.Files {
		if f.URI == uri {
			return f, true
		}
	}
	return FileEntry{}, false
}

// Upsert replaces the entry whose URI matches in place, or appends.
func (ix Index) Upsert(entry FileEntry) Index {
	files := append([]FileEntry{}, ix.Files...)
	for i, f := range files {
		if f.URI == entry.URI {
			files[i] = entry
			ix.Files = files
			return ix
		}
	}
	ix.Files = append(files, entry)
	return ix
}

// Remove drops the entry for the given uri, if present. The document's
// annotation record is untouched.
func (ix Index) Remove(uri string) Index {
	files := make([]FileEntry, 0, len(ix.Files))
	for _, f := range ix.Files {
		if f.URI != uri {
			files = append(files, f)
		}
	}
	ix.Files = files
	return ix
}

// ByRecency returns the entries sorted by LastOpened descending. The sort is
// stable so entries with equal timestamps keep their relative order.
func (ix Index) ByRecency() []FileEntry {
	out := append([]FileEntry{}, ix.Files...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastOpened > out[j].LastOpened
	})
	return out
}

// MergeTags adds any names not already in the vocabulary. Names are expected
// pre-lowercased by the caller; merging never removes or case-folds existing
// entries.
func (ix Index) MergeTags(names []string) Index {
	existing := make(map[string]bool, len(ix.Tags))
	for _, t := range ix.Tags {
		existing[t.Name] = true
	}
	tags := append([]TagInfo{}, ix.Tags...)
	for _, name := range names {
		if name == "" || existing[name] {
			continue
		}
		existing[name] = true
		tags = append(tags, TagInfo{Name: name})
	}
	ix.Tags = tags
	return ix
}
