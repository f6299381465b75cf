package notes

import "strings"

// NewHighlight builds a highlight over the half-open codepoint range
// [start,end) of a block's flattened text. Offsets are clamped to the text,
// tags are lowercased and deduplicated preserving order, and a fresh id and
// creation time are assigned.
func NewHighlight(blockIndex, start, end int, blockText string, color Color, comment string, tags []string) Highlight {
	runes := []rune(blockText)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if end < start {
		end = start
	}
	if color == "" {
		color = ColorYellow
	}
	return Highlight{
		ID:              NewID(),
		BlockIndex:      blockIndex,
		StartOffset:     start,
		EndOffset:       end,
		HighlightedText: string(runes[start:end]),
		Color:           color,
		Comment:         comment,
		Tags:            NormalizeTags(tags),
		CreatedAt:       nowMillis(),
	}
}

// NormalizeTags lowercases and trims tag names, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// AddHighlight appends a highlight. Overlap with existing highlights is
// permitted; no positional checks are made.
func (n FileNotes) AddHighlight(h Highlight) FileNotes {
	n.Highlights = append(append([]Highlight{}, n.Highlights...), h)
	return n
}

// UpdateHighlight replaces the highlight whose id matches. Unknown ids are a
// no-op: the record is returned unchanged.
func (n FileNotes) UpdateHighlight(h Highlight) FileNotes {
	out := make([]Highlight, len(n.Highlights))
	for i, existing := range n.Highlights {
		if existing.ID == h.ID {
			out[i] = h
		} else {
			out[i] = existing
		}
	}
	n.Highlights = out
	return n
}

// DeleteHighlight removes the highlight whose id matches, if any.
func (n FileNotes) DeleteHighlight(id string) FileNotes {
	out := make([]Highlight, 0, len(n.Highlights))
	for _, h := range n.Highlights {
		if h.ID != id {
			out = append(out, h)
		}
	}
	n.Highlights = out
	return n
}

// FindHighlight returns the highlight with the given id.
func (n FileNotes) FindHighlight(id string) (Highlight, bool) {
	for _, h := range n.Highlights {
		if h.ID == id {
			return h, true
		}
	}
	return Highlight{}, false
}

// ToggleBookmark removes every bookmark on the given block, or inserts a
// fresh one if none exists. Toggling twice restores the original set modulo
// the new bookmark's id.
func (n FileNotes) ToggleBookmark(blockIndex int) FileNotes {
	kept := make([]Bookmark, 0, len(n.Bookmarks))
	removed := false
	for _, b := range n.Bookmarks {
		if b.BlockIndex == blockIndex {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		kept = append(kept, Bookmark{
			ID:         NewID(),
			BlockIndex: blockIndex,
			CreatedAt:  nowMillis(),
		})
	}
	n.Bookmarks = kept
	return n
}

// Bookmarked reports whether any bookmark targets the given block.
func (n FileNotes) Bookmarked(blockIndex int) bool {
	for _, b := range n.Bookmarks {
		if b.BlockIndex == blockIndex {
			return true
		}
	}
	return false
}
