// Package notes defines the annotation records attached to a document and
// the pure operations over them. Records are immutable values: every
// operation returns a new FileNotes, and persistence is the store's job.
package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Color is a highlight color. The value set is closed and the serialized
// names are part of the on-disk record format.
type Color string

const (
	ColorYellow Color = "YELLOW"
	ColorGreen  Color = "GREEN"
	ColorBlue   Color = "BLUE"
	ColorPink   Color = "PINK"
	ColorOrange Color = "ORANGE"
)

// Colors lists all highlight colors in display order.
func Colors() []Color {
	return []Color{ColorYellow, ColorGreen, ColorBlue, ColorPink, ColorOrange}
}

// ParseColor parses a color name case-insensitively.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case ColorYellow, ColorGreen, ColorBlue, ColorPink, ColorOrange:
		return c, nil
	}
	return "", fmt.Errorf("unknown highlight color %q", s)
}

// Highlight is a span annotation over a block's flattened text. Offsets are
// codepoint offsets valid relative to the block text at creation time; they
// are not re-validated against later edits of the source document (see
// FileNotes.ContentHash).
type Highlight struct {
	ID              string   `json:"id"`
	BlockIndex      int      `json:"blockIndex"`
	StartOffset     int      `json:"startOffset"`
	EndOffset       int      `json:"endOffset"`
	HighlightedText string   `json:"highlightedText"`
	Color           Color    `json:"color,omitempty"`
	Comment         string   `json:"comment,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	CreatedAt       int64    `json:"createdAt"`
}

// Bookmark marks a block, with no text span. Uniqueness per block is not
// enforced by the model; ToggleBookmark removes every match.
type Bookmark struct {
	ID         string `json:"id"`
	BlockIndex int    `json:"blockIndex"`
	Label      string `json:"label,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
}

// FileNotes is the per-document annotation record. It is created on first
// open of a document and never deleted automatically, even if the source
// document later becomes unreachable.
type FileNotes struct {
	FileURI     string      `json:"fileUri"`
	FileName    string      `json:"fileName"`
	ContentHash string      `json:"contentHash"`
	Highlights  []Highlight `json:"highlights"`
	Bookmarks   []Bookmark  `json:"bookmarks"`
}

// Normalize fills defaults for fields a stored record may omit: the zero
// color becomes yellow and nil lists become empty. Unknown stored fields are
// already dropped by JSON decoding.
func (n FileNotes) Normalize() FileNotes {
	if n.Highlights == nil {
		n.Highlights = []Highlight{}
	}
	if n.Bookmarks == nil {
		n.Bookmarks = []Bookmark{}
	}
	for i := range n.Highlights {
		if n.Highlights[i].Color == "" {
			n.Highlights[i].Color = ColorYellow
		}
		if n.Highlights[i].Tags == nil {
			n.Highlights[i].Tags = []string{}
		}
	}
	return n
}

// TagSet returns the distinct tags across all highlights, first-seen order.
func (n FileNotes) TagSet() []string {
	seen := map[string]bool{}
	var tags []string
	for _, h := range n.Highlights {
		for _, t := range h.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// NewID returns a fresh unique annotation id.
func NewID() string {
	return uuid.NewString()
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
