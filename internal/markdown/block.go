// Package markdown converts raw markdown into an ordered sequence of typed
// blocks with flattened inline text, addressable by block index. The block
// index of a top-level block is the only stable coordinate annotations are
// anchored to, so the conversion must be deterministic for a given input.
package markdown

// BlockKind identifies one of the closed set of block variants.
type BlockKind uint8

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindCodeBlock
	KindBlockQuote
	KindOrderedList
	KindUnorderedList
	KindHorizontalRule
)

// String returns the lowercase name of the kind, used in CLI/JSON output.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindCodeBlock:
		return "code"
	case KindBlockQuote:
		return "quote"
	case KindOrderedList:
		return "ordered-list"
	case KindUnorderedList:
		return "unordered-list"
	case KindHorizontalRule:
		return "rule"
	}
	return "unknown"
}

// Block is one structural unit of a parsed document. It is a tagged union:
// Kind selects the variant and only that variant's fields are meaningful.
// The variant set is closed; do not add open-ended subtypes.
type Block struct {
	Kind BlockKind

	// Heading
	Level int

	// Heading, Paragraph
	Content InlineRun

	// CodeBlock
	Code     string
	Language string

	// BlockQuote
	Children []Block

	// OrderedList, UnorderedList
	Items []ListItem
	// Start is the first marker number of an ordered list.
	Start int
}

// ListItem is a single list entry: its own inline content plus any nested
// blocks (continuation paragraphs, sub-lists, code). Nested blocks do not
// carry a block index of their own.
type ListItem struct {
	Content  InlineRun
	Children []Block
}

// StyleKind identifies an inline style applied over a span of flattened text.
type StyleKind uint8

const (
	StyleBold StyleKind = iota
	StyleItalic
	StyleCode
	StyleLink
)

// Span is a half-open [Start,End) range of codepoint offsets into the
// flattened text of an InlineRun. Href is set only for StyleLink.
type Span struct {
	Start int
	End   int
	Style StyleKind
	Href  string
}

// InlineRun is a block's flattened plain text plus the style ranges recorded
// while flattening. Offsets are codepoint offsets, not byte offsets, so they
// line up with what a reader selects on screen.
type InlineRun struct {
	Text  string
	Spans []Span
}

// Len returns the length of the run in codepoints.
func (r InlineRun) Len() int {
	n := 0
	for range r.Text {
		n++
	}
	return n
}

// Slice returns the substring of the run's text covered by the half-open
// codepoint range [start,end). Out-of-range offsets are clamped, never
// rejected; an inverted range yields "".
func (r InlineRun) Slice(start, end int) string {
	start, end = ClampSpan(start, end, r.Len())
	if start >= end {
		return ""
	}
	out := make([]rune, 0, end-start)
	i := 0
	for _, c := range r.Text {
		if i >= end {
			break
		}
		if i >= start {
			out = append(out, c)
		}
		i++
	}
	return string(out)
}

// ClampSpan clamps a half-open codepoint range to [0,length]. Malformed but
// well-typed input is repaired rather than rejected.
func ClampSpan(start, end, length int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if end < start {
		end = start
	}
	return start, end
}
