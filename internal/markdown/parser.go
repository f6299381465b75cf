package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Parse converts markdown text into the ordered top-level block sequence.
//
// It is a pure function: deterministic, no side effects, and total. Block
// constructs outside the supported set (HTML blocks, link reference
// definitions, ...) are skipped rather than failing the parse. Empty input
// yields an empty sequence.
func Parse(text string) []Block {
	src := []byte(text)
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(src))
	return convertChildren(doc, src)
}

func convertChildren(parent ast.Node, src []byte) []Block {
	var blocks []Block
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if b, ok := convertNode(child, src); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func convertNode(node ast.Node, src []byte) (Block, bool) {
	switch n := node.(type) {
	case *ast.Heading:
		return Block{Kind: KindHeading, Level: n.Level, Content: flattenInlines(n, src)}, true
	case *ast.Paragraph:
		return Block{Kind: KindParagraph, Content: flattenInlines(n, src)}, true
	case *ast.TextBlock:
		// Tight list items carry their text as a TextBlock instead of a
		// Paragraph; treat them the same.
		return Block{Kind: KindParagraph, Content: flattenInlines(n, src)}, true
	case *ast.FencedCodeBlock:
		return Block{
			Kind:     KindCodeBlock,
			Code:     codeLiteral(n, src),
			Language: string(n.Language(src)),
		}, true
	case *ast.CodeBlock:
		return Block{Kind: KindCodeBlock, Code: codeLiteral(n, src)}, true
	case *ast.Blockquote:
		return Block{Kind: KindBlockQuote, Children: convertChildren(n, src)}, true
	case *ast.List:
		items := convertListItems(n, src)
		if n.IsOrdered() {
			start := n.Start
			if start == 0 {
				start = 1
			}
			return Block{Kind: KindOrderedList, Items: items, Start: start}, true
		}
		return Block{Kind: KindUnorderedList, Items: items}, true
	case *ast.ThematicBreak:
		return Block{Kind: KindHorizontalRule}, true
	}
	return Block{}, false
}

func convertListItems(list *ast.List, src []byte) []ListItem {
	items := []ListItem{}
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}

		first := item.FirstChild()
		var content InlineRun
		if isParagraphLike(first) {
			content = flattenInlines(first, src)
		} else {
			content = flattenInlines(item, src)
		}

		var children []Block
		for sub := item.FirstChild(); sub != nil; sub = sub.NextSibling() {
			// The leading paragraph already became the item's content.
			if sub == first && isParagraphLike(first) {
				continue
			}
			if b, ok := convertNode(sub, src); ok {
				children = append(children, b)
			}
		}
		items = append(items, ListItem{Content: content, Children: children})
	}
	return items
}

func isParagraphLike(node ast.Node) bool {
	switch node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return true
	}
	return false
}

// codeLiteral collects a code block's raw lines, stripping at most one
// trailing newline.
func codeLiteral(node ast.Node, src []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// runBuilder accumulates flattened text while tracking codepoint offsets so
// style spans line up with what the annotation layer records.
type runBuilder struct {
	sb    strings.Builder
	count int
	spans []Span
}

func (b *runBuilder) append(s string) {
	b.sb.WriteString(s)
	b.count += utf8.RuneCountInString(s)
}

func (b *runBuilder) mark() int {
	return b.count
}

func (b *runBuilder) close(start int, style StyleKind, href string) {
	if b.count <= start {
		return
	}
	b.spans = append(b.spans, Span{Start: start, End: b.count, Style: style, Href: href})
}

func (b *runBuilder) run() InlineRun {
	return InlineRun{Text: b.sb.String(), Spans: b.spans}
}

func flattenInlines(node ast.Node, src []byte) InlineRun {
	b := &runBuilder{}
	appendInlineChildren(b, node, src)
	return b.run()
}

func appendInlineChildren(b *runBuilder, node ast.Node, src []byte) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		appendInline(b, child, src)
	}
}

func appendInline(b *runBuilder, node ast.Node, src []byte) {
	switch n := node.(type) {
	case *ast.Text:
		b.append(string(n.Segment.Value(src)))
		if n.HardLineBreak() {
			b.append("\n")
		} else if n.SoftLineBreak() {
			b.append(" ")
		}
	case *ast.String:
		b.append(string(n.Value))
	case *ast.CodeSpan:
		start := b.mark()
		appendInlineChildren(b, n, src)
		b.close(start, StyleCode, "")
	case *ast.Emphasis:
		start := b.mark()
		appendInlineChildren(b, n, src)
		if n.Level >= 2 {
			b.close(start, StyleBold, "")
		} else {
			b.close(start, StyleItalic, "")
		}
	case *ast.Link:
		start := b.mark()
		appendInlineChildren(b, n, src)
		b.close(start, StyleLink, string(n.Destination))
	case *ast.AutoLink:
		start := b.mark()
		b.append(string(n.Label(src)))
		b.close(start, StyleLink, string(n.URL(src)))
	case *ast.Image:
		// Images are not recursed into; a placeholder stands in for them in
		// the flattened text so offsets stay meaningful.
		label := string(n.Title)
		if label == "" {
			label = string(n.Destination)
		}
		b.append("[image: " + label + "]")
	default:
		appendInlineChildren(b, node, src)
	}
}
