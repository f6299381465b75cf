package markdown

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the YAML metadata block at the top of a document.
type Frontmatter struct {
	Fields map[string]any
}

// Title returns the "title" field if present and a string.
func (f *Frontmatter) Title() string {
	if f == nil {
		return ""
	}
	if v, ok := f.Fields["title"].(string); ok {
		return v
	}
	return ""
}

// ParseDocument parses a full document: an optional leading YAML frontmatter
// fence followed by the markdown body. The frontmatter lines are excluded
// from the body before block parsing so block indexes are identical whether
// or not a document carries metadata.
//
// Malformed frontmatter never fails the parse; the whole text is then
// treated as body.
func ParseDocument(text string) (*Frontmatter, []Block) {
	fm, body := splitFrontmatter(text)
	return fm, Parse(body)
}

func splitFrontmatter(text string) (*Frontmatter, string) {
	rest, ok := strings.CutPrefix(text, "---\n")
	if !ok {
		rest, ok = strings.CutPrefix(text, "---\r\n")
	}
	if !ok {
		return nil, text
	}

	lines := strings.SplitAfter(rest, "\n")
	var meta strings.Builder
	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "---" || trimmed == "..." {
			fields := map[string]any{}
			if err := yaml.Unmarshal([]byte(meta.String()), &fields); err != nil {
				return nil, text
			}
			return &Frontmatter{Fields: fields}, strings.Join(lines[i+1:], "")
		}
		meta.WriteString(line)
	}

	// Unterminated fence: not frontmatter.
	return nil, text
}
