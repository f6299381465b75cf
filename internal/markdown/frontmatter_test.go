package markdown

import "testing"

func TestParseDocumentWithFrontmatter(t *testing.T) {
	input := "---\ntitle: Field Notes\nauthor: someone\n---\n# Heading\n\nbody\n"
	fm, blocks := ParseDocument(input)
	if fm == nil {
		t.Fatal("expected frontmatter")
	}
	if fm.Title() != "Field Notes" {
		t.Errorf("title = %q", fm.Title())
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Kind != KindHeading || blocks[0].Content.Text != "Heading" {
		t.Errorf("unexpected first block: %+v", blocks[0])
	}
}

func TestParseDocumentBlockIndexesUnaffected(t *testing.T) {
	body := "# Heading\n\nbody\n"
	_, withFM := ParseDocument("---\ntitle: x\n---\n" + body)
	_, without := ParseDocument(body)
	if len(withFM) != len(without) {
		t.Fatalf("block counts differ: %d vs %d", len(withFM), len(without))
	}
	for i := range withFM {
		if withFM[i].Content.Text != without[i].Content.Text {
			t.Errorf("block %d differs: %q vs %q", i, withFM[i].Content.Text, without[i].Content.Text)
		}
	}
}

func TestParseDocumentNoFrontmatter(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain body", "# Heading\n"},
		{"unterminated fence", "---\ntitle: x\n"},
		{"invalid yaml", "---\njust a scalar\n---\nbody\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, blocks := ParseDocument(tt.input)
			if fm != nil {
				t.Errorf("expected no frontmatter, got %+v", fm)
			}
			if len(blocks) == 0 {
				t.Error("expected body blocks")
			}
		})
	}
}

func TestClampSpan(t *testing.T) {
	tests := []struct {
		name                 string
		start, end, length   int
		wantStart, wantEnd   int
	}{
		{"in range", 2, 5, 10, 2, 5},
		{"negative start", -3, 5, 10, 0, 5},
		{"end past length", 2, 50, 10, 2, 10},
		{"inverted", 8, 3, 10, 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := ClampSpan(tt.start, tt.end, tt.length)
			if s != tt.wantStart || e != tt.wantEnd {
				t.Errorf("ClampSpan(%d,%d,%d) = (%d,%d), want (%d,%d)",
					tt.start, tt.end, tt.length, s, e, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestInlineRunSlice(t *testing.T) {
	run := InlineRun{Text: "héllo wörld"}
	if got := run.Slice(6, 11); got != "wörld" {
		t.Errorf("Slice(6,11) = %q", got)
	}
	if got := run.Slice(-5, 100); got != "héllo wörld" {
		t.Errorf("clamped slice = %q", got)
	}
	if got := run.Slice(4, 2); got != "" {
		t.Errorf("inverted slice = %q", got)
	}
}
