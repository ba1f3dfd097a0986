package extract

import (
	"strings"
	"testing"
)

func TestMarkdownExtract_HeadingLadder(t *testing.T) {
	src := `# The Big Title

Some opening paragraph with enough words to act as body text.

## First Section

More body text under the first section.

### A Subsection

Final paragraph.
`
	e := &MarkdownExtractor{}
	spans, err := e.Extract(strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	sizes := map[string]float64{}
	for _, s := range spans {
		sizes[s.Text] = s.Size
	}
	if sizes["The Big Title"] != synthH1Size {
		t.Errorf("h1 size = %v, want %v", sizes["The Big Title"], synthH1Size)
	}
	if sizes["First Section"] != synthH2Size {
		t.Errorf("h2 size = %v, want %v", sizes["First Section"], synthH2Size)
	}
	if sizes["A Subsection"] != synthH3Size {
		t.Errorf("h3 size = %v, want %v", sizes["A Subsection"], synthH3Size)
	}
	if sizes["Final paragraph."] != synthBodySize {
		t.Errorf("paragraph size = %v, want %v", sizes["Final paragraph."], synthBodySize)
	}
}

func TestMarkdownExtract_ParagraphTextEmittedOnce(t *testing.T) {
	src := "# Heading One\n\nhello world paragraph\n"
	e := &MarkdownExtractor{}
	spans, err := e.Extract(strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %+v", len(spans), spans)
	}
	if spans[1].Text != "hello world paragraph" {
		t.Errorf("paragraph text = %q, want %q", spans[1].Text, "hello world paragraph")
	}
}

func TestMarkdownExtract_InlineMarkupJoined(t *testing.T) {
	src := "Some *emphasized* and **strong** words here.\n"
	e := &MarkdownExtractor{}
	spans, err := e.Extract(strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %+v", len(spans), spans)
	}
	if spans[0].Text != "Some emphasized and strong words here." {
		t.Errorf("got %q", spans[0].Text)
	}
}

func TestMarkdownExtract_DeepHeadingsShareH3Size(t *testing.T) {
	src := "#### Deep One\n\n##### Deeper Still\n"
	e := &MarkdownExtractor{}
	spans, err := e.Extract(strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, s := range spans {
		if s.Size != synthH3Size {
			t.Errorf("span %q size = %v, want %v", s.Text, s.Size, synthH3Size)
		}
	}
}

func TestMarkdownExtract_ReadingOrder(t *testing.T) {
	src := "# One\n\nfirst\n\n# Two\n\nsecond\n"
	e := &MarkdownExtractor{}
	spans, err := e.Extract(strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(spans) < 4 {
		t.Fatalf("expected at least 4 spans, got %d", len(spans))
	}
	for i := 1; i < len(spans); i++ {
		if !spans[i-1].Before(spans[i]) {
			t.Errorf("span %d (%q) does not precede span %d (%q)", i-1, spans[i-1].Text, i, spans[i].Text)
		}
	}
	for i, s := range spans {
		if s.Seq != i {
			t.Errorf("span %d has Seq %d", i, s.Seq)
		}
		if s.Page != 1 {
			t.Errorf("span %d has Page %d, want 1", i, s.Page)
		}
	}
}

func TestMarkdownExtract_Empty(t *testing.T) {
	e := &MarkdownExtractor{}
	spans, err := e.Extract(strings.NewReader(""), "doc.md")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("expected no spans, got %d", len(spans))
	}
}
