package extract

import (
	"strings"
	"testing"
)

func TestTextExtract_EveryLineIsBody(t *testing.T) {
	src := "First line.\nSecond line.\n\nFourth line after a blank.\n"
	e := &TextExtractor{}
	spans, err := e.Extract(strings.NewReader(src), "notes.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans (blank line dropped), got %d", len(spans))
	}
	for _, s := range spans {
		if s.Size != synthBodySize {
			t.Errorf("span %q size = %v, want %v", s.Text, s.Size, synthBodySize)
		}
	}
	if spans[2].Text != "Fourth line after a blank." {
		t.Errorf("got %q", spans[2].Text)
	}
}

func TestTextExtract_TrimsWhitespace(t *testing.T) {
	e := &TextExtractor{}
	spans, err := e.Extract(strings.NewReader("   padded line   \n"), "notes.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(spans) != 1 || spans[0].Text != "padded line" {
		t.Fatalf("got %+v", spans)
	}
}

func TestTextExtract_Empty(t *testing.T) {
	e := &TextExtractor{}
	spans, err := e.Extract(strings.NewReader(""), "notes.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("expected no spans, got %d", len(spans))
	}
}
