package outline

import "testing"

func h(level Level, text string, page int) Heading {
	return Heading{Level: level, Text: text, Page: page}
}

func TestDedupe_CollapsesRunningHeaders(t *testing.T) {
	in := []Heading{
		h(LevelH1, "Chapter Notes", 4),
		h(LevelH1, "Chapter Notes", 5),
		h(LevelH1, "Chapter Notes", 6),
	}
	out := Dedupe(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(out))
	}
	if out[0].Page != 4 {
		t.Errorf("expected first occurrence at page 4, got %d", out[0].Page)
	}
}

func TestDedupe_KeepsSeparatedRepeats(t *testing.T) {
	in := []Heading{
		h(LevelH1, "Summary", 1),
		h(LevelH1, "Details", 2),
		h(LevelH1, "Summary", 3),
	}
	out := Dedupe(in)
	if len(out) != 3 {
		t.Errorf("expected legitimately repeated heading to survive, got %d entries", len(out))
	}
}

func TestDedupe_LevelDistinguishes(t *testing.T) {
	in := []Heading{
		h(LevelH1, "Background", 1),
		h(LevelH2, "Background", 1),
	}
	out := Dedupe(in)
	if len(out) != 2 {
		t.Errorf("expected different levels to be kept, got %d entries", len(out))
	}
}

func TestDedupe_FoldsCaseAndWhitespace(t *testing.T) {
	in := []Heading{
		h(LevelH1, "Chapter  Notes", 4),
		h(LevelH1, "chapter notes", 5),
		h(LevelH1, "CHAPTER\tNOTES", 6),
	}
	out := Dedupe(in)
	if len(out) != 1 {
		t.Errorf("expected case/whitespace variants to collapse, got %d entries", len(out))
	}
}

func TestDedupe_Empty(t *testing.T) {
	if out := Dedupe(nil); len(out) != 0 {
		t.Errorf("expected empty output, got %d", len(out))
	}
}
