package outline

import (
	"strings"
	"testing"

	"github.com/dgallion1/outliner/internal/span"
)

// headingProfile gives a fixed two-tier profile: body 12, H1 18, H2 14.
func headingProfile() FontProfile {
	return BuildProfile([]span.TextSpan{
		testSpan(1, 18, "aa", 0),
		testSpan(1, 14, "bb", 1),
		testSpan(1, 12, "body body body body body body body body", 2),
	})
}

func TestClassify_TierMapping(t *testing.T) {
	p := headingProfile()
	spans := []span.TextSpan{
		testSpan(1, 18, "Top Level Section", 0),
		testSpan(1, 14, "Nested Section", 1),
		testSpan(1, 12, "body text that is never a heading", 2),
		testSpan(1, 9, "tiny annotation", 3),
	}
	hs := Classify(spans, p)
	if len(hs) != 2 {
		t.Fatalf("expected 2 headings, got %d: %+v", len(hs), hs)
	}
	if hs[0].Level != LevelH1 || hs[0].Text != "Top Level Section" {
		t.Errorf("expected H1 %q, got %s %q", "Top Level Section", hs[0].Level, hs[0].Text)
	}
	if hs[1].Level != LevelH2 || hs[1].Text != "Nested Section" {
		t.Errorf("expected H2 %q, got %s %q", "Nested Section", hs[1].Level, hs[1].Text)
	}
}

func TestClassify_RejectsPageNumberArtifacts(t *testing.T) {
	p := headingProfile()
	for _, text := range []string{"12", "3 / 17", "- 4 -", "  42  "} {
		hs := Classify([]span.TextSpan{testSpan(1, 18, text, 0)}, p)
		if len(hs) != 0 {
			t.Errorf("expected %q to be rejected, got %+v", text, hs)
		}
	}
}

func TestClassify_RejectsCaptions(t *testing.T) {
	p := headingProfile()
	for _, text := range []string{
		"Figure 3: Results",
		"figure 12 shows the architecture",
		"Table 2: Comparison",
		"Fig. 1 Overview",
		"FIG 4",
	} {
		hs := Classify([]span.TextSpan{testSpan(1, 18, text, 0)}, p)
		if len(hs) != 0 {
			t.Errorf("expected caption %q to be rejected, got %+v", text, hs)
		}
	}
}

func TestClassify_RejectsLengthExtremes(t *testing.T) {
	p := headingProfile()
	for _, text := range []string{"A", strings.Repeat("long ", 50)} {
		hs := Classify([]span.TextSpan{testSpan(1, 18, text, 0)}, p)
		if len(hs) != 0 {
			t.Errorf("expected %q (len %d) to be rejected, got %+v", text, len(text), hs)
		}
	}
}

func TestClassify_RejectsPunctuationOnly(t *testing.T) {
	p := headingProfile()
	for _, text := range []string{"* * *", "----", "...", "   "} {
		hs := Classify([]span.TextSpan{testSpan(1, 18, text, 0)}, p)
		if len(hs) != 0 {
			t.Errorf("expected %q to be rejected, got %+v", text, hs)
		}
	}
}

func TestClassify_StripsLeadingNumbering(t *testing.T) {
	p := headingProfile()
	cases := []struct {
		in   string
		want string
	}{
		{"1. Introduction", "Introduction"},
		{"2.1 Machine Learning Basics", "Machine Learning Basics"},
		{"3.4.2. Gradient Descent", "Gradient Descent"},
		{"IV. Results", "Results"},
		{"A) Appendix Material", "Appendix Material"},
		{"7) Closing Remarks", "Closing Remarks"},
		{"Introduction to 3D Printing", "Introduction to 3D Printing"},
	}
	for _, c := range cases {
		hs := Classify([]span.TextSpan{testSpan(1, 18, c.in, 0)}, p)
		if len(hs) != 1 {
			t.Fatalf("Classify(%q): expected 1 heading, got %d", c.in, len(hs))
		}
		if hs[0].Text != c.want {
			t.Errorf("Classify(%q): expected %q, got %q", c.in, c.want, hs[0].Text)
		}
	}
}

func TestClassify_NumberingStripIsLeadingOnly(t *testing.T) {
	p := headingProfile()
	in := "1. Chapter 2. Has Interior Numbering"
	hs := Classify([]span.TextSpan{testSpan(1, 18, in, 0)}, p)
	if len(hs) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(hs))
	}
	want := "Chapter 2. Has Interior Numbering"
	if hs[0].Text != want {
		t.Errorf("expected %q, got %q", want, hs[0].Text)
	}
}

func TestClassify_CollapsesWhitespaceAndControls(t *testing.T) {
	p := headingProfile()
	hs := Classify([]span.TextSpan{testSpan(1, 18, "  Deep \t Learning\x00 Methods \n", 0)}, p)
	if len(hs) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(hs))
	}
	if hs[0].Text != "Deep Learning Methods" {
		t.Errorf("expected %q, got %q", "Deep Learning Methods", hs[0].Text)
	}
}

func TestClassify_EmptyAfterStripExcluded(t *testing.T) {
	p := headingProfile()
	hs := Classify([]span.TextSpan{testSpan(1, 18, "A) x", 0)}, p)
	if len(hs) != 0 {
		t.Errorf("expected heading reduced to one rune to be excluded, got %+v", hs)
	}
}

func TestClassify_NoHeadingTiersNoHeadings(t *testing.T) {
	flat := BuildProfile([]span.TextSpan{
		testSpan(1, 12, "only one size in this document at all", 0),
	})
	hs := Classify([]span.TextSpan{testSpan(1, 12, "Looks Like A Heading", 0)}, flat)
	if len(hs) != 0 {
		t.Errorf("expected no headings without heading tiers, got %+v", hs)
	}
}
