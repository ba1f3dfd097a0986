// Package outline infers a hierarchical document outline (title plus up to
// three levels of headings) from font-annotated text spans, using typographic
// statistics only. Processing is a single pass per document over an immutable
// span list; nothing here retains state across documents.
package outline

import (
	"sort"

	"github.com/dgallion1/outliner/internal/span"
)

// Level is an output heading level.
type Level string

const (
	LevelH1 Level = "H1"
	LevelH2 Level = "H2"
	LevelH3 Level = "H3"
)

// Heading is one entry in the outline. The order key (page, vertical
// position, extraction sequence) is used only for sorting and is not
// serialized.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`

	y0  float64
	seq int
}

// Result is the outline record for a single document.
type Result struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// Build runs the full pipeline: title selection, font profile, heading
// classification, dedup and assembly. It never fails; a document with no
// usable spans yields the canonical empty result.
//
// The chosen title span feeds neither the profile nor the classifier: a
// one-off oversized cover line must not claim the top heading tier nor
// reappear as a heading. When real section headings share the title's size,
// that size stays in the profile through the remaining spans.
func Build(spans []span.TextSpan) Result {
	title := ""
	rest := spans
	if i := titleSpanIndex(spans); i >= 0 {
		title = cleanTitle(spans[i].Text)
		rest = make([]span.TextSpan, 0, len(spans)-1)
		rest = append(rest, spans[:i]...)
		rest = append(rest, spans[i+1:]...)
	}

	profile := BuildProfile(rest)
	headings := Classify(rest, profile)
	sortHeadings(headings)
	headings = Dedupe(headings)
	return assemble(title, headings)
}

// assemble combines the title with the deduplicated heading sequence. The
// stable sort here is the last step and guarantees the order invariant even
// if upstream stages saw spans out of page order.
func assemble(title string, headings []Heading) Result {
	sortHeadings(headings)
	if headings == nil {
		headings = []Heading{}
	}
	return Result{Title: title, Outline: headings}
}

func sortHeadings(headings []Heading) {
	sort.SliceStable(headings, func(i, j int) bool {
		a, b := headings[i], headings[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.y0 != b.y0 {
			return a.y0 < b.y0
		}
		return a.seq < b.seq
	})
}
