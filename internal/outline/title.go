package outline

import (
	"github.com/dgallion1/outliner/internal/span"
)

const (
	// Titles live on the first pages; later large text is section headings.
	titlePageLimit = 2

	titleMinLen = 5
	titleMaxLen = 100
)

// selectTitle picks at most one title span from the first two pages: the
// candidate with the largest font size, ties broken by earliest page, then
// vertical position, then extraction sequence. Returns "" when nothing
// qualifies.
func selectTitle(spans []span.TextSpan) string {
	i := titleSpanIndex(spans)
	if i < 0 {
		return ""
	}
	return cleanTitle(spans[i].Text)
}

// titleSpanIndex returns the index of the winning title candidate, or -1.
// Length bounds apply to the cleaned text, so a span whose content is mostly
// a lead-in label cannot win on its raw length.
func titleSpanIndex(spans []span.TextSpan) int {
	best := -1
	for i := range spans {
		s := &spans[i]
		if s.Page > titlePageLimit {
			continue
		}
		n := len([]rune(cleanTitle(s.Text)))
		if n < titleMinLen || n > titleMaxLen {
			continue
		}
		if best < 0 || s.Size > spans[best].Size ||
			(s.Size == spans[best].Size && s.Before(spans[best])) {
			best = i
		}
	}
	return best
}
