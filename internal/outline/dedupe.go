package outline

import "strings"

// Dedupe collapses runs of repeated headings while preserving document
// order. A heading is kept only if its (level, normalized text) pair differs
// from the immediately preceding kept heading's pair. Running headers that
// recur on consecutive pages collapse to one entry, while the same text can
// legitimately reappear later once separated by another heading.
func Dedupe(headings []Heading) []Heading {
	if len(headings) == 0 {
		return headings
	}

	kept := headings[:0:0]
	var prevLevel Level
	var prevText string
	for _, h := range headings {
		norm := normalizeKey(h.Text)
		if len(kept) > 0 && h.Level == prevLevel && norm == prevText {
			continue
		}
		kept = append(kept, h)
		prevLevel, prevText = h.Level, norm
	}
	return kept
}

// normalizeKey case-folds and collapses whitespace for duplicate comparison.
func normalizeKey(text string) string {
	return strings.ToLower(wsRe.ReplaceAllString(strings.TrimSpace(text), " "))
}
