package outline

import (
	"regexp"
	"strings"
)

// False-positive rejection and text cleanup are expressed as ordered rule
// tables so filters can be added or reordered without touching classifier
// control flow.

// rejectRule rejects a candidate heading based on its whitespace-normalized
// text. Rules run in order; the first match wins.
type rejectRule struct {
	name  string
	match func(text string) bool
}

var (
	digitPunctRe = regexp.MustCompile(`^[0-9\s\pP\pS]+$`)
	punctOnlyRe  = regexp.MustCompile(`^[\s\pP\pS]*$`)
	captionRe    = regexp.MustCompile(`(?i)^(figure|fig\.?|table)\s+\d+`)
)

var rejectRules = []rejectRule{
	{
		// Page-number artifacts: "12", "3 / 17", "- 4 -".
		name: "digits_and_punctuation",
		match: func(text string) bool {
			return strings.ContainsAny(text, "0123456789") && digitPunctRe.MatchString(text)
		},
	},
	{
		// "Figure 3: Results", "Table 2", "Fig. 1".
		name:  "caption_prefix",
		match: captionRe.MatchString,
	},
	{
		name: "length_bounds",
		match: func(text string) bool {
			n := len([]rune(text))
			return n <= 1 || n > 200
		},
	},
	{
		name:  "punctuation_only",
		match: punctOnlyRe.MatchString,
	},
}

// rejectHeading returns the name of the first matching reject rule, or ""
// when the text survives all filters.
func rejectHeading(text string) string {
	for _, rule := range rejectRules {
		if rule.match(text) {
			return rule.name
		}
	}
	return ""
}

// Leading structural numbering stripped from heading text. Only a matched
// leading token is removed; interior content is preserved verbatim.
var numberingPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^\d+(\.\d+)*[.)]?\s+`),      // "1.", "1.2.3", "4)"
	regexp.MustCompile(`^[IVXLCDMivxlcdm]+[.)]\s+`), // "IV.", "ix)"
	regexp.MustCompile(`^[A-Za-z][.)]\s+`),          // "A)", "b."
}

var wsRe = regexp.MustCompile(`\s+`)

// Control characters the extractors occasionally leak through (form feeds,
// vertical tabs, stray NULs from broken encodings).
var ctrlRe = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

// normalizeText collapses internal whitespace, strips control characters and
// trims. Applied before any filtering or matching.
func normalizeText(text string) string {
	text = ctrlRe.ReplaceAllString(text, "")
	text = wsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripNumbering removes one leading structural numbering token, if present.
func stripNumbering(text string) string {
	for _, re := range numberingPrefixes {
		if loc := re.FindStringIndex(text); loc != nil {
			return strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// Boilerplate lead-ins stripped from title candidates, e.g. a literal
// "Title:" label or leading document numbering.
var titleLeadPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^title\s*[:\-]\s*`),
	regexp.MustCompile(`^\d+(\.\d+)*[.)]?\s+`),
}

// cleanTitle strips at most one matched leading token per pattern; it never
// truncates interior content.
func cleanTitle(text string) string {
	text = normalizeText(text)
	for _, re := range titleLeadPrefixes {
		if loc := re.FindStringIndex(text); loc != nil {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}
