package outline

import (
	"github.com/dgallion1/outliner/internal/span"
)

var tierLevels = map[Tier]Level{
	TierH1: LevelH1,
	TierH2: LevelH2,
	TierH3: LevelH3,
}

// Classify maps spans to heading candidates using the font profile. Spans
// whose size does not land in a heading tier are skipped; the rest run
// through the reject rules and cleaning transforms. Malformed or degenerate
// spans are excluded, never an error — classification fails open toward
// "not a heading".
func Classify(spans []span.TextSpan, profile FontProfile) []Heading {
	var headings []Heading
	for _, s := range spans {
		level, ok := tierLevels[profile.TierOf(s.Size)]
		if !ok {
			continue
		}

		text := normalizeText(s.Text)
		if rejectHeading(text) != "" {
			continue
		}

		text = stripNumbering(text)
		if len([]rune(text)) <= 1 {
			continue
		}

		headings = append(headings, Heading{
			Level: level,
			Text:  text,
			Page:  s.Page,
			y0:    s.Y0,
			seq:   s.Seq,
		})
	}
	return headings
}
