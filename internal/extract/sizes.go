package extract

import (
	"strings"

	"github.com/dgallion1/outliner/internal/span"
)

// Markup formats (Markdown, HTML, DOCX styles) carry an explicit heading
// hierarchy but no physical fonts. They are mapped onto a synthetic size
// ladder so the same font-statistics pipeline handles every format: body
// text below three strictly separated heading sizes. Levels past h3 share
// the h3 size; the profile caps outline depth at three regardless.
const (
	synthBodySize = 11.0
	synthH3Size   = 14.0
	synthH2Size   = 17.0
	synthH1Size   = 20.0

	// Vertical advance per synthetic line, so the order key stays monotone.
	synthLineStep = 14.0
)

func synthHeadingSize(level int) float64 {
	switch level {
	case 1:
		return synthH1Size
	case 2:
		return synthH2Size
	default:
		return synthH3Size
	}
}

// spanBuilder accumulates synthetic spans for single-page markup formats.
type spanBuilder struct {
	spans []span.TextSpan
	y     float64
}

func (b *spanBuilder) add(text string, size float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.spans = append(b.spans, span.TextSpan{
		Page: 1,
		Text: text,
		Size: size,
		Font: "synthetic",
		X0:   0,
		Y0:   b.y,
		X1:   float64(len(text)) * size * 0.5,
		Y1:   b.y + size,
		Seq:  len(b.spans),
	})
	b.y += synthLineStep
}
