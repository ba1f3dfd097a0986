package extract

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/span"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor produces font-annotated spans from PDF pages.
type PDFExtractor struct{}

const (
	// rowTolerance groups glyphs whose baselines differ by less than this
	// into one visual line.
	rowTolerance = 2.0

	// wordGapFactor is the fraction of the font size an X gap must exceed
	// to count as a word boundary between adjacent glyphs.
	wordGapFactor = 0.3
)

func (e *PDFExtractor) Extract(r io.Reader, filename string) ([]span.TextSpan, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var spans []span.TextSpan
	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		texts := pageTexts(page)
		spans = append(spans, groupPageSpans(texts, pageNum)...)
	}
	return spans, nil
}

// pageTexts pulls the glyph stream for one page. Malformed content streams
// make the library panic; a broken page degrades to no spans rather than
// failing the document.
func pageTexts(page pdflib.Page) (texts []pdflib.Text) {
	defer func() {
		if recover() != nil {
			texts = nil
		}
	}()
	content := page.Content()
	texts = make([]pdflib.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" || t.S == "\n" {
			continue
		}
		texts = append(texts, t)
	}
	return texts
}

// groupPageSpans reconstructs reading order: glyphs are binned into rows by
// baseline Y, rows ordered top to bottom, and each row split into spans
// wherever the font family or rounded size changes. Word boundaries are
// inferred from horizontal gaps.
func groupPageSpans(texts []pdflib.Text, pageNum int) []span.TextSpan {
	if len(texts) == 0 {
		return nil
	}

	// PDF Y grows upward. Track the page's top so Y0 can be expressed as
	// distance from the top, matching reading order.
	top := texts[0].Y
	for _, t := range texts[1:] {
		if t.Y > top {
			top = t.Y
		}
	}

	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var spans []span.TextSpan
	seq := 0

	flush := func(row []pdflib.Text, rowY float64) {
		for len(row) > 0 {
			first := row[0]
			var sb strings.Builder
			sb.WriteString(first.S)
			x1 := first.X + first.W
			i := 1
			for ; i < len(row); i++ {
				t := row[i]
				if t.Font != first.Font || roundHalf(t.FontSize) != roundHalf(first.FontSize) {
					break
				}
				if t.X-x1 > wordGapFactor*first.FontSize && !strings.HasSuffix(sb.String(), " ") {
					sb.WriteByte(' ')
				}
				sb.WriteString(t.S)
				if t.X+t.W > x1 {
					x1 = t.X + t.W
				}
			}

			bold, italic := fontStyles(first.Font)
			y0 := top - rowY
			spans = append(spans, span.TextSpan{
				Page:   pageNum,
				Text:   sb.String(),
				Size:   first.FontSize,
				Font:   first.Font,
				Bold:   bold,
				Italic: italic,
				X0:     first.X,
				Y0:     y0,
				X1:     x1,
				Y1:     y0 + first.FontSize,
				Seq:    seq,
			})
			seq++
			row = row[i:]
		}
	}

	row := []pdflib.Text{texts[0]}
	rowY := texts[0].Y
	for _, t := range texts[1:] {
		if math.Abs(t.Y-rowY) <= rowTolerance {
			row = append(row, t)
			continue
		}
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		flush(row, rowY)
		row = []pdflib.Text{t}
		rowY = t.Y
	}
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	flush(row, rowY)

	return spans
}

func roundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

// fontStyles infers bold/italic flags from the PostScript font name.
func fontStyles(fontName string) (bold, italic bool) {
	name := strings.ToLower(fontName)
	bold = strings.Contains(name, "bold") || strings.Contains(name, "black")
	italic = strings.Contains(name, "italic") || strings.Contains(name, "oblique")
	return bold, italic
}
