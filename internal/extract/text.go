package extract

import (
	"bufio"
	"io"

	"github.com/dgallion1/outliner/internal/span"
)

// TextExtractor handles plain text files. Plain text carries no font
// information, so every line becomes a body-size span: the document yields a
// title candidate at most, never headings.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) ([]span.TextSpan, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var b spanBuilder
	for scanner.Scan() {
		b.add(scanner.Text(), synthBodySize)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.spans, nil
}
