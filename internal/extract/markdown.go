package extract

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/span"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. Headings map to
// the synthetic size ladder; everything else becomes body-size spans.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) ([]span.TextSpan, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var b spanBuilder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			b.add(string(node.Text(src)), synthHeadingSize(node.Level))
		default:
			// Non-heading blocks contribute body weight line by line so the
			// profile sees body text dominate.
			for _, line := range strings.Split(extractText(n, src), "\n") {
				b.add(line, synthBodySize)
			}
		}
	}
	return b.spans, nil
}

// extractText gets the text content of a goldmark AST node. Inline-parsed
// blocks carry their source text in their children, so Lines() is read only
// for leaf blocks (code blocks, HTML blocks) that have no children at all;
// reading both would emit the text twice.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			// Recurse for nested inlines and block children.
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
