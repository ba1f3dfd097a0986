package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/span"
)

// Extractor converts raw document bytes into an ordered span stream, in
// natural reading order within each page, pages indexed from 1.
type Extractor interface {
	Extract(r io.Reader, filename string) ([]span.TextSpan, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".md":   true,
	".html": true,
	".htm":  true,
	".txt":  true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
