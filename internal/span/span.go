package span

// TextSpan is one contiguous run of text sharing font metadata, as delivered
// by an extractor. Immutable once produced.
type TextSpan struct {
	Page   int     // 1-based page index
	Text   string  // raw text content
	Size   float64 // font size in points
	Font   string  // font family name
	Bold   bool
	Italic bool

	// Bounding box in page coordinates. Y grows downward: y0 is the distance
	// from the top of the page, so smaller y0 means earlier in reading order.
	X0, Y0, X1, Y1 float64

	// Seq is the extraction sequence number, a stable tie-break within a page.
	Seq int
}

// Before reports whether s precedes other in canonical reading order:
// page, then vertical position, then extraction sequence.
func (s TextSpan) Before(other TextSpan) bool {
	if s.Page != other.Page {
		return s.Page < other.Page
	}
	if s.Y0 != other.Y0 {
		return s.Y0 < other.Y0
	}
	return s.Seq < other.Seq
}
