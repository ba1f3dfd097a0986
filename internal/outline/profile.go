package outline

import (
	"math"
	"sort"

	"github.com/dgallion1/outliner/internal/span"
)

// Tier is the semantic role assigned to a font size based on its rank among
// sizes larger than the body size.
type Tier int

const (
	TierBody Tier = iota
	TierH1
	TierH2
	TierH3
	// TierOther covers sizes larger than body that rank beyond the third
	// heading level, and sub-body sizes. Never reported as headings.
	TierOther
)

// MinReadableSize is the floor below which spans are excluded from profile
// construction entirely (footnote markers, sub/superscripts).
const MinReadableSize = 8.0

// sizeTolerance is the matching window for tier lookup. Sizes are rounded to
// the nearest half point, so two spans of "the same" font land in one bucket.
const sizeTolerance = 0.5

// FontProfile is a document-wide font size profile. Weight is the sum of
// character counts at each rounded size, which is robust against span
// fragmentation (many short spans of body text still outweigh one long
// heading).
type FontProfile struct {
	BodySize float64
	// HeadingSizes holds the distinct sizes strictly greater than BodySize,
	// sorted descending, truncated to three: H1, H2, H3.
	HeadingSizes []float64

	weights map[float64]int
}

// roundSize buckets a font size to the nearest half point.
func roundSize(size float64) float64 {
	return math.Round(size*2) / 2
}

// BuildProfile computes the font profile over the full span stream in a
// single accumulation pass. The result is an immutable value; an empty span
// stream yields a zero profile with no body size and no heading sizes.
func BuildProfile(spans []span.TextSpan) FontProfile {
	weights := make(map[float64]int)
	for _, s := range spans {
		if s.Size < MinReadableSize {
			continue
		}
		n := 0
		for _, r := range s.Text {
			if r != ' ' && r != '\t' && r != '\n' {
				n++
			}
		}
		if n == 0 {
			continue
		}
		weights[roundSize(s.Size)] += n
	}

	p := FontProfile{weights: weights}
	if len(weights) == 0 {
		return p
	}

	// Body size carries the largest weight; ties break toward the larger
	// size, since dominant body text is rarely the smallest font present.
	for size, w := range weights {
		bw := weights[p.BodySize]
		if w > bw || (w == bw && size > p.BodySize) {
			p.BodySize = size
		}
	}

	for size := range weights {
		if size > p.BodySize {
			p.HeadingSizes = append(p.HeadingSizes, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(p.HeadingSizes)))
	if len(p.HeadingSizes) > 3 {
		p.HeadingSizes = p.HeadingSizes[:3]
	}
	return p
}

// TierOf maps a font size to its tier using a ±0.5pt matching window.
func (p FontProfile) TierOf(size float64) Tier {
	for i, hs := range p.HeadingSizes {
		if math.Abs(size-hs) <= sizeTolerance {
			return TierH1 + Tier(i)
		}
	}
	if len(p.weights) > 0 && math.Abs(size-p.BodySize) <= sizeTolerance {
		return TierBody
	}
	return TierOther
}

// hasHeadings reports whether any heading tier exists above the body size.
func (p FontProfile) hasHeadings() bool {
	return len(p.HeadingSizes) > 0
}
