package segment

import (
	"sort"
	"strings"
)

// Label classifies a structural span.
type Label string

const (
	// LabelOrg marks a top-level issuing organization header.
	LabelOrg Label = "ORG"
	// LabelOrgSecundaria marks a subordinate organization inside a section.
	LabelOrgSecundaria Label = "ORG_SECUNDARIA"
	// LabelDoc marks a labelled document heading.
	LabelDoc Label = "DOC"
)

// Span is a typed region of the source buffer. Offsets are half-open byte
// positions; Text is the exact source slice. Spans are created once per
// segmentation pass and never mutated afterwards, only filtered.
type Span struct {
	Label Label  `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// newSpan trims surrounding whitespace off a candidate region and returns
// false when nothing printable remains. Malformed regions degrade to "no
// span" rather than an error.
func newSpan(text string, start, end int, label Label) (Span, bool) {
	if start < 0 || end > len(text) || start >= end {
		return Span{}, false
	}
	raw := text[start:end]
	if strings.TrimSpace(raw) == "" {
		return Span{}, false
	}
	lead := len(raw) - len(strings.TrimLeft(raw, " \t\r\n"))
	trail := len(raw) - len(strings.TrimRight(raw, " \t\r\n"))
	s := start + lead
	e := end - trail
	return Span{Label: label, Start: s, End: e, Text: text[s:e]}, true
}

// FilterSpans keeps the longest non-overlapping spans: candidates are
// considered longest first (earliest start breaks ties) and accepted
// greedily, then returned in (start, -end) document order.
func FilterSpans(spans []Span) []Span {
	cand := append([]Span(nil), spans...)
	sort.SliceStable(cand, func(i, j int) bool {
		li, lj := cand[i].End-cand[i].Start, cand[j].End-cand[j].Start
		if li != lj {
			return li > lj
		}
		return cand[i].Start < cand[j].Start
	})
	var kept []Span
	for _, c := range cand {
		overlaps := false
		for _, k := range kept {
			if c.Start < k.End && k.Start < c.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, c)
		}
	}
	SortSpans(kept)
	return kept
}

// SortSpans orders spans by (start, -end).
func SortSpans(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})
}
