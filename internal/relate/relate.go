// Package relate threads ordered structural spans into a hierarchy with a
// single left-to-right pass: organizations contain secondary organizations,
// secondary organizations carry company-level documents, and everything else
// labelled DOC belongs to the nearest preceding organization section.
package relate

import (
	"github.com/textlabpt/gazex/internal/classify"
	"github.com/textlabpt/gazex/internal/segment"
)

// Kind names a relation edge.
type Kind string

const (
	// KindContains links an ORG to an ORG_SECUNDARIA inside its section.
	KindContains Kind = "CONTAINS"
	// KindHasDocument links an ORG_SECUNDARIA to its company-level DOC.
	KindHasDocument Kind = "HAS_DOCUMENT"
	// KindSectionItem links an ORG to a DOC listed in its section.
	KindSectionItem Kind = "SECTION_ITEM"
)

// Ref is the span summary carried on a relation endpoint.
type Ref struct {
	Text  string        `json:"text"`
	Label segment.Label `json:"label"`
	Start int           `json:"start"`
	End   int           `json:"end"`
}

// Relation is a directed edge from head to tail. Relations are derived,
// read-only, and rebuilt from scratch whenever spans change.
type Relation struct {
	Head Ref  `json:"head"`
	Tail Ref  `json:"tail"`
	Kind Kind `json:"relation"`
}

func ref(s segment.Span) Ref {
	return Ref{Text: s.Text, Label: s.Label, Start: s.Start, End: s.End}
}

// Build walks spans in (start, -end) order keeping the most recent ORG and
// the most recent ORG_SECUNDARIA since that ORG, and emits one edge per
// qualifying span. A DOC with no context at all is dropped silently.
func Build(spans []segment.Span, lex *classify.Lexicon) []Relation {
	ordered := append([]segment.Span(nil), spans...)
	segment.SortSpans(ordered)

	var rels []Relation
	var currentOrg, currentSub *segment.Span

	for i := range ordered {
		sp := ordered[i]
		switch sp.Label {
		case segment.LabelOrg:
			currentOrg = &ordered[i]
			currentSub = nil

		case segment.LabelOrgSecundaria:
			if currentOrg != nil {
				rels = append(rels, Relation{Head: ref(*currentOrg), Tail: ref(sp), Kind: KindContains})
			}
			currentSub = &ordered[i]

		case segment.LabelDoc:
			switch {
			case currentSub != nil && lex.IsCompanyDocLabel(sp.Text):
				rels = append(rels, Relation{Head: ref(*currentSub), Tail: ref(sp), Kind: KindHasDocument})
			case currentOrg != nil:
				rels = append(rels, Relation{Head: ref(*currentOrg), Tail: ref(sp), Kind: KindSectionItem})
			}
		}
	}
	return rels
}
