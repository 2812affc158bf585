// Package summary locates the boundary between a gazette's table-of-contents
// region and its body, and projects the summary's organizations into the
// ordered roster the re-anchoring engine searches for.
package summary

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/textlabpt/gazex/internal/normalize"
	"github.com/textlabpt/gazex/internal/relate"
	"github.com/textlabpt/gazex/internal/segment"
)

// Summary is the table-of-contents region with the spans and relations that
// fall entirely inside it.
type Summary struct {
	Text      string
	Spans     []segment.Span
	Relations []relate.Relation
}

// OrgKey normalizes an organization name for repeat detection: diacritics
// stripped, uppercased, whitespace collapsed, edge punctuation trimmed.
func OrgKey(s string) string {
	up := strings.ToUpper(normalize.StripDiacritics(s))
	return strings.Trim(strings.Join(strings.Fields(up), " "), ",.;:")
}

// Split finds the body start: the offset of the second occurrence (by
// normalized name) of any ORG span. When no organization repeats there is no
// body to re-anchor and the whole document is the summary.
func Split(text string, spans []segment.Span, rels []relate.Relation) (Summary, int) {
	ordered := append([]segment.Span(nil), spans...)
	segment.SortSpans(ordered)

	cut := len(text)
	seen := map[string]bool{}
	for _, sp := range ordered {
		if sp.Label != segment.LabelOrg {
			continue
		}
		key := OrgKey(sp.Text)
		if seen[key] {
			cut = sp.Start
			break
		}
		seen[key] = true
	}

	sum := Summary{Text: text[:cut]}
	for _, sp := range ordered {
		if sp.Start >= 0 && sp.End <= cut {
			sum.Spans = append(sum.Spans, sp)
		}
	}
	for _, r := range rels {
		if r.Head.Start < cut && r.Tail.Start < cut {
			sum.Relations = append(sum.Relations, r)
		}
	}
	log.Debug().Int("cut", cut).Int("spans", len(sum.Spans)).Msg("summary split")
	return sum, cut
}

// Entry is one roster record: an organization with its subordinate
// organizations and section documents, in first-occurrence order, carrying
// display text only.
type Entry struct {
	OrgText string   `json:"org_text"`
	SubOrgs []string `json:"sub_orgs,omitempty"`
	Docs    []string `json:"docs,omitempty"`
}

type offsets struct{ start, end int }

// BuildRoster projects the summary into ordered roster entries. Subordinate
// organizations come from CONTAINS edges and documents from SECTION_ITEM
// edges; company-level documents hang off subordinate organizations and do
// not drive slicing, so they are not listed as section documents.
func BuildRoster(sum Summary) []Entry {
	orgToSub := map[offsets][]relate.Ref{}
	orgToDoc := map[offsets][]relate.Ref{}
	for _, r := range sum.Relations {
		key := offsets{r.Head.Start, r.Head.End}
		switch r.Kind {
		case relate.KindContains:
			orgToSub[key] = append(orgToSub[key], r.Tail)
		case relate.KindSectionItem:
			orgToDoc[key] = append(orgToDoc[key], r.Tail)
		}
	}
	for _, m := range []map[offsets][]relate.Ref{orgToSub, orgToDoc} {
		for k := range m {
			tails := m[k]
			sort.SliceStable(tails, func(i, j int) bool { return tails[i].Start < tails[j].Start })
		}
	}

	var roster []Entry
	for _, sp := range sum.Spans {
		if sp.Label != segment.LabelOrg {
			continue
		}
		key := offsets{sp.Start, sp.End}
		e := Entry{OrgText: sp.Text}
		for _, t := range orgToSub[key] {
			e.SubOrgs = append(e.SubOrgs, t.Text)
		}
		for _, t := range orgToDoc[key] {
			e.Docs = append(e.Docs, t.Text)
		}
		roster = append(roster, e)
	}
	return roster
}
