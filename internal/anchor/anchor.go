// Package anchor re-locates the summary roster inside the body region and
// slices each anchored organization's section into contiguous per-document
// blocks. Matching happens over normalized text; results are reported in
// original-text coordinates via the normalization offset map. Absence of a
// match is never an error here: unanchored entries silently reduce output.
package anchor

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/textlabpt/gazex/internal/match"
	"github.com/textlabpt/gazex/internal/normalize"
	"github.com/textlabpt/gazex/internal/summary"
)

// BodyItem is one sliced document block inside an anchored organization
// section. Slices of one section tile it without gaps or overlaps: SliceEnd
// of item k equals SliceStart of item k+1, and the last slice runs to the
// section boundary.
type BodyItem struct {
	OrgText    string `json:"org_text"`
	OrgStart   int    `json:"org_start"`
	OrgEnd     int    `json:"org_end"`
	SectionID  int    `json:"section_id"`
	DocTitle   string `json:"doc_title"`
	DocStart   int    `json:"doc_start"`
	DocEnd     int    `json:"doc_end"`
	Relation   string `json:"relation"`
	SliceText  string `json:"slice_text"`
	SliceStart int    `json:"slice_start"`
	SliceEnd   int    `json:"slice_end"`
	OrderIndex int    `json:"order_index"`
}

type candidate struct{ start, end int }

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// passesAllCapsGate accepts a body span as a structural header mention only
// when it does not cross a blank line and every whitespace token containing
// a letter is entirely uppercase. Prose or quoted mentions of an
// organization fail this gate.
func passesAllCapsGate(span string) bool {
	if blankLineRe.MatchString(span) {
		return false
	}
	for _, tok := range strings.Fields(span) {
		for _, r := range tok {
			if unicode.IsLetter(r) && r != unicode.ToUpper(r) {
				return false
			}
		}
	}
	return true
}

func wordBoundaryOK(normText string, start, end int) bool {
	leftOK := start == 0 || !isAlnum(normText[start-1])
	rightOK := end == len(normText) || !isAlnum(normText[end])
	return leftOK && rightOK
}

func isAlnum(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// Reanchor searches the body region of fullText (everything at or after
// cut) for the roster's organizations, sub-organizations and documents, and
// returns the ordered document blocks. Roster order is enforced with a
// single forward cursor per scope (monotone assignment); entries that never
// match are skipped.
func Reanchor(fullText string, cut int, roster []summary.Entry) []BodyItem {
	if cut >= len(fullText) || len(roster) == 0 {
		return nil
	}
	body := fullText[cut:]
	buf := normalize.NewBuffer(body)
	toks := match.Tokenize(buf.Text)

	orgCands := gather(buf, toks, cut, orgPhrases(roster), true)
	subCands := gather(buf, toks, cut, subPhrases(roster), true)
	docCands := gather(buf, toks, cut, docPhrases(roster), false)

	// Assign organizations in roster order under a single forward cursor.
	type assignedOrg struct {
		entry summary.Entry
		ok    bool
		start int
		end   int
	}
	assigned := make([]assignedOrg, 0, len(roster))
	cursor := cut
	for _, entry := range roster {
		norm := normalize.Phrase(entry.OrgText)
		a := assignedOrg{entry: entry}
		for _, c := range orgCands[norm] {
			if c.start >= cursor {
				a.ok = true
				a.start = c.start
				a.end = c.end
				cursor = c.end
				break
			}
		}
		assigned = append(assigned, a)
	}

	nextOrgStart := func(i int) int {
		for j := i + 1; j < len(assigned); j++ {
			if assigned[j].ok {
				return assigned[j].start
			}
		}
		return len(fullText)
	}

	var items []BodyItem
	orderIdx := 1
	anchoredOrgs := 0

	for i, a := range assigned {
		if !a.ok {
			continue
		}
		anchoredOrgs++
		sectionEnd := nextOrgStart(i)

		// Sub-organizations: assigned for diagnostics only; document anchors
		// alone drive slicing.
		subCursor := a.start
		subsFound := 0
		for _, sub := range a.entry.SubOrgs {
			norm := normalize.Phrase(sub)
			for _, c := range subCands[norm] {
				if c.start < a.start || c.start >= sectionEnd {
					continue
				}
				if c.start >= subCursor {
					subCursor = c.end
					subsFound++
					break
				}
			}
		}
		if n := len(a.entry.SubOrgs); n > 0 {
			log.Debug().Str("org", summary.OrgKey(a.entry.OrgText)).
				Int("suborgs", n).Int("anchored", subsFound).
				Msg("sub-organization anchors")
		}

		// Documents must follow the organization header.
		docCursor := a.end
		var docs []candidate
		for _, d := range a.entry.Docs {
			norm := normalize.Phrase(d)
			for _, c := range docCands[norm] {
				if c.start < a.end || c.start >= sectionEnd {
					continue
				}
				if c.start >= docCursor {
					docCursor = c.end
					docs = append(docs, c)
					break
				}
			}
		}
		if len(docs) == 0 {
			continue
		}

		orgText := strings.Join(strings.Fields(a.entry.OrgText), " ")
		emit := func(d candidate, sliceStart, sliceEnd int) {
			items = append(items, BodyItem{
				OrgText:    orgText,
				OrgStart:   a.start,
				OrgEnd:     a.end,
				SectionID:  a.start,
				DocTitle:   fullText[d.start:d.end],
				DocStart:   d.start,
				DocEnd:     d.end,
				Relation:   "SECTION_ITEM",
				SliceText:  strings.TrimSpace(fullText[sliceStart:sliceEnd]),
				SliceStart: sliceStart,
				SliceEnd:   sliceEnd,
				OrderIndex: orderIdx,
			})
			orderIdx++
		}

		// First block starts at the organization header.
		firstEnd := sectionEnd
		if len(docs) >= 2 {
			firstEnd = docs[1].start
		}
		emit(docs[0], a.start, firstEnd)

		for j := 1; j < len(docs)-1; j++ {
			emit(docs[j], docs[j].start, docs[j+1].start)
		}
		if len(docs) >= 2 {
			emit(docs[len(docs)-1], docs[len(docs)-1].start, sectionEnd)
		}
	}

	log.Debug().Int("roster", len(roster)).Int("anchored", anchoredOrgs).
		Int("items", len(items)).Msg("re-anchoring complete")
	return items
}

func orgPhrases(roster []summary.Entry) []string {
	out := make([]string, 0, len(roster))
	for _, e := range roster {
		out = append(out, e.OrgText)
	}
	return out
}

func subPhrases(roster []summary.Entry) []string {
	var out []string
	for _, e := range roster {
		out = append(out, e.SubOrgs...)
	}
	return out
}

func docPhrases(roster []summary.Entry) []string {
	var out []string
	for _, e := range roster {
		out = append(out, e.Docs...)
	}
	return out
}

// gather runs exact phrase search for every distinct normalized phrase over
// the normalized body and returns accepted occurrences per phrase in
// original full-text coordinates, each list ordered by (start, -end) so the
// longest match at a shared start wins during assignment.
func gather(buf *normalize.Buffer, toks []match.Token, cut int, phrases []string, gateAllCaps bool) map[string][]candidate {
	m := match.NewPhraseMatcher()
	seen := map[string]bool{}
	for _, p := range phrases {
		norm := normalize.Phrase(p)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		m.Add(norm, norm)
	}

	out := map[string][]candidate{}
	for _, hit := range m.FindAll(buf.Text, toks) {
		if !wordBoundaryOK(buf.Text, hit.Start, hit.End) {
			continue
		}
		srcStart, srcEnd := buf.SourceSpan(hit.Start, hit.End)
		if srcEnd <= srcStart {
			continue
		}
		fullStart := cut + srcStart
		fullEnd := cut + srcEnd
		if gateAllCaps && !passesAllCapsGate(buf.Source[srcStart:srcEnd]) {
			continue
		}
		out[hit.ID] = append(out[hit.ID], candidate{start: fullStart, end: fullEnd})
	}
	for k := range out {
		cands := out[k]
		sortCandidates(cands)
		out[k] = cands
	}
	return out
}

func sortCandidates(c []candidate) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].start != c[j].start {
			return c[i].start < c[j].start
		}
		return c[i].end > c[j].end
	})
}
