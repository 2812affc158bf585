package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/textlabpt/gazex/internal/normalize"
)

// Company-level document anchor, matched case-insensitively anywhere in a
// line ("Contrato   de sociedade" included).
var companyDocRe = regexp.MustCompile(`(?i)\bcontrato\s*de\s*sociedade\b`)

// IsBlank reports whether the line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// FirstAlphaToken returns the first whitespace-delimited token containing a
// letter, diacritics stripped, uppercased, trailing punctuation trimmed.
// Empty when the line has no alphabetic token.
func FirstAlphaToken(line string) string {
	for _, w := range strings.Fields(line) {
		if !containsLetter(w) {
			continue
		}
		return strings.Trim(strings.ToUpper(normalize.StripDiacritics(w)), ",.;:-")
	}
	return ""
}

// StartsWithHeaderStarter reports whether the line opens a top-level
// organization header: its first alphabetic token is a configured starter,
// or the uppercased line begins with one of the starter phrases.
func (lx *Lexicon) StartsWithHeaderStarter(line string) bool {
	up := strings.ToUpper(strings.TrimSpace(line))
	if up == "" {
		return false
	}
	if lx.headerStarters[FirstAlphaToken(up)] {
		return true
	}
	for _, p := range lx.headerPrefixes {
		if strings.HasPrefix(up, p) {
			return true
		}
	}
	return false
}

// IsDocLabelLine reports whether the line is a document label: an exact
// configured label, a label prefix followed by a numbering marker and a
// digit, or a company-level document anchor.
func (lx *Lexicon) IsDocLabelLine(line string) bool {
	up := strings.ToUpper(strings.TrimSpace(line))
	if up == "" {
		return false
	}
	head := strings.Join(strings.Fields(up), " ")
	if lx.docLabels[head] {
		return true
	}
	for _, p := range lx.docLabelPrefixes {
		if !strings.HasPrefix(head, p) {
			continue
		}
		for _, nm := range lx.numberMarkers {
			if i := strings.Index(head, nm); i >= 0 && containsDigit(head[i+len(nm):]) {
				return true
			}
		}
		break
	}
	return companyDocRe.MatchString(up)
}

// IsCompanyDocLabel reports whether span text names a company-level
// document ("Contrato de sociedade").
func (lx *Lexicon) IsCompanyDocLabel(text string) bool {
	up := strings.Join(strings.Fields(strings.ToUpper(text)), " ")
	if up == "CONTRATO DE SOCIEDADE" {
		return true
	}
	return companyDocRe.MatchString(up)
}

// ContentTokenCount counts alphabetic tokens that are not stopwords.
func (lx *Lexicon) ContentTokenCount(line string) int {
	n := 0
	for _, w := range strings.Fields(line) {
		if !containsLetter(w) {
			continue
		}
		tok := strings.Trim(strings.ToUpper(normalize.StripDiacritics(w)), ",.;:")
		if !lx.stopwords[tok] {
			n++
		}
	}
	return n
}

// IsHeaderContinuation reports whether curr continues a header begun on
// prev: curr opens with a function word and still carries content, prev
// ends with a connector, comma or hyphen, or curr opens with a function
// word followed by a known domain noun.
func (lx *Lexicon) IsHeaderContinuation(prev, curr string) bool {
	if IsBlank(curr) {
		return false
	}
	currUp := strings.ToUpper(strings.TrimSpace(curr))
	parts := strings.Fields(currUp)
	if len(parts) > 0 && lx.stopwords[parts[0]] && lx.ContentTokenCount(currUp) >= 1 {
		return true
	}
	prevUp := strings.ToUpper(strings.TrimSpace(prev))
	for _, c := range lx.connectors {
		if strings.HasSuffix(prevUp, c) {
			return true
		}
	}
	if strings.HasSuffix(prevUp, ",") || strings.HasSuffix(prevUp, "-") || strings.HasSuffix(prevUp, "–") {
		return true
	}
	if len(parts) > 0 && lx.stopwords[parts[0]] {
		for _, noun := range lx.domainNouns {
			if strings.Contains(currUp, noun) {
				return true
			}
		}
	}
	return false
}

// LooksLikeSecondaryStart reports whether the line opens with an
// institutional noun typical of secondary organizations inside a section.
func (lx *Lexicon) LooksLikeSecondaryStart(line string) bool {
	up := strings.TrimSpace(line)
	if up == "" {
		return false
	}
	return lx.secondaryStarters[FirstAlphaToken(up)]
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
