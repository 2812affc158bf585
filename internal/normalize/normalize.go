// Package normalize provides the two canonical text forms used by the
// extraction pipeline: a phrase form for short known-label strings and a
// buffer form for whole search regions. Both share one character-level core
// (diacritics folded, uppercased, soft hyphenation joined, whitespace
// collapsed, acronym dots removed); the buffer form additionally retains an
// offset map so matches found in normalized space can be reported in
// original-text coordinates.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// edgePunct is the punctuation trimmed from both ends of a phrase.
const edgePunct = " ,.;:—–-"

// foldTransformer decomposes compatibly and drops combining marks, so
// "SECRETÁRIA" folds to "SECRETARIA" and "n.º" exposes a plain "o".
var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Clean canonicalizes raw input before any segmentation: composed form,
// byte-order mark / soft hyphen / zero-width space removed, non-breaking
// space converted, typographic quotes and ellipsis flattened. All pipeline
// offsets refer to the cleaned buffer, so Clean must run exactly once, up
// front.
func Clean(s string) string {
	s = norm.NFC.String(s)
	r := strings.NewReplacer(
		"\uFEFF", "", // byte-order mark
		"\u00AD", "", // soft hyphen
		"\u200B", "", // zero-width space
		"\u00A0", " ",
		"\u201C", `"`,
		"\u201D", `"`,
		"\u2019", "'",
		"\u2026", "...",
	)
	return r.Replace(s)
}

// foldRune returns the diacritic-free uppercase expansion of a single rune.
// Most runes expand to exactly one byte; compatibility decompositions such
// as the ordinal indicators expand to their base letter.
func foldRune(r rune) string {
	folded, _, err := transform.String(foldTransformer, string(r))
	if err != nil {
		folded = string(r)
	}
	return strings.ToUpper(folded)
}

// Buffer is the normalized form of a search region together with the map
// back into its source. Map[i] is the byte offset in Source of the rune
// that produced output byte i; runes deleted by soft-hyphen joining,
// whitespace collapsing or acronym-dot removal have no output bytes.
type Buffer struct {
	Source string
	Text   string
	Map    []int
}

// NewBuffer normalizes a whole search region, retaining the offset map.
// Edge punctuation is deliberately not trimmed here: interior positions
// must stay one-to-one with the surviving source runes.
func NewBuffer(src string) *Buffer {
	var out strings.Builder
	out.Grow(len(src))
	idx := make([]int, 0, len(src))

	lastWasSpace := false
	prevAlpha := false // last emitted byte was a letter
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])

		// Soft hyphenation: letter '-' ws* letter joins to the two letters.
		if r == '-' && prevAlpha {
			j := i + size
			for j < len(src) {
				r2, s2 := utf8.DecodeRuneInString(src[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += s2
			}
			if j < len(src) {
				r2, _ := utf8.DecodeRuneInString(src[j:])
				if unicode.IsLetter(r2) {
					i = j
					continue
				}
			}
		}

		if unicode.IsSpace(r) {
			if !lastWasSpace {
				out.WriteByte(' ')
				idx = append(idx, i)
				lastWasSpace = true
				prevAlpha = false
			}
			i += size
			continue
		}
		lastWasSpace = false

		// Dots inside acronyms ("E.P.E." -> "EPE") vanish: a dot between an
		// emitted letter and an upcoming letter carries no information once
		// the text is uppercased and accent-folded.
		if r == '.' && prevAlpha {
			if nr, _ := utf8.DecodeRuneInString(src[i+size:]); unicode.IsLetter(nr) {
				i += size
				continue
			}
		}

		folded := foldRune(r)
		if folded == "" {
			// A bare combining mark folds away entirely.
			i += size
			continue
		}
		for _, b := range []byte(folded) {
			out.WriteByte(b)
			idx = append(idx, i)
		}
		prevAlpha = unicode.IsLetter(r) || isASCIIAlpha(folded[len(folded)-1])
		i += size
	}

	return &Buffer{Source: src, Text: out.String(), Map: idx}
}

// SourceSpan converts a half-open span over the normalized text back to a
// half-open byte span over Source. The end position is the end of the source
// rune that produced the last normalized byte, so slicing Source with the
// result reproduces the exact original substring.
func (b *Buffer) SourceSpan(start, end int) (int, int) {
	if start < 0 || end <= start || end > len(b.Map) {
		return 0, 0
	}
	srcStart := b.Map[start]
	last := b.Map[end-1]
	_, size := utf8.DecodeRuneInString(b.Source[last:])
	return srcStart, last + size
}

// Phrase normalizes a short label string to its canonical matching form:
// the shared character core plus a full trim of edge punctuation. Phrase is
// idempotent; applying it to its own output is a no-op.
func Phrase(s string) string {
	b := NewBuffer(s)
	return strings.Trim(b.Text, edgePunct)
}

// StripDiacritics folds a string to its unaccented form without any other
// transformation. The classifier uses it for token comparisons.
func StripDiacritics(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
