// Package match is the tokenization and phrase-search substrate used by the
// re-anchoring engine. It provides exactly two capabilities: segmenting a
// character buffer into matchable units with stable byte offsets, and exact
// multi-phrase search over that unit stream. No tagging, parsing or
// lemmatization happens here.
package match

import (
	"unicode"
	"unicode/utf8"
)

// Token is one matchable unit: a maximal run of letters and digits, or a
// single other printable rune. Offsets are half-open byte positions into the
// segmented buffer.
type Token struct {
	Start int
	End   int
}

// Tokenize segments text into tokens. Whitespace separates tokens and is
// never part of one.
func Tokenize(text string) []Token {
	var toks []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		if isWordRune(r) {
			j := i + size
			for j < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[j:])
				if !isWordRune(r2) {
					break
				}
				j += s2
			}
			toks = append(toks, Token{Start: i, End: j})
			i = j
			continue
		}
		toks = append(toks, Token{Start: i, End: i + size})
		i += size
	}
	return toks
}

// Match is one phrase occurrence, in byte offsets of the searched buffer.
type Match struct {
	ID    string
	Start int
	End   int
}

// PhraseMatcher performs exact multi-phrase search over a token stream. Add
// every phrase up front, then run FindAll once per buffer.
type PhraseMatcher struct {
	byFirst map[string][]pattern
}

type pattern struct {
	id     string
	tokens []string
}

// NewPhraseMatcher returns an empty matcher.
func NewPhraseMatcher() *PhraseMatcher {
	return &PhraseMatcher{byFirst: map[string][]pattern{}}
}

// Add registers a phrase under an identifier. Empty phrases are ignored;
// adding the same identifier twice registers both patterns.
func (m *PhraseMatcher) Add(id, phrase string) {
	toks := Tokenize(phrase)
	if len(toks) == 0 {
		return
	}
	texts := make([]string, len(toks))
	for i, t := range toks {
		texts[i] = phrase[t.Start:t.End]
	}
	m.byFirst[texts[0]] = append(m.byFirst[texts[0]], pattern{id: id, tokens: texts})
}

// FindAll returns every occurrence of every registered phrase in text, given
// text's token stream. Matches are reported in token order; overlapping
// occurrences of different phrases are all reported.
func (m *PhraseMatcher) FindAll(text string, toks []Token) []Match {
	if len(m.byFirst) == 0 {
		return nil
	}
	var out []Match
	for i, t := range toks {
		cands, ok := m.byFirst[text[t.Start:t.End]]
		if !ok {
			continue
		}
		for _, p := range cands {
			if i+len(p.tokens) > len(toks) {
				continue
			}
			matched := true
			for k := 1; k < len(p.tokens); k++ {
				tk := toks[i+k]
				if text[tk.Start:tk.End] != p.tokens[k] {
					matched = false
					break
				}
			}
			if matched {
				out = append(out, Match{ID: p.id, Start: t.Start, End: toks[i+len(p.tokens)-1].End})
			}
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
