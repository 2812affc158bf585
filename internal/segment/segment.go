// Package segment turns raw gazette text into typed structural spans (ORG,
// ORG_SECUNDARIA, DOC) with a line-driven state machine. The machine starts
// OUTSIDE, enters IN_ORG while a header accumulates, and loops IN_SECTION
// until input is exhausted; headers inside a section re-enter the same
// accumulation logic.
package segment

import (
	"github.com/rs/zerolog/log"

	"github.com/textlabpt/gazex/internal/classify"
)

// Options carries the empirically chosen segmentation constants. They are
// configuration, not law; zero values take the defaults below.
type Options struct {
	// MaxHeaderLines caps how many lines one ORG header may absorb.
	MaxHeaderLines int `yaml:"maxHeaderLines" json:"maxHeaderLines"`
	// MinSecondaryTokens is the content-token minimum for promoting a plain
	// section line to a secondary organization.
	MinSecondaryTokens int `yaml:"minSecondaryTokens" json:"minSecondaryTokens"`
	// SecondaryLookahead is how many lines the company-document fallback may
	// look ahead.
	SecondaryLookahead int `yaml:"secondaryLookahead" json:"secondaryLookahead"`
}

func (o Options) withDefaults() Options {
	if o.MaxHeaderLines <= 0 {
		o.MaxHeaderLines = 3
	}
	if o.MinSecondaryTokens <= 0 {
		o.MinSecondaryTokens = 4
	}
	if o.SecondaryLookahead <= 0 {
		o.SecondaryLookahead = 2
	}
	return o
}

// Segmenter runs the structural line classification state machine.
type Segmenter struct {
	lex  *classify.Lexicon
	opts Options
}

// New builds a Segmenter around a compiled lexicon.
func New(lex *classify.Lexicon, opts Options) *Segmenter {
	return &Segmenter{lex: lex, opts: opts.withDefaults()}
}

type line struct {
	start, end int
	text       string
}

// splitLines mirrors splitlines(keepends=True): each entry covers the line
// including its terminator, so consecutive entries tile the buffer.
func splitLines(text string) []line {
	var out []line
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, line{start: start, end: i + 1, text: text[start : i+1]})
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, line{start: start, end: len(text), text: text[start:]})
	}
	return out
}

// Segment classifies every line of text and returns the accepted spans in
// document order, already passed through the longest-match overlap filter.
func (sg *Segmenter) Segment(text string) []Span {
	lines := splitLines(text)
	var spans []Span

	const (
		stateOutside = iota
		stateInSection
	)
	state := stateOutside

	// absorbHeader consumes the header starting at line i and returns the
	// index of the first line after it. Continuation lines are absorbed up
	// to the configured cap; blank lines, document labels and fresh starters
	// always stop the header.
	absorbHeader := func(i int) int {
		start := lines[i].start
		end := lines[i].end
		prev := lines[i].text
		count := 1
		j := i + 1
		for j < len(lines) && count < sg.opts.MaxHeaderLines {
			next := lines[j]
			if classify.IsBlank(next.text) ||
				sg.lex.IsDocLabelLine(next.text) ||
				sg.lex.StartsWithHeaderStarter(next.text) {
				break
			}
			if !sg.lex.IsHeaderContinuation(prev, next.text) {
				break
			}
			end = next.end
			prev = next.text
			count++
			j++
		}
		if sp, ok := newSpan(text, start, end, LabelOrg); ok {
			spans = append(spans, sp)
		}
		return j
	}

	i := 0
	for i < len(lines) {
		ln := lines[i]

		if state == stateOutside {
			if classify.IsBlank(ln.text) {
				i++
				continue
			}
			if sg.lex.StartsWithHeaderStarter(ln.text) {
				i = absorbHeader(i)
				state = stateInSection
				continue
			}
			// Document label with no organization yet still yields a span;
			// the relation builder decides whether it gets linked.
			if sg.lex.IsDocLabelLine(ln.text) {
				if sp, ok := newSpan(text, ln.start, ln.end, LabelDoc); ok {
					spans = append(spans, sp)
				}
			}
			i++
			continue
		}

		// stateInSection
		if !classify.IsBlank(ln.text) && sg.lex.StartsWithHeaderStarter(ln.text) {
			i = absorbHeader(i)
			continue
		}
		if sg.lex.IsDocLabelLine(ln.text) {
			if sp, ok := newSpan(text, ln.start, ln.end, LabelDoc); ok {
				spans = append(spans, sp)
			}
			i++
			continue
		}

		if sg.promoteSecondary(lines, i) {
			// Merge one wrapped continuation line when it is plain text.
			if i+1 < len(lines) {
				next := lines[i+1]
				if !classify.IsBlank(next.text) &&
					!sg.lex.StartsWithHeaderStarter(next.text) &&
					!sg.lex.IsDocLabelLine(next.text) {
					if sp, ok := newSpan(text, ln.start, next.end, LabelOrgSecundaria); ok {
						spans = append(spans, sp)
						i += 2
						continue
					}
				}
			}
			if sp, ok := newSpan(text, ln.start, ln.end, LabelOrgSecundaria); ok {
				spans = append(spans, sp)
			}
			i++
			continue
		}

		// Inert section text.
		i++
	}

	out := FilterSpans(spans)
	log.Debug().Int("candidates", len(spans)).Int("accepted", len(out)).Msg("segmentation complete")
	return out
}

// promoteSecondary applies the secondary-organization promotion rules to the
// line at index i: enough content tokens (Rule A), or a company-level
// document label within the lookahead window before any header or document
// label intervenes (Rule B).
func (sg *Segmenter) promoteSecondary(lines []line, i int) bool {
	ln := lines[i]
	if classify.IsBlank(ln.text) {
		return false
	}
	if sg.lex.ContentTokenCount(ln.text) >= sg.opts.MinSecondaryTokens &&
		!sg.lex.StartsWithHeaderStarter(ln.text) {
		return true
	}
	for la := 1; la <= sg.opts.SecondaryLookahead && i+la < len(lines); la++ {
		ahead := lines[i+la].text
		if sg.lex.IsCompanyDocLabel(ahead) {
			return true
		}
		if sg.lex.StartsWithHeaderStarter(ahead) || sg.lex.IsDocLabelLine(ahead) {
			break
		}
	}
	return false
}
