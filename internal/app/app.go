// Package app wires the extraction pipeline end to end: load, clean,
// segment, relate, split, re-anchor, and write artifacts. The pipeline is
// single-threaded and synchronous; every stage consumes the complete output
// of the previous one, and all state is local to one Run call, so separate
// documents can be processed by independent App instances with no
// coordination.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/textlabpt/gazex/internal/anchor"
	"github.com/textlabpt/gazex/internal/classify"
	"github.com/textlabpt/gazex/internal/extract"
	"github.com/textlabpt/gazex/internal/normalize"
	"github.com/textlabpt/gazex/internal/relate"
	"github.com/textlabpt/gazex/internal/segment"
	"github.com/textlabpt/gazex/internal/summary"
)

// ErrEmptyInput is returned when the input document contains no printable
// text at all. Thin output from a well-formed document is expected,
// recoverable behavior and is never an error.
var ErrEmptyInput = fmt.Errorf("empty input document")

// App runs the gazette extraction pipeline.
type App struct {
	cfg Config
	lex *classify.Lexicon
	seg *segment.Segmenter
}

// New compiles the lexicon once and prepares a pipeline instance.
func New(cfg Config) *App {
	tables := classify.DefaultTables().Merge(cfg.Lexicon)
	lex := classify.NewLexicon(tables)
	return &App{
		cfg: cfg,
		lex: lex,
		seg: segment.New(lex, cfg.Segment),
	}
}

// Result is the complete output of one document-processing call. The caller
// owns it; no component retains references into it.
type Result struct {
	Text      string            `json:"-"`
	Spans     []segment.Span    `json:"spans"`
	Relations []relate.Relation `json:"relations"`
	Cut       int               `json:"cut"`
	Roster    []summary.Entry   `json:"roster"`
	BodyItems []anchor.BodyItem `json:"body_items"`
}

// Process runs the whole pipeline over raw document text.
func (a *App) Process(raw string) (Result, error) {
	text := normalize.Clean(raw)
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyInput
	}

	spans := a.seg.Segment(text)
	rels := relate.Build(spans, a.lex)
	sum, cut := summary.Split(text, spans, rels)
	roster := summary.BuildRoster(sum)
	items := anchor.Reanchor(text, cut, roster)

	log.Info().
		Int("spans", len(spans)).
		Int("relations", len(rels)).
		Int("roster", len(roster)).
		Int("bodyItems", len(items)).
		Msg("document processed")

	return Result{
		Text:      text,
		Spans:     spans,
		Relations: rels,
		Cut:       cut,
		Roster:    roster,
		BodyItems: items,
	}, nil
}

// Run loads the configured input, processes it, and writes the configured
// artifacts.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := a.loadInput()
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	res, err := a.Process(raw)
	if err != nil {
		return err
	}

	if a.cfg.OutputPath != "" {
		if err := writeReportFile(a.cfg.OutputPath, res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPath).Msg("report written")
	}
	if a.cfg.JSONPath != "" {
		if err := writeJSONArtifact(a.cfg.JSONPath, res); err != nil {
			return fmt.Errorf("write json artifact: %w", err)
		}
		log.Info().Str("path", a.cfg.JSONPath).Msg("json artifact written")
	}
	if a.cfg.PDFPath != "" {
		if err := writePDF(a.cfg.PDFPath, res); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.PDFPath).Msg("pdf written")
	}
	return nil
}

func (a *App) loadInput() (string, error) {
	b, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(a.cfg.InputPath)) {
	case ".html", ".htm":
		doc := extract.FromHTML(b)
		log.Debug().Str("title", doc.Title).Msg("html input extracted")
		return doc.Text, nil
	default:
		return string(b), nil
	}
}
