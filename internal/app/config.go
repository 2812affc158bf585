package app

import (
	"github.com/textlabpt/gazex/internal/classify"
	"github.com/textlabpt/gazex/internal/segment"
)

// Config holds runtime configuration for one pipeline run.
type Config struct {
	// InputPath is the gazette to process; .html/.htm inputs go through the
	// HTML extractor first, everything else is read as plain text.
	InputPath string
	// OutputPath receives the human-readable report.
	OutputPath string
	// JSONPath, when set, receives the structured artifact (spans,
	// relations, roster, body items).
	JSONPath string
	// PDFPath, when set, receives a PDF rendering of the document blocks.
	PDFPath string

	// Lexicon overrides the built-in classification tables; empty lists keep
	// the defaults.
	Lexicon classify.Tables
	// Segment carries the segmentation thresholds; zero values keep the
	// defaults.
	Segment segment.Options

	Verbose bool
}
