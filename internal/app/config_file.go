package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/textlabpt/gazex/internal/classify"
	"github.com/textlabpt/gazex/internal/segment"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags; the lexicon and segment blocks have no flag
// equivalents because word tables do not belong on a command line.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`
	JSON   string `yaml:"json" json:"json"`
	PDF    string `yaml:"pdf" json:"pdf"`

	Lexicon classify.Tables `yaml:"lexicon" json:"lexicon"`
	Segment segment.Options `yaml:"segment" json:"segment"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON.
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields that
// are currently unset. Flags should already have been parsed; the file
// supplies defaults while explicit flags win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.JSONPath == "" && fc.JSON != "" {
		cfg.JSONPath = fc.JSON
	}
	if cfg.PDFPath == "" && fc.PDF != "" {
		cfg.PDFPath = fc.PDF
	}
	cfg.Lexicon = cfg.Lexicon.Merge(fc.Lexicon)
	if cfg.Segment.MaxHeaderLines == 0 {
		cfg.Segment.MaxHeaderLines = fc.Segment.MaxHeaderLines
	}
	if cfg.Segment.MinSecondaryTokens == 0 {
		cfg.Segment.MinSecondaryTokens = fc.Segment.MinSecondaryTokens
	}
	if cfg.Segment.SecondaryLookahead == 0 {
		cfg.Segment.SecondaryLookahead = fc.Segment.SecondaryLookahead
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
