package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/textlabpt/gazex/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath  string
		outputPath string
		jsonPath   string
		pdfPath    string
		configPath string
		verbose    bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the gazette file (.txt, .html or .htm)")
	flag.StringVar(&outputPath, "output", "", "Path to write the text report")
	flag.StringVar(&jsonPath, "json", "", "Path to write the structured JSON artifact")
	flag.StringVar(&pdfPath, "pdf", "", "Path to write a PDF of the extracted document blocks")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file; flags take precedence")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:  inputPath,
		OutputPath: outputPath,
		JSONPath:   jsonPath,
		PDFPath:    pdfPath,
		Verbose:    verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.InputPath == "" {
		log.Error().Msg("missing -input (or input: in the config file)")
		flag.Usage()
		os.Exit(1)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "report.txt"
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when the document has nothing to extract,
		// 1 for everything else.
		if errors.Is(err, app.ErrEmptyInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()
	return app.New(cfg).Run(ctx)
}
