// Package harvest is the library entry point: keywords for one URL, a list
// of URLs, or a URL file written straight to CSV.
package harvest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dtnitsch/url-keywords/internal/common"
	"github.com/dtnitsch/url-keywords/models"
	"github.com/dtnitsch/url-keywords/pkg/batch"
	"github.com/dtnitsch/url-keywords/pkg/fetcher"
	"github.com/dtnitsch/url-keywords/pkg/keywords"
	"github.com/dtnitsch/url-keywords/pkg/langdetect"
	"github.com/dtnitsch/url-keywords/pkg/pacer"
	"github.com/dtnitsch/url-keywords/pkg/report"
)

const (
	DefaultTopN   = 10
	DefaultOutput = "output.csv"
)

// ErrNoValidURLs is returned when every input URL failed validation.
var ErrNoValidURLs = errors.New("no valid URLs to process after validation")

// ErrInvalidURL is returned by GetKeywords for a malformed URL.
var ErrInvalidURL = common.ErrInvalidURL

// ErrNoURLs is returned for empty input.
var ErrNoURLs = batch.ErrNoURLs

type Harvester struct {
	cfg       *models.Config
	logger    *slog.Logger
	fetcher   batch.PageFetcher
	extractor batch.KeywordExtractor
	pacer     pacer.Pacer
}

type Option func(*Harvester)

func WithFetcher(f batch.PageFetcher) Option {
	return func(h *Harvester) { h.fetcher = f }
}

func WithExtractor(e batch.KeywordExtractor) Option {
	return func(h *Harvester) { h.extractor = e }
}

func WithPacer(p pacer.Pacer) Option {
	return func(h *Harvester) { h.pacer = p }
}

// New wires a Harvester from cfg. A nil cfg uses models.DefaultConfig and a
// nil logger discards output.
func New(cfg *models.Config, logger *slog.Logger, opts ...Option) *Harvester {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	if logger == nil {
		logger = common.DiscardLogger()
	}
	h := &Harvester{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	if h.fetcher == nil {
		h.fetcher = fetcher.NewFetcher(logger, cfg.Fetch, cfg.DumpPath)
	}
	if h.extractor == nil {
		h.extractor = keywords.NewExtractor(logger, langdetect.New(logger))
	}
	if h.pacer == nil {
		h.pacer = pacer.New(cfg.Delay, cfg.Rate)
	}
	return h
}

// ExtractURLs runs the batch over urls as given. Validation is the
// caller's job.
func (h *Harvester) ExtractURLs(ctx context.Context, urls []string, topN int) ([]models.ResultRow, error) {
	if topN <= 0 {
		topN = h.cfg.TopN
	}
	p := &batch.Processor{
		Fetcher:   h.fetcher,
		Extractor: h.extractor,
		Pacer:     h.pacer,
		Logger:    h.logger,
		TopN:      topN,
		MaxWords:  h.cfg.MaxWords,
	}
	return p.Run(ctx, urls)
}

// GetKeywords returns the keywords found for a single URL, absent slots
// removed. A page with no usable content yields an empty slice.
func (h *Harvester) GetKeywords(ctx context.Context, rawURL string, topN int) ([]string, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	u, err := common.ValidateURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL provided: %w", err)
	}

	rows, err := h.ExtractURLs(ctx, []string{u}, topN)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []string{}, nil
	}
	return rows[0].Present(), nil
}

// GetKeywordsFromFile reads a URL list, drops malformed entries with a
// warning, runs the batch and writes the CSV report to outputCSV.
func (h *Harvester) GetKeywordsFromFile(ctx context.Context, path string, topN int, outputCSV string) ([]models.ResultRow, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if outputCSV == "" {
		outputCSV = DefaultOutput
	}

	urls, err := common.ReadURLFile(path)
	if err != nil {
		h.logger.Error("Failed to read URLs from file", "path", path, "error", err)
		return nil, err
	}
	if len(urls) == 0 {
		h.logger.Error("No URLs found in the file", "path", path)
		return nil, fmt.Errorf("%w in %s", ErrNoURLs, path)
	}

	valid := common.FilterValidURLs(h.logger, urls)
	if len(valid) == 0 {
		h.logger.Error("No valid URLs to process after validation", "path", path)
		return nil, ErrNoValidURLs
	}

	rows, err := h.ExtractURLs(ctx, valid, topN)
	if err != nil {
		return rows, err
	}
	if err := report.WriteCSV(outputCSV, topN, rows); err != nil {
		h.logger.Error("Failed to save results", "path", outputCSV, "error", err)
		return rows, err
	}
	h.logger.Info("Results successfully saved", "path", outputCSV, "rows", len(rows))
	return rows, nil
}
