// Package batch runs the fetch, extract and tabulate pipeline over a URL list.
package batch

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/dtnitsch/url-keywords/pkg/fetcher"
	"github.com/dtnitsch/url-keywords/pkg/pacer"
)

// ErrNoURLs is returned when Run is given an empty list.
var ErrNoURLs = errors.New("no URLs to process")

// PageFetcher retrieves the text of one page.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*models.Page, error)
}

// KeywordExtractor ranks keywords in a text.
type KeywordExtractor interface {
	Extract(text string, topN int) []string
}

// State is the terminal outcome of one URL.
type State int

const (
	StateExtracted State = iota
	StateInsufficientContent
	StateFetchError
)

func (s State) String() string {
	switch s {
	case StateExtracted:
		return "extracted"
	case StateInsufficientContent:
		return "insufficient_content"
	case StateFetchError:
		return "fetch_error"
	}
	return "unknown"
}

// Processor walks URLs one at a time, in input order.
type Processor struct {
	Fetcher   PageFetcher
	Extractor KeywordExtractor
	Pacer     pacer.Pacer
	Logger    *slog.Logger
	TopN      int
	MaxWords  int
}

// Run produces exactly one row per URL. Per-URL failures are recorded in the
// row; only an empty list or a cancelled context is returned as an error, in
// which case the rows finished so far are returned too.
func (p *Processor) Run(ctx context.Context, urls []string) ([]models.ResultRow, error) {
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}

	rows := make([]models.ResultRow, 0, len(urls))
	for i, rawURL := range urls {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		p.Logger.Info("Processing URL", "url", rawURL, "index", i+1, "total", len(urls))

		row, state := p.processURL(ctx, rawURL)
		rows = append(rows, row)
		p.Logger.Debug("Finished URL", "url", rawURL, "state", state.String())

		if err := p.Pacer.Wait(ctx); err != nil {
			return rows, err
		}
	}
	return rows, nil
}

func (p *Processor) processURL(ctx context.Context, rawURL string) (models.ResultRow, State) {
	page, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		state := StateFetchError
		if errors.Is(err, fetcher.ErrInsufficientContent) {
			state = StateInsufficientContent
		}
		p.Logger.Warn("Insufficient content fetched", "url", rawURL, "state", state.String(), "error", err)
		return models.NewFailedRow(rawURL, p.TopN, models.InsufficientContent), state
	}

	keywords := p.Extractor.Extract(page.Text, p.TopN)
	if len(keywords) == 0 {
		p.Logger.Warn("No keywords extracted", "url", rawURL)
	}

	row := models.NewResultRow(rawURL, p.TopN, nil)
	for i := 0; i < p.TopN && i < len(keywords); i++ {
		if kw := NormalizeKeyword(keywords[i], p.MaxWords); kw != "" {
			row.Keywords[i] = &kw
		}
	}
	return row, StateExtracted
}

// NormalizeKeyword replaces commas with semicolons and keeps at most maxWords
// whitespace-separated words.
func NormalizeKeyword(keyword string, maxWords int) string {
	words := strings.Fields(strings.ReplaceAll(keyword, ",", ";"))
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, " ")
}
