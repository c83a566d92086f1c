// Package keywords turns page text into a ranked keyword list.
package keywords

import (
	"log/slog"

	"github.com/dtnitsch/url-keywords/pkg/yake"
)

// DefaultTopN is used when a caller asks for zero or fewer keywords.
const DefaultTopN = 4

// LanguageResolver maps text to a supported ISO 639-1 code, never failing.
type LanguageResolver interface {
	Resolve(text string) string
}

type Extractor struct {
	languages LanguageResolver
	logger    *slog.Logger
}

func NewExtractor(logger *slog.Logger, languages LanguageResolver) *Extractor {
	return &Extractor{languages: languages, logger: logger}
}

// Extract returns at most topN keywords for text, most relevant first.
// It never fails; no keywords is an empty slice.
func (e *Extractor) Extract(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}
	language := e.languages.Resolve(text)

	scored := yake.New(yake.Config{
		Language:   language,
		Top:        topN,
		DedupLimit: yake.DefaultDedupLimit,
		WindowSize: yake.DefaultWindowSize,
	}).Extract(text)

	out := make([]string, 0, len(scored))
	for _, kw := range scored {
		out = append(out, kw.Text)
	}
	e.logger.Debug("Extracted keywords", "language", language, "keywords", out)
	return out
}
