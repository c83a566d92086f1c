// Package questions collects search-engine related questions ("People Also
// Ask") for the keywords of a page.
package questions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// ErrEmptyCentral is returned when Collect is called without a central phrase.
var ErrEmptyCentral = errors.New("central phrase is empty")

// Service looks up related questions for a search query.
type Service interface {
	Related(ctx context.Context, query string, limit int) ([]string, error)
}

// KeywordSource extracts the top keywords of a URL.
type KeywordSource interface {
	GetKeywords(ctx context.Context, rawURL string, topN int) ([]string, error)
}

// QuestionSet is an unordered set of unique questions.
type QuestionSet map[string]struct{}

func (s QuestionSet) Add(questions ...string) {
	for _, q := range questions {
		s[q] = struct{}{}
	}
}

func (s QuestionSet) Len() int { return len(s) }

// Sorted returns the questions in lexical order.
func (s QuestionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for q := range s {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}

type Collector struct {
	Keywords     KeywordSource
	Service      Service
	Logger       *slog.Logger
	TopN         int
	MaxQuestions int
}

// Query combines the central phrase with one keyword.
func Query(central, keyword string) string {
	return fmt.Sprintf("'%s' %s", central, keyword)
}

// Collect extracts the page keywords and gathers the related questions of
// each central+keyword query. A failing query is logged and skipped.
func (c *Collector) Collect(ctx context.Context, central, rawURL string) (QuestionSet, error) {
	central = strings.TrimSpace(central)
	if central == "" {
		return nil, ErrEmptyCentral
	}

	keywords, err := c.Keywords.GetKeywords(ctx, rawURL, c.TopN)
	if err != nil {
		return nil, err
	}

	set := QuestionSet{}
	for _, kw := range keywords {
		if err := ctx.Err(); err != nil {
			return set, err
		}
		query := Query(central, kw)
		found, err := c.Service.Related(ctx, query, c.MaxQuestions)
		if err != nil {
			c.Logger.Error("Related-question query failed", "query", query, "error", err)
			continue
		}
		c.Logger.Debug("Related questions found", "query", query, "count", len(found))
		set.Add(found...)
	}
	c.Logger.Info("Collected related questions", "url", rawURL, "keywords", len(keywords), "questions", set.Len())
	return set, nil
}
