package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/dtnitsch/url-keywords/pkg/fetcher"
	"github.com/dtnitsch/url-keywords/pkg/pacer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, rawURL string) (*models.Page, error) {
	args := m.Called(ctx, rawURL)
	page, _ := args.Get(0).(*models.Page)
	return page, args.Error(1)
}

type stubExtractor struct {
	keywords map[string][]string
	calls    []string
}

func (s *stubExtractor) Extract(text string, topN int) []string {
	s.calls = append(s.calls, text)
	kws := s.keywords[text]
	if len(kws) > topN {
		kws = kws[:topN]
	}
	return kws
}

type countingPacer struct{ waits int }

func (c *countingPacer) Wait(ctx context.Context) error {
	c.waits++
	return ctx.Err()
}

func newProcessor(f PageFetcher, e KeywordExtractor, p pacer.Pacer, topN int) *Processor {
	return &Processor{
		Fetcher:   f,
		Extractor: e,
		Pacer:     p,
		Logger:    slog.New(slog.DiscardHandler),
		TopN:      topN,
		MaxWords:  5,
	}
}

func TestRun_OneRowPerURLInOrder(t *testing.T) {
	f := &mockFetcher{}
	f.On("Fetch", mock.Anything, "https://a.example.com").
		Return(&models.Page{Text: "page a"}, nil)
	f.On("Fetch", mock.Anything, "https://b.example.com").
		Return(nil, fmt.Errorf("%w: status code 500", fetcher.ErrFetchFailed))
	f.On("Fetch", mock.Anything, "https://c.example.com").
		Return(&models.Page{Text: "tiny"}, fmt.Errorf("%w: 4 characters", fetcher.ErrInsufficientContent))

	ex := &stubExtractor{keywords: map[string][]string{"page a": {"alpha", "beta"}}}
	pc := &countingPacer{}
	p := newProcessor(f, ex, pc, 3)

	urls := []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"}
	rows, err := p.Run(context.Background(), urls)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, row := range rows {
		assert.Equal(t, urls[i], row.URL)
		assert.Len(t, row.Keywords, 3)
	}

	assert.False(t, rows[0].Failed())
	assert.Equal(t, []string{"alpha", "beta"}, rows[0].Present())
	assert.Nil(t, rows[0].Keywords[2], "missing keyword slot must be absent")

	for _, row := range rows[1:] {
		require.True(t, row.Failed())
		assert.Equal(t, models.InsufficientContent, *row.Error)
		assert.Empty(t, row.Present())
	}

	assert.Equal(t, 3, pc.waits, "pacer runs after every URL regardless of outcome")
	assert.Equal(t, []string{"page a"}, ex.calls, "extractor never sees failed pages")
	f.AssertExpectations(t)
}

func TestRun_NormalizesKeywords(t *testing.T) {
	f := &mockFetcher{}
	f.On("Fetch", mock.Anything, mock.Anything).Return(&models.Page{Text: "t"}, nil)
	ex := &stubExtractor{keywords: map[string][]string{
		"t": {"red, green", "one two three four five six seven", "   "},
	}}
	p := newProcessor(f, ex, pacer.None{}, 4)
	p.MaxWords = 3

	rows, err := p.Run(context.Background(), []string{"https://example.com"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	kws := rows[0].Keywords
	require.Len(t, kws, 4)
	assert.Equal(t, "red; green", *kws[0])
	assert.Equal(t, "one two three", *kws[1])
	assert.Nil(t, kws[2], "blank keyword becomes absent")
	assert.Nil(t, kws[3])
	for _, kw := range rows[0].Present() {
		assert.NotContains(t, kw, ",")
		assert.LessOrEqual(t, len(strings.Fields(kw)), 3)
	}
}

func TestRun_Empty(t *testing.T) {
	p := newProcessor(&mockFetcher{}, &stubExtractor{}, pacer.None{}, 3)
	rows, err := p.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoURLs)
	assert.Nil(t, rows)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	f := &mockFetcher{}
	f.On("Fetch", mock.Anything, "https://a.example.com").
		Run(func(mock.Arguments) { cancel() }).
		Return(&models.Page{Text: "x"}, nil)

	p := newProcessor(f, &stubExtractor{}, pacer.None{}, 2)
	rows, err := p.Run(ctx, []string{"https://a.example.com", "https://b.example.com"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, rows, 1)
	f.AssertNotCalled(t, "Fetch", mock.Anything, "https://b.example.com")
}

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		in       string
		maxWords int
		want     string
	}{
		{"plain", 5, "plain"},
		{"a,b,c", 5, "a;b;c"},
		{"  spaced   out  ", 5, "spaced out"},
		{"one two three", 2, "one two"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKeyword(tt.in, tt.maxWords))
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "extracted", StateExtracted.String())
	assert.Equal(t, "insufficient_content", StateInsufficientContent.String())
	assert.Equal(t, "fetch_error", StateFetchError.String())
}
