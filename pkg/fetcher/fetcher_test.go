package fetcher

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var longParagraph = strings.Repeat("Gardening tips for growing tomatoes in small urban balconies. ", 5)

func testConfig() models.FetchConfig {
	cfg := models.DefaultConfig().Fetch
	cfg.Timeout = 2 * time.Second
	return cfg
}

func newTestFetcher(cfg models.FetchConfig, dumpPath string) *Fetcher {
	return NewFetcher(slog.New(slog.DiscardHandler), cfg, dumpPath)
}

func TestFetch_Success(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><h1>Balcony Gardens</h1><p>" + longParagraph + "</p></body></html>"))
	}))
	defer server.Close()

	f := newTestFetcher(testConfig(), "")
	page, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Equal(t, models.DesktopUserAgent, gotUA)
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", page.ContentType)
	assert.True(t, strings.HasPrefix(page.Text, "Balcony Gardens Gardening tips"))
	assert.NotContains(t, page.Text, "<p>")
}

func TestFetch_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	f := newTestFetcher(testConfig(), "")
	page, err := f.Fetch(context.Background(), server.URL)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetch_InsufficientContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>too short</p>"))
	}))
	defer server.Close()

	f := newTestFetcher(testConfig(), "")
	page, err := f.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrInsufficientContent)
	require.NotNil(t, page)
	assert.Equal(t, "too short", page.Text)
}

func TestFetch_ContentLengthThreshold(t *testing.T) {
	tests := []struct {
		length       int
		insufficient bool
	}{
		{99, true},
		{100, false},
		{101, false},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.length), func(t *testing.T) {
			body := "<html><body><p>" + strings.Repeat("é", tt.length) + "</p></body></html>"
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Write([]byte(body))
			}))
			defer server.Close()

			page, err := newTestFetcher(testConfig(), "").Fetch(context.Background(), server.URL)
			require.NotNil(t, page)
			assert.Equal(t, tt.length, utf8.RuneCountInString(page.Text))
			if tt.insufficient {
				assert.ErrorIs(t, err, ErrInsufficientContent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewFetcher_Defaults(t *testing.T) {
	f := newTestFetcher(models.FetchConfig{}, "")
	assert.Equal(t, DefaultTimeout, f.client.Timeout)
	assert.Equal(t, DefaultMinContentLength, f.cfg.MinContentLength)
	assert.Equal(t, models.DesktopUserAgent, f.cfg.UserAgent)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>too short</p>"))
	}))
	defer server.Close()

	_, err := f.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrInsufficientContent)
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(longParagraph))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Timeout = 50 * time.Millisecond
	f := newTestFetcher(cfg, "")
	_, err := f.Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	f := newTestFetcher(testConfig(), "")
	_, err := f.Fetch(context.Background(), addr)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetch_DecodesCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.Write([]byte("<p>caf\xe9 " + longParagraph + "</p>"))
	}))
	defer server.Close()

	f := newTestFetcher(testConfig(), "")
	page, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page.Text, "café "))
}

func TestFetch_WritesDump(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>" + r.URL.Path + " " + longParagraph + "</p>"))
	}))
	defer server.Close()

	dump := filepath.Join(t.TempDir(), "fetched_content.txt")
	f := newTestFetcher(testConfig(), dump)

	_, err := f.Fetch(context.Background(), server.URL+"/first")
	require.NoError(t, err)
	_, err = f.Fetch(context.Background(), server.URL+"/second")
	require.NoError(t, err)

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "/second "), "dump should hold only the last page")
}

func TestFetch_RespectsRobots(t *testing.T) {
	var pageHits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.Write([]byte("User-agent: *\nDisallow: /private\n"))
			return
		}
		pageHits++
		w.Write([]byte("<p>" + longParagraph + "</p>"))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.RespectRobots = true
	f := newTestFetcher(cfg, "")

	_, err := f.Fetch(context.Background(), server.URL+"/private/page")
	assert.ErrorIs(t, err, ErrDisallowed)
	assert.Equal(t, 0, pageHits)

	_, err = f.Fetch(context.Background(), server.URL+"/public")
	assert.NoError(t, err)
	assert.Equal(t, 1, pageHits)
}
