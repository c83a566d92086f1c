package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/dtnitsch/url-keywords/pkg/parser"
	"github.com/dtnitsch/url-keywords/pkg/storage"
	"github.com/temoto/robotstxt"
	"golang.org/x/net/html/charset"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

const (
	DefaultTimeout          = 10 * time.Second
	DefaultMinContentLength = 100
)

var (
	// ErrFetchFailed wraps network errors and non-2xx responses.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrInsufficientContent is returned when the page text is too short.
	ErrInsufficientContent = errors.New("insufficient content")
	// ErrDisallowed is returned when robots.txt forbids the URL.
	ErrDisallowed = errors.New("disallowed by robots.txt")
)

type Fetcher struct {
	client   *http.Client
	parser   *parser.Parser
	storage  *storage.Storage
	logger   *slog.Logger
	cfg      models.FetchConfig
	dumpPath string

	robotsMu sync.Mutex
	robots   map[string]*robotstxt.RobotsData
}

// NewFetcher builds a fetcher from cfg. Unset limits and user agent take the
// package defaults. When dumpPath is set, the text of the most recently
// fetched page is written there, replacing the previous dump.
func NewFetcher(logger *slog.Logger, cfg models.FetchConfig, dumpPath string) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = models.DesktopUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MinContentLength <= 0 {
		cfg.MinContentLength = DefaultMinContentLength
	}
	return &Fetcher{
		client:   &http.Client{Timeout: cfg.Timeout},
		parser:   &parser.Parser{},
		storage:  &storage.Storage{},
		logger:   logger,
		cfg:      cfg,
		dumpPath: dumpPath,
		robots:   make(map[string]*robotstxt.RobotsData),
	}
}

// Fetch performs a single GET for rawURL and reduces the body to text.
// Every failure is returned as an error wrapping one of the package
// sentinels; callers decide whether it is fatal.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*models.Page, error) {
	if f.cfg.RespectRobots && !f.allowedByRobots(ctx, rawURL) {
		f.logger.Warn("URL disallowed by robots.txt", "url", rawURL)
		return nil, fmt.Errorf("%w: %s", ErrDisallowed, rawURL)
	}

	page, body, err := f.GetHtmlBytes(ctx, rawURL)
	if err != nil {
		f.logger.Error("Error fetching URL", "url", rawURL, "error", err)
		return nil, err
	}

	text, err := f.parser.Text(rawURL, string(body), f.cfg.Mode)
	if err != nil {
		f.logger.Error("Error extracting text", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	page.Text = text

	if f.dumpPath != "" {
		if err := f.storage.SaveFile(f.dumpPath, []byte(text)); err != nil {
			f.logger.Warn("Failed to write fetched content dump", "path", f.dumpPath, "error", err)
		}
	}

	length := utf8.RuneCountInString(text)
	f.logger.Debug("Fetched content", "url", rawURL, "content_type", page.ContentType, "length", length)
	if length < f.cfg.MinContentLength {
		return page, fmt.Errorf("%w: %d characters", ErrInsufficientContent, length)
	}
	return page, nil
}

// GetHtmlBytes issues the GET request and returns the body decoded to UTF-8.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, rawURL string) (*models.Page, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to build request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to make HTTP request: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("%w: status code %d", ErrFetchFailed, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), contentType)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: unsupported charset: %w", ErrFetchFailed, err)
	}
	bodyBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read response body: %w", ErrFetchFailed, err)
	}

	page := &models.Page{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
	}
	return page, bodyBytes, nil
}

// allowedByRobots reports whether the host's robots.txt lets our user agent
// fetch rawURL. Hosts whose robots.txt cannot be read are allowed.
func (f *Fetcher) allowedByRobots(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return true
	}
	origin := u.Scheme + "://" + u.Host

	f.robotsMu.Lock()
	data, seen := f.robots[origin]
	f.robotsMu.Unlock()

	if !seen {
		data = f.loadRobots(ctx, origin)
		f.robotsMu.Lock()
		f.robots[origin] = data
		f.robotsMu.Unlock()
	}
	if data == nil {
		return true
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, f.cfg.UserAgent)
}

func (f *Fetcher) loadRobots(ctx context.Context, origin string) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("robots.txt unavailable", "origin", origin, "error", err)
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		f.logger.Debug("robots.txt unreadable", "origin", origin, "error", err)
		return nil
	}
	return data
}
