package common

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// ErrInvalidURL is matched by every *InvalidURLError.
var ErrInvalidURL = errors.New("invalid URL")

// InvalidURLError carries the string that failed validation.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("Invalid URL: %s", e.URL)
}

func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// urlPattern accepts scheme://[user:pass@]host[:port][/path] for http(s) and
// ftp(s), where host is a dotted DNS name, localhost, or an IPv4 address.
var urlPattern = regexp.MustCompile(`(?i)^(?:http|ftp)s?://` +
	`(?:\S+(?::\S*)?@)?` +
	`(?:(?:[A-Z0-9-]+\.)+[A-Z]{2,6}|localhost|\d{1,3}(?:\.\d{1,3}){3})` +
	`(?::\d+)?` +
	`(?:/\S*)?$`)

// ValidateURL returns rawURL unchanged when it is structurally valid.
// No DNS lookup or network call is made.
func ValidateURL(rawURL string) (string, error) {
	if !urlPattern.MatchString(rawURL) {
		return "", &InvalidURLError{URL: rawURL}
	}
	return rawURL, nil
}

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation and markdown artifacts.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// "https://example.com," -> "https://example.com"
	trailingChars := []string{",", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	// "(https://example.com" -> "https://example.com"
	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// FilterValidURLs keeps the valid entries in input order. An entry that is
// already valid once trimmed is kept as is; SanitizeURL is only tried on
// entries that fail. Blank entries are skipped silently; invalid ones are
// logged and dropped.
func FilterValidURLs(logger *slog.Logger, urls []string) []string {
	valid := make([]string, 0, len(urls))
	for _, rawURL := range urls {
		trimmed := strings.TrimSpace(rawURL)
		if trimmed == "" {
			continue
		}
		u, err := ValidateURL(trimmed)
		if err != nil {
			cleaned := SanitizeURL(trimmed)
			if cleaned == trimmed || cleaned == "" {
				logger.Warn("Skipping malformed URL", "url", rawURL, "error", err)
				continue
			}
			if u, err = ValidateURL(cleaned); err != nil {
				logger.Warn("Skipping malformed URL", "url", rawURL, "error", err)
				continue
			}
			logger.Debug("Sanitized URL", "url", rawURL, "sanitized", u)
		}
		valid = append(valid, u)
	}
	return valid
}

// ReadURLFile reads a newline-delimited URL list. Blank lines and lines
// starting with '#' are ignored.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read URLs from %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URLs from %s: %w", path, err)
	}
	return urls, nil
}
