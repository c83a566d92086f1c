package models

import (
	"fmt"
	"strings"
)

// TextMode selects how much of a page is kept as text.
type TextMode string

const (
	// TextModeVisible keeps every visible text node (default).
	TextModeVisible TextMode = "visible"
	// TextModeArticle keeps only the main article body found by readability.
	TextModeArticle TextMode = "article"
)

// ParseTextMode resolves a mode name. An empty name means visible.
func ParseTextMode(s string) (TextMode, error) {
	switch TextMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", TextModeVisible:
		return TextModeVisible, nil
	case TextModeArticle:
		return TextModeArticle, nil
	}
	return "", fmt.Errorf("unknown text mode %q (want visible or article)", s)
}
