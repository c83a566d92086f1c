package parser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/url-keywords/models"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// hiddenSelector matches elements whose text never reaches the reader.
const hiddenSelector = "script,style,noscript,template,iframe,svg"

type Parser struct{}

// Text reduces an HTML document to whitespace-collapsed text using mode.
// Article mode falls back to visible text when readability finds nothing.
func (p *Parser) Text(rawURL, rawHTML string, mode models.TextMode) (string, error) {
	if mode == models.TextModeArticle {
		text, err := p.ArticleText(rawURL, rawHTML)
		if err == nil && text != "" {
			return text, nil
		}
	}
	return p.VisibleText(rawHTML)
}

// VisibleText strips all markup and returns the document's visible text,
// with text nodes separated by single spaces.
func (p *Parser) VisibleText(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(hiddenSelector).Remove()

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := normalizeText(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return strings.Join(parts, " "), nil
}

// ArticleText uses go-readability to isolate the main content and returns its
// text content.
func (p *Parser) ArticleText(rawURL, rawHTML string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		return "", fmt.Errorf("readability failed: %w", err)
	}
	return normalizeText(article.TextContent), nil
}

// normalizeText collapses every run of whitespace, newlines included, into a
// single space.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
