package models

// Page is the text recovered from a single fetched URL.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Text        string
}
