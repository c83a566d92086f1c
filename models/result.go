package models

// InsufficientContent is the error value recorded for rows that produced no
// usable text, whether the fetch failed or the page was too short.
const InsufficientContent = "Insufficient content"

// ResultRow is one output line of a keyword run. Keywords always has exactly
// the batch's top_n slots; nil marks an absent keyword.
type ResultRow struct {
	URL      string
	Keywords []*string
	Error    *string
}

// NewResultRow builds a row with width keyword slots filled from keywords and
// the rest left absent. Extra keywords beyond width are dropped.
func NewResultRow(url string, width int, keywords []string) ResultRow {
	row := ResultRow{URL: url, Keywords: make([]*string, width)}
	for i := 0; i < width && i < len(keywords); i++ {
		kw := keywords[i]
		row.Keywords[i] = &kw
	}
	return row
}

// NewFailedRow builds a row with every keyword absent and msg as its error.
func NewFailedRow(url string, width int, msg string) ResultRow {
	row := ResultRow{URL: url, Keywords: make([]*string, width)}
	row.Error = &msg
	return row
}

// Failed reports whether the row carries an error.
func (r ResultRow) Failed() bool {
	return r.Error != nil
}

// Present returns the keywords that are not absent, in slot order.
func (r ResultRow) Present() []string {
	out := make([]string, 0, len(r.Keywords))
	for _, kw := range r.Keywords {
		if kw != nil {
			out = append(out, *kw)
		}
	}
	return out
}
