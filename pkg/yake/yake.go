// Package yake implements an unsupervised single-document keyword scorer in
// the style of YAKE. Only single-word candidates are produced.
//
// Each term is scored from five statistical features (casing, position,
// frequency, relatedness to context, spread across sentences). Lower scores
// are more relevant.
package yake

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultDedupLimit = 0.9
	DefaultWindowSize = 1
	DefaultTop        = 4
)

// Token tags.
const (
	tagDigit   = 'd'
	tagUnusual = 'u'
	tagAcronym = 'a'
	tagProper  = 'n'
	tagPlain   = 'p'
)

// Config controls an Extractor.
type Config struct {
	Language   string
	Top        int
	DedupLimit float64 // candidates more similar than this to a kept one are dropped; >= 1 disables
	WindowSize int     // co-occurrence window, in words
}

// Keyword is a scored candidate.
type Keyword struct {
	Text  string
	Score float64
}

type Extractor struct {
	cfg       Config
	stopwords map[string]struct{}
	minLength int
}

// New returns an extractor. Zero fields in cfg take the package defaults.
func New(cfg Config) *Extractor {
	if cfg.Top <= 0 {
		cfg.Top = DefaultTop
	}
	if cfg.DedupLimit <= 0 {
		cfg.DedupLimit = DefaultDedupLimit
	}
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	minLength := 3
	switch cfg.Language {
	case "ja", "zh", "ko":
		minLength = 2
	}
	return &Extractor{
		cfg:       cfg,
		stopwords: stopwordsFor(cfg.Language),
		minLength: minLength,
	}
}

type term struct {
	unique    string
	tf        float64
	tfAcronym float64
	tfProper  float64
	sentences []int // distinct sentence ids, ascending
	stopword  bool
	left      map[*term]float64
	right     map[*term]float64
	h         float64
}

type candidate struct {
	key     string
	surface string
	term    *term
	tf      float64
	valid   bool
	score   float64
}

type blockEntry struct {
	tag  byte
	term *term
}

// Extract scores text and returns at most cfg.Top keywords, best first.
// Ties keep first-occurrence order.
func (e *Extractor) Extract(text string) []Keyword {
	sentences := tokenize(text, e.cfg.Language)
	if len(sentences) == 0 {
		return nil
	}

	terms := make(map[string]*term)
	candidates := make(map[string]*candidate)
	var ordered []*candidate

	for sentID, sentence := range sentences {
		var block []blockEntry
		for pos, word := range sentence {
			if allPunct(word) {
				block = block[:0]
				continue
			}
			tag := tagOf(word, pos)
			t := e.termFor(terms, word)
			t.addOccurrence(tag, sentID)

			if tag != tagUnusual && tag != tagDigit {
				from := max(0, len(block)-e.cfg.WindowSize)
				for _, prev := range block[from:] {
					if prev.tag != tagUnusual && prev.tag != tagDigit {
						addCooccurrence(prev.term, t)
					}
				}
			}
			block = append(block, blockEntry{tag: tag, term: t})

			key := strings.ToLower(word)
			c, ok := candidates[key]
			if !ok {
				c = &candidate{key: key, surface: word, term: t}
				candidates[key] = c
				ordered = append(ordered, c)
			}
			c.tf++
			if tag != tagUnusual && tag != tagDigit {
				c.valid = true
			}
		}
	}

	e.scoreTerms(terms, len(sentences))

	var scored []*candidate
	for _, c := range ordered {
		if !c.valid || c.term.stopword {
			continue
		}
		c.score = c.term.h / ((c.term.h + 1) * c.tf)
		scored = append(scored, c)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score < scored[j].score
	})

	return e.dedup(scored)
}

func (e *Extractor) dedup(scored []*candidate) []Keyword {
	result := make([]Keyword, 0, e.cfg.Top)
	var kept []string
	for _, c := range scored {
		if len(result) == e.cfg.Top {
			break
		}
		if e.cfg.DedupLimit < 1 {
			similar := false
			for _, k := range kept {
				if levenshteinRatio(c.key, k) > e.cfg.DedupLimit {
					similar = true
					break
				}
			}
			if similar {
				continue
			}
		}
		kept = append(kept, c.key)
		result = append(result, Keyword{Text: c.surface, Score: c.score})
	}
	return result
}

// termFor returns the term for word, creating it on first sight. Plural "s"
// is folded for words longer than three characters.
func (e *Extractor) termFor(terms map[string]*term, word string) *term {
	unique := strings.ToLower(word)
	_, plainStop := e.stopwords[unique]
	if strings.HasSuffix(unique, "s") && utf8.RuneCountInString(unique) > 3 {
		unique = strings.TrimSuffix(unique, "s")
	}
	if t, ok := terms[unique]; ok {
		return t
	}

	_, foldedStop := e.stopwords[unique]
	stripped := strings.Map(func(r rune) rune {
		if isPunct(r) {
			return -1
		}
		return r
	}, unique)

	t := &term{
		unique:   unique,
		stopword: plainStop || foldedStop || utf8.RuneCountInString(stripped) < e.minLength,
		left:     make(map[*term]float64),
		right:    make(map[*term]float64),
	}
	terms[unique] = t
	return t
}

func (t *term) addOccurrence(tag byte, sentID int) {
	switch tag {
	case tagAcronym:
		t.tfAcronym++
	case tagProper:
		t.tfProper++
	}
	t.tf++
	if n := len(t.sentences); n == 0 || t.sentences[n-1] != sentID {
		t.sentences = append(t.sentences, sentID)
	}
}

func addCooccurrence(left, right *term) {
	left.right[right]++
	right.left[left]++
}

// scoreTerms computes every term's feature score h.
func (e *Extractor) scoreTerms(terms map[string]*term, numSentences int) {
	var maxTF float64
	var validTFs []float64
	for _, t := range terms {
		maxTF = math.Max(maxTF, t.tf)
		if !t.stopword {
			validTFs = append(validTFs, t.tf)
		}
	}
	avgTF, stdTF := meanStd(validTFs)
	freqNorm := avgTF + stdTF
	if freqNorm == 0 {
		freqNorm = 1
	}

	for _, t := range terms {
		relLeft := edgeRatio(t.left)
		relRight := edgeRatio(t.right)
		wRel := (0.5 + relLeft*(t.tf/maxTF)) + (0.5 + relRight*(t.tf/maxTF))
		wFreq := t.tf / freqNorm
		wSpread := float64(len(t.sentences)) / float64(numSentences)
		wCase := math.Max(t.tfAcronym, t.tfProper) / (1 + math.Log(t.tf))
		wPos := math.Log(math.Log(3 + median(t.sentences)))

		t.h = (wPos * wRel) / (wCase + wFreq/wRel + wSpread/wRel)
	}
}

// edgeRatio is the number of distinct neighbours over the total
// co-occurrence weight, or 0 with no neighbours.
func edgeRatio(edges map[*term]float64) float64 {
	var sum float64
	for _, w := range edges {
		sum += w
	}
	if sum == 0 {
		return 0
	}
	return float64(len(edges)) / sum
}

// tagOf classifies a token: digit, unusual (mixed or no alphanumerics),
// acronym, proper noun (capitalised, not sentence-initial) or plain.
func tagOf(word string, pos int) byte {
	if _, err := strconv.ParseFloat(strings.ReplaceAll(word, ",", ""), 64); err == nil {
		return tagDigit
	}

	var digits, alphas, puncts, uppers, total int
	for _, r := range word {
		total++
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			alphas++
			if unicode.IsUpper(r) {
				uppers++
			}
		case isPunct(r):
			puncts++
		}
	}
	if (digits > 0 && alphas > 0) || (digits == 0 && alphas == 0) || puncts > 1 {
		return tagUnusual
	}
	if uppers == total {
		return tagAcronym
	}
	first, _ := utf8.DecodeRuneInString(word)
	if pos != 0 && unicode.IsUpper(first) {
		return tagProper
	}
	return tagPlain
}

func meanStd(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		std += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(std / float64(len(xs)))
}

// median of an ascending slice.
func median(sorted []int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// levenshteinRatio is 1 - distance/maxlen over runes.
func levenshteinRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
