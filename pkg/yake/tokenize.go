package yake

import (
	"strings"
	"sync"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// sentenceEnders close a sentence when followed by whitespace or end of text.
const sentenceEnders = ".!?。！？"

var jaTokenizer = sync.OnceValues(func() (*tokenizer.Tokenizer, error) {
	return tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
})

// splitSentences breaks text into sentences. A line break followed by an
// upper-case letter also starts a new sentence; other line breaks are spaces.
func splitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder
	runes := []rune(text)

	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			sentences = append(sentences, s)
		}
		cur.Reset()
	}

	for i, r := range runes {
		if r == '\n' {
			if next := nextNonSpace(runes, i+1); next != 0 && unicode.IsUpper(next) {
				flush()
			} else {
				cur.WriteRune(' ')
			}
			continue
		}
		cur.WriteRune(r)
		if strings.ContainsRune(sentenceEnders, r) {
			if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) || isCJKEnder(r) {
				flush()
			}
		}
	}
	flush()
	return sentences
}

func nextNonSpace(runes []rune, from int) rune {
	for _, r := range runes[from:] {
		if r != ' ' && r != '\t' {
			return r
		}
	}
	return 0
}

func isCJKEnder(r rune) bool {
	return r == '。' || r == '！' || r == '？'
}

// tokenizeSentence splits a sentence into words and standalone punctuation
// tokens. Punctuation inside a word (e-mail, 3.5, U.S) stays attached.
func tokenizeSentence(sentence string) []string {
	var tokens []string
	for _, chunk := range strings.Fields(sentence) {
		runes := []rune(chunk)
		start, end := 0, len(runes)
		for start < end && isPunct(runes[start]) {
			tokens = append(tokens, string(runes[start]))
			start++
		}
		var trailing []string
		for end > start && isPunct(runes[end-1]) {
			trailing = append(trailing, string(runes[end-1]))
			end--
		}
		if start < end {
			tokens = append(tokens, string(runes[start:end]))
		}
		for i := len(trailing) - 1; i >= 0; i-- {
			tokens = append(tokens, trailing[i])
		}
	}
	return tokens
}

// tokenizeJapanese segments a sentence with kagome. Whitespace tokens are
// dropped; punctuation comes back as its own token.
func tokenizeJapanese(t *tokenizer.Tokenizer, sentence string) []string {
	var tokens []string
	for _, tok := range t.Wakati(sentence) {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// tokenize turns text into sentences of tokens for the given language.
func tokenize(text, language string) [][]string {
	var ja *tokenizer.Tokenizer
	if language == "ja" {
		if t, err := jaTokenizer(); err == nil {
			ja = t
		}
	}

	var out [][]string
	for _, sentence := range splitSentences(text) {
		var tokens []string
		if ja != nil {
			tokens = tokenizeJapanese(ja, sentence)
		} else {
			tokens = tokenizeSentence(sentence)
		}
		if len(tokens) > 0 {
			out = append(out, tokens)
		}
	}
	return out
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// allPunct reports whether every rune of s is punctuation.
func allPunct(s string) bool {
	for _, r := range s {
		if !isPunct(r) {
			return false
		}
	}
	return s != ""
}
