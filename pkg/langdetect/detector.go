// Package langdetect identifies the dominant language of a text and maps it
// onto the set of languages the keyword scorer supports.
package langdetect

import (
	"log/slog"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// DefaultLanguage is used when detection fails or yields an unsupported code.
const DefaultLanguage = "en"

// SupportedLanguages lists the ISO 639-1 codes the keyword scorer accepts.
var SupportedLanguages = []string{
	"ar", "bg", "cs", "da", "de", "el", "en", "es", "fa", "fi", "fr", "hr",
	"hu", "it", "ja", "ko", "nl", "no", "pl", "pt", "ro", "ru", "sk", "sl",
	"sv", "tr", "zh",
}

var supported = func() map[string]struct{} {
	m := make(map[string]struct{}, len(SupportedLanguages))
	for _, code := range SupportedLanguages {
		m[code] = struct{}{}
	}
	return m
}()

// IsSupported reports whether code is one of SupportedLanguages.
func IsSupported(code string) bool {
	_, ok := supported[code]
	return ok
}

// Detector wraps a lingua model.
type Detector struct {
	lingua lingua.LanguageDetector
	logger *slog.Logger
}

// New builds a detector over every language lingua knows. Models are loaded
// lazily on first use.
func New(logger *slog.Logger) *Detector {
	return &Detector{
		lingua: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithLowAccuracyMode().
			Build(),
		logger: logger,
	}
}

// Detect returns the lower-case ISO 639-1 code of text's language.
// ok is false when the model cannot decide.
func (d *Detector) Detect(text string) (code string, ok bool) {
	language, exists := d.lingua.DetectLanguageOf(text)
	if !exists {
		return "", false
	}
	code = strings.ToLower(language.IsoCode639_1().String())
	switch code {
	case "nb", "nn":
		code = "no"
	}
	return code, true
}

// Resolve detects text's language and falls back to DefaultLanguage when
// detection fails or the language is unsupported.
func (d *Detector) Resolve(text string) string {
	code, ok := d.Detect(text)
	if !ok {
		d.logger.Warn("Language detection failed, defaulting to English")
		return DefaultLanguage
	}
	d.logger.Debug("Detected language", "language", code)
	if !IsSupported(code) {
		d.logger.Warn("Unsupported language detected, defaulting to English", "language", code)
		return DefaultLanguage
	}
	return code
}
