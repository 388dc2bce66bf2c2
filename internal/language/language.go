// Package language provides source-language detection and translation.
package language

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/ai"
	"github.com/abadojack/whatlanggo"
	"go.uber.org/zap"
)

// Undetermined is returned when detection has too little signal.
const Undetermined = "und"

// minDetectLength is the shortest input, in runes, the trigram detector
// gets to see.
const minDetectLength = 10

// iso3to1 maps the detector's ISO 639-3 codes to 639-1 for the languages
// the frontend offers. Unmapped codes pass through unchanged.
var iso3to1 = map[string]string{
	"eng": "en",
	"spa": "es",
	"fra": "fr",
	"deu": "de",
	"ita": "it",
	"por": "pt",
	"rus": "ru",
	"zho": "zh",
	"jpn": "ja",
	"cmn": "zh",
}

// languageNames spells out 639-1 codes for the translation prompt.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
}

// Service detects the language of policy text and translates pipeline
// outputs through the completion gateway.
type Service struct {
	gateway ai.Gateway
	logger  *zap.Logger
}

// NewService creates a language Service.
func NewService(gateway ai.Gateway, logger *zap.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger.Named("language"),
	}
}

// Detect returns the ISO 639-1 code of the text's language, or "und"
// when the input is too short or the detector has no opinion. Detection
// is purely statistical (trigram counts); no model call is made.
func (s *Service) Detect(text string) string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minDetectLength {
		return Undetermined
	}

	info := whatlanggo.Detect(text)
	code := whatlanggo.LangToString(info.Lang)
	if code == "" {
		return Undetermined
	}

	if mapped, ok := iso3to1[code]; ok {
		return mapped
	}
	return code
}

// Translate converts text into the target language via one completion
// call with a translator persona. Identical inputs re-invoke the model
// each time; nothing is cached.
func (s *Service) Translate(ctx context.Context, text, targetLang string) (string, error) {
	name, ok := languageNames[targetLang]
	if !ok {
		name = targetLang
	}

	s.logger.Debug("translating",
		zap.String("target", targetLang),
		zap.Int("text_len", len(text)),
	)

	return s.gateway.Complete(ctx, ai.TranslationPrompt(text, name))
}

// TranslateAll translates every item sequentially, preserving order.
// A failure on any item fails the whole batch.
func (s *Service) TranslateAll(ctx context.Context, items []string, targetLang string) ([]string, error) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		translated, err := s.Translate(ctx, item, targetLang)
		if err != nil {
			return nil, err
		}
		out = append(out, translated)
	}
	return out, nil
}
