package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
	"github.com/poultrymitra/mitra_backend/internal/utils/retry"
)

// Translator resolves keys through the dictionary, then the cache, then the remote API.
type Translator struct {
	dict        Dictionary
	cache       Cache
	remote      Remote
	retryPolicy retry.Policy
	languages   map[string]bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithCache sets the cache for remote results.
func WithCache(c Cache) Option {
	return func(t *Translator) {
		t.cache = c
	}
}

// WithRemote enables remote translation for keys missing from the dictionary.
func WithRemote(r Remote) Option {
	return func(t *Translator) {
		t.remote = r
	}
}

// WithRetryPolicy sets the retry policy for remote calls.
func WithRetryPolicy(p retry.Policy) Option {
	return func(t *Translator) {
		t.retryPolicy = p
	}
}

// WithLanguages replaces the supported language codes. English is always supported.
func WithLanguages(langs ...string) Option {
	return func(t *Translator) {
		t.languages = map[string]bool{LangEnglish: true}
		for _, l := range langs {
			t.languages[strings.ToLower(l)] = true
		}
	}
}

// NewTranslator creates a translator over dict.
func NewTranslator(dict Dictionary, options ...Option) *Translator {
	t := &Translator{
		dict:        dict,
		retryPolicy: retry.DefaultPolicy(),
		languages:   map[string]bool{LangEnglish: true, LangHindi: true},
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Translate returns the text for key in lang. Remote failures fall back to
// English; an unknown key with nothing to translate it returns the key.
func (t *Translator) Translate(ctx context.Context, key string, lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if key == "" {
		return "", fmt.Errorf("%w: key is required", apperrors.ErrValidation)
	}
	if !t.languages[lang] {
		return "", fmt.Errorf("%w: unsupported language %q", apperrors.ErrValidation, lang)
	}

	english := t.dict.English(key)
	if lang == LangEnglish {
		return english, nil
	}
	if text, ok := t.dict.Lookup(key, lang); ok {
		return text, nil
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	cacheKey := lang + ":" + key
	if t.cache != nil {
		text, ok, err := t.cache.Get(ctx, cacheKey)
		if err != nil {
			logger.Warn("Translation cache read failed", slog.String("key", cacheKey), slog.String("error", err.Error()))
		} else if ok {
			return text, nil
		}
	}

	if t.remote == nil {
		return english, nil
	}

	text, err := retry.DoValue(ctx, t.retryPolicy, func(ctx context.Context) (string, error) {
		return t.remote.Translate(ctx, english, lang)
	})
	if err != nil {
		logger.Warn("Remote translation failed, using English",
			slog.String("key", key),
			slog.String("lang", lang),
			slog.String("error", err.Error()))
		return english, nil
	}

	if t.cache != nil {
		if err := t.cache.Set(ctx, cacheKey, text); err != nil {
			logger.Warn("Translation cache write failed", slog.String("key", cacheKey), slog.String("error", err.Error()))
		}
	}
	return text, nil
}

// Clear empties the cache.
func (t *Translator) Clear(ctx context.Context) error {
	if t.cache == nil {
		return nil
	}
	return t.cache.Clear(ctx)
}

// Close releases the cache.
func (t *Translator) Close() error {
	if t.cache == nil {
		return nil
	}
	return t.cache.Close()
}
