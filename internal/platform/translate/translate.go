// Package translate defines the text-translation provider boundary and an
// HTTP client implementation for it.
package translate

import (
	"context"
	"errors"
)

var (
	// ErrUnsupportedLanguagePair indicates the provider cannot translate
	// between the requested source and target languages.
	ErrUnsupportedLanguagePair = errors.New("unsupported language pair")

	// ErrInvalidLanguageCode indicates the provider rejected a language code
	// as malformed or unknown.
	ErrInvalidLanguageCode = errors.New("invalid language code")
)

// Translator converts text between languages. Implementations are stateless;
// any failure is terminal for the call (no retries beyond what the client
// does internally).
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
