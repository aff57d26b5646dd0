package translate

import (
	"context"
	"fmt"
)

// Loopback is a development stand-in for a real provider. It marks the text
// with the target language instead of translating it, so the cache path can
// be exercised without network access.
type Loopback struct{}

// Translate implements Translator.
func (Loopback) Translate(_ context.Context, text, _, targetLang string) (string, error) {
	if targetLang == "" {
		return "", ErrInvalidLanguageCode
	}
	return fmt.Sprintf("[%s] %s", targetLang, text), nil
}
