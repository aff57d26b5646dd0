// Package auth gates mutating routes behind an opaque access key. The raw key
// is never kept in memory past startup; only its SHA-256 digest is retained
// and compared in constant time.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderAPIKey is the request header carrying the access key.
const HeaderAPIKey = "x-api-key"

// Keychain holds the digests of the access keys accepted by the API.
type Keychain struct {
	hashes [][]byte
}

// NewKeychain digests the given raw keys. Empty keys are ignored.
func NewKeychain(keys ...string) *Keychain {
	kc := &Keychain{}
	for _, k := range keys {
		if k == "" {
			continue
		}
		sum := sha256.Sum256([]byte(k))
		kc.hashes = append(kc.hashes, sum[:])
	}
	return kc
}

// Empty reports whether the keychain holds no keys.
func (kc *Keychain) Empty() bool {
	return len(kc.hashes) == 0
}

// Accepts reports whether raw matches any configured key.
func (kc *Keychain) Accepts(raw string) bool {
	sum := sha256.Sum256([]byte(raw))
	ok := false
	for _, h := range kc.hashes {
		if subtle.ConstantTimeCompare(sum[:], h) == 1 {
			ok = true
		}
	}
	return ok
}

// RequireAccessKey rejects requests that do not present a configured access
// key in the x-api-key header. An empty keychain rejects everything, so a
// misconfigured server fails closed.
func RequireAccessKey(kc *Keychain) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderAPIKey)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing api key")
			}
			if kc.Empty() || !kc.Accepts(raw) {
				return echo.NewHTTPError(http.StatusForbidden, "invalid api key")
			}
			return next(c)
		}
	}
}
