package api

import (
	"crypto/subtle"
	"net/http"
)

// KeyGuard checks the master key carried in the "key" query parameter.
// Handlers call it after their existence check, so 404 always takes precedence over 403.
type KeyGuard struct {
	key []byte
}

// NewKeyGuard returns a guard for the given master key.
func NewKeyGuard(masterKey string) KeyGuard {
	return KeyGuard{key: []byte(masterKey)}
}

// Allowed reports whether r carries the master key. A missing key never matches, and
// a guard built with an empty master key rejects everything.
func (g KeyGuard) Allowed(r *http.Request) bool {
	got := r.URL.Query().Get("key")
	if got == "" || len(g.key) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), g.key) == 1
}
