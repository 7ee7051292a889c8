// Package auth abstracts where the current user's bearer token comes from.
// Handlers depend on the TokenProvider capability instead of reaching into
// framework context, which keeps the booking flow testable without a real
// identity provider.
package auth

import "strings"

// TokenProvider yields the caller's session token on demand.
type TokenProvider interface {
	// Token returns the current bearer token and whether one exists.
	Token() (string, bool)
	// SignedIn reports whether the caller has a session.
	SignedIn() bool
}

// HeaderProvider is a request-scoped TokenProvider backed by the raw
// Authorization header value, the form the identity provider delivers the
// session in.
type HeaderProvider struct {
	Authorization string
}

// Token strips the Bearer prefix and returns the raw token.  A missing or
// malformed header yields ("", false).
func (p HeaderProvider) Token() (string, bool) {
	if !strings.HasPrefix(p.Authorization, "Bearer ") {
		return "", false
	}
	tok := strings.TrimPrefix(p.Authorization, "Bearer ")
	if tok == "" {
		return "", false
	}
	return tok, true
}

func (p HeaderProvider) SignedIn() bool {
	_, ok := p.Token()
	return ok
}
