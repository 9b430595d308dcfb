// Package session adapts the external identity provider's signals into the
// read-only shape the rest of the client consumes.
package session

import "ai-jobmatch/internal/pkg/jwt"

// Identity is the authenticated user as the identity provider reports it.
type Identity struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// Session mirrors the provider's three signals. IsLoading is true while
// the provider has not yet resolved either way; views must render only a
// loading indicator in that window.
type Session struct {
	IsAuthenticated bool      `json:"is_authenticated"`
	IsLoading       bool      `json:"is_loading"`
	User            *Identity `json:"user,omitempty"`
}

// Resolved reports whether the provider has answered.
func (s Session) Resolved() bool { return !s.IsLoading }

// Anonymous is a resolved, unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// Pending is a session still waiting on the identity provider.
func Pending() Session {
	return Session{IsLoading: true}
}

// Authenticated wraps a resolved identity.
func Authenticated(id Identity) Session {
	return Session{IsAuthenticated: true, User: &id}
}

// FromClaims adapts validated provider token claims into a resolved,
// authenticated session.
func FromClaims(c jwt.Claims) Session {
	return Authenticated(Identity{
		SubjectID: c.Subject,
		Email:     c.Email,
		Name:      c.Name,
	})
}
