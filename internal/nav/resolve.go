package nav

import "ai-jobmatch/internal/session"

// ResolveRoute is the single routing guard: given the session signals and
// the requested page, it decides what actually renders. Unknown pages fall
// back to Landing, and protected pages collapse to Landing once the
// session has resolved unauthenticated. While the session is still
// loading the requested page is kept, because the views render a loading
// indicator anyway.
func ResolveRoute(s session.Session, requested Page) Page {
	p := requested.Rendered()
	if p.Protected() && !s.IsLoading && !s.IsAuthenticated {
		return PageLanding
	}
	return p
}
