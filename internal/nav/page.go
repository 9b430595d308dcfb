// Package nav owns the client-side navigation model: page tags, the
// URL mapping for each page, the per-session history stack, and the
// auth-gating route resolver.
//
// Page graph (every page can reach every other through user actions;
// the only forced transition is protected → Landing for resolved,
// unauthenticated sessions):
//
//	Landing ──► ProfileSetup ──► JobFeed ◄──► JobDetail
//	                                 │
//	                                 ├──► Chat
//	                                 └──► Account
package nav

import (
	"net/url"
	"strconv"
)

// Page identifies a screen by its URL path. Unknown paths are carried
// verbatim and only fall back to Landing at render time.
type Page string

const (
	PageLanding      Page = "/"
	PageProfileSetup Page = "/profile-setup"
	PageJobFeed      Page = "/jobs"
	PageJobDetail    Page = "/job-detail"
	PageChat         Page = "/chat"
	PageAccount      Page = "/account"
)

// jobIDParam is the query parameter that mirrors the selected job.
const jobIDParam = "jobId"

var knownPages = map[Page]bool{
	PageLanding:      true,
	PageProfileSetup: true,
	PageJobFeed:      true,
	PageJobDetail:    true,
	PageChat:         true,
	PageAccount:      true,
}

var protectedPages = map[Page]bool{
	PageProfileSetup: true,
	PageJobFeed:      true,
	PageJobDetail:    true,
	PageChat:         true,
	PageAccount:      true,
}

// ParsePath converts a document path into a Page. An empty path is the
// Landing page; anything else is kept as-is, known or not.
func ParsePath(path string) Page {
	if path == "" {
		return PageLanding
	}
	return Page(path)
}

// Known reports whether p is one of the six real pages.
func (p Page) Known() bool { return knownPages[p] }

// Protected reports whether p requires an authenticated session.
func (p Page) Protected() bool { return protectedPages[p] }

// Rendered maps unknown pages to Landing. Navigation never validates its
// target; the fallback happens here, at render time.
func (p Page) Rendered() Page {
	if !p.Known() {
		return PageLanding
	}
	return p
}

// URLFor builds the history URL for a navigation. A non-empty jobID is
// mirrored into the query string.
func URLFor(p Page, jobID string) string {
	if jobID == "" {
		return string(p)
	}
	return string(p) + "?" + jobIDParam + "=" + url.QueryEscape(jobID)
}

// JobIDFromQuery extracts the mirrored job id from a raw query string.
// The id must be integer-like; a missing or malformed parameter returns
// ok=false, which callers treat as "leave the selection unchanged".
func JobIDFromQuery(rawQuery string) (string, bool) {
	vals, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", false
	}
	raw := vals.Get(jobIDParam)
	if raw == "" {
		return "", false
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		return "", false
	}
	return raw, true
}
