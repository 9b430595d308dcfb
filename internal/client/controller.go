// Package client holds the per-session state machine: the current page,
// the selected job, the session signals and the once-per-session profile
// resolution that decides where an authenticated user lands.
package client

import (
	"context"
	"log"
	"sync"

	"ai-jobmatch/internal/domain/profile"
	"ai-jobmatch/internal/nav"
	"ai-jobmatch/internal/session"
)

// ProfileSource is the slice of the upstream API the controller needs:
// one profile lookup by the session's email.
type ProfileSource interface {
	ProfileByEmail(ctx context.Context, email string) (profile.Profile, error)
}

// State is a point-in-time copy of everything a view render reads.
type State struct {
	Page           nav.Page
	SelectedJobID  string
	Profile        *profile.Profile
	ProfileChecked bool
	Session        session.Session
}

// Controller drives one session's navigation and profile resolution.
// All mutations go through the mutex; reads take a Snapshot.
type Controller struct {
	mu       sync.Mutex
	state    State
	history  *nav.History
	profiles ProfileSource
	logger   *log.Logger

	checking bool
	owner    string // subject id whose profile state is held
}

// NewController builds a controller whose initial page comes from the
// document location, the same way a fresh page load derives its route.
func NewController(path, rawQuery string, profiles ProfileSource, logger *log.Logger) *Controller {
	page := nav.ParsePath(path)
	jobID, _ := nav.JobIDFromQuery(rawQuery)
	c := &Controller{
		state: State{
			Page:          page,
			SelectedJobID: jobID,
			Session:       session.Pending(),
		},
		history:  nav.NewHistory(nav.Entry{Page: page, JobID: jobID}),
		profiles: profiles,
		logger:   logger,
	}
	return c
}

// Snapshot returns a copy of the current state. The profile pointer is
// shared; callers treat it as read-only.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether the views must render only a loading indicator:
// either the session is unresolved, or it resolved authenticated and the
// profile check has not finished yet.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadingLocked()
}

func (c *Controller) loadingLocked() bool {
	s := c.state.Session
	return s.IsLoading || (s.IsAuthenticated && !c.state.ProfileChecked)
}

// Navigate moves to a page, optionally selecting a job. An empty jobID
// leaves the current selection untouched; history records exactly what
// the URL carries.
func (c *Controller) Navigate(p nav.Page, jobID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.navigateLocked(p, jobID)
}

func (c *Controller) navigateLocked(p nav.Page, jobID string) {
	c.state.Page = p
	if jobID != "" {
		c.state.SelectedJobID = jobID
	}
	c.history.Push(nav.Entry{Page: p, JobID: jobID})
}

// Back steps to the previous history entry. At the oldest entry nothing
// changes and ok is false.
func (c *Controller) Back() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.history.Back()
	if ok {
		c.applyEntryLocked(e)
	}
	return ok
}

// Forward steps to the next history entry, the mirror of Back.
func (c *Controller) Forward() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.history.Forward()
	if ok {
		c.applyEntryLocked(e)
	}
	return ok
}

func (c *Controller) applyEntryLocked(e nav.Entry) {
	c.state.Page = e.Page
	if e.JobID != "" {
		c.state.SelectedJobID = e.JobID
	}
}

// Restore re-derives the page and selection from a document location, the
// way a history popstate does. A URL without a job id leaves the current
// selection in place.
func (c *Controller) Restore(path, rawQuery string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Page = nav.ParsePath(path)
	if jobID, ok := nav.JobIDFromQuery(rawQuery); ok {
		c.state.SelectedJobID = jobID
	}
}

// SetSession records a change in the identity provider's signals. A
// session that resolves unauthenticated on a protected page is bounced to
// Landing, and any cached profile state from a previous login is dropped.
// The return value reports an identity switch: a valid token for a
// different user arrived on the same session, so everything held for the
// previous user was dropped and the profile check will run again.
func (c *Controller) SetSession(s session.Session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	was := c.state.Session
	c.state.Session = s

	if s.IsAuthenticated && s.User != nil {
		switched := c.owner != "" && c.owner != s.User.SubjectID
		c.owner = s.User.SubjectID
		if switched {
			c.state.Profile = nil
			c.state.ProfileChecked = false
		}
		return switched
	}

	if s.Resolved() && !s.IsAuthenticated {
		if was.IsAuthenticated || c.state.Profile != nil || c.state.ProfileChecked {
			c.state.Profile = nil
			c.state.ProfileChecked = false
		}
		if c.state.Page.Protected() {
			c.navigateLocked(nav.PageLanding, "")
		}
	}
	return false
}

// EnsureProfile runs the once-per-session profile check. It is a no-op
// until the session resolves authenticated, and a no-op again once the
// check has completed. Exactly one lookup reaches the API per session no
// matter how many renders call this.
//
// Three outcomes, all of which end the loading gate:
//   - a profile with an id: stored; a user sitting on Landing is moved to
//     the job feed
//   - an empty profile body: the user is routed to profile setup
//   - a lookup failure: logged, then routed to profile setup the same way
func (c *Controller) EnsureProfile(ctx context.Context) {
	c.mu.Lock()
	s := c.state.Session
	if !s.IsAuthenticated || s.IsLoading || c.state.ProfileChecked || c.checking || s.User == nil {
		c.mu.Unlock()
		return
	}
	c.checking = true
	email := s.User.Email
	c.mu.Unlock()

	prof, err := c.profiles.ProfileByEmail(ctx, email)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.checking = false

	// The session may have logged out or switched users while the lookup
	// was in flight; a stale result must not reopen state for it.
	s = c.state.Session
	if !s.IsAuthenticated || s.User == nil || s.User.Email != email {
		return
	}
	c.state.ProfileChecked = true

	if err == nil && prof.ID != "" {
		p := prof
		c.state.Profile = &p
		if c.state.Page == nav.PageLanding {
			c.navigateLocked(nav.PageJobFeed, "")
		}
		return
	}

	if err != nil && c.logger != nil {
		c.logger.Printf("[Client] profile check for %s failed: %v", email, err)
	}
	if c.state.Page != nav.PageProfileSetup {
		c.navigateLocked(nav.PageProfileSetup, "")
	}
}

// SetProfile stores a profile returned by a successful create or update
// and marks the session's check complete.
func (c *Controller) SetProfile(p profile.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Profile = &p
	c.state.ProfileChecked = true
}

// ClearProfile drops the stored profile after an account deletion. The
// session itself is the identity provider's to revoke.
func (c *Controller) ClearProfile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Profile = nil
	c.navigateLocked(nav.PageLanding, "")
}

// restoreRecord seeds profile state from a cached session record so the
// once-per-session check is not repeated after a process restart. The
// record's identity becomes the owner, so a token for anyone else
// invalidates the restored state instead of inheriting it.
func (c *Controller) restoreRecord(rec session.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Profile = rec.Profile
	c.state.ProfileChecked = rec.ProfileChecked
	c.owner = rec.Identity.SubjectID
}

// HistoryLen exposes the entry count for diagnostics and tests.
func (c *Controller) HistoryLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Len()
}
