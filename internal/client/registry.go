package client

import (
	"context"
	"log"
	"sync"

	"ai-jobmatch/internal/session"
	"ai-jobmatch/internal/view"
)

// UpstreamAPI is everything the per-session machinery needs from the
// remote API. *upstream.Client satisfies it.
type UpstreamAPI interface {
	ProfileSource
	view.JobSource
	view.ChatSender
}

// StateCache persists the recoverable slice of a session across process
// restarts. A nil cache is valid and simply never restores anything.
type StateCache interface {
	Load(ctx context.Context, sid string) (session.Record, bool)
	Save(ctx context.Context, sid string, rec session.Record)
	Drop(ctx context.Context, sid string)
}

// Entry bundles everything one session owns.
type Entry struct {
	Ctrl *Controller
	Feed *view.Feed

	mu   sync.Mutex
	chat *view.Assistant
}

// SetSession forwards the identity provider's signals to the controller.
// When a token for a different user arrives on the same session id, the
// previous user's feed cache and conversation go with the profile state.
func (e *Entry) SetSession(s session.Session) {
	if !e.Ctrl.SetSession(s) {
		return
	}
	e.Feed.Refresh()
	e.mu.Lock()
	e.chat = nil
	e.mu.Unlock()
}

// Assistant returns the session's conversation, creating it with the
// role-personalized greeting on first use. The greeting is fixed at
// creation; a later role change starts showing up in new sessions only.
func (e *Entry) Assistant(sender view.ChatSender, role string, logger *log.Logger) *view.Assistant {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.chat == nil {
		e.chat = view.NewAssistant(sender, role, logger)
	}
	return e.chat
}

// Registry maps session ids to their live state. Entries are created on
// first sight of a session id and dropped on logout or deletion; the
// optional cache lets a new process pick up where the old one stopped.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*Entry

	api    UpstreamAPI
	cache  StateCache
	logger *log.Logger
}

func NewRegistry(api UpstreamAPI, cache StateCache, logger *log.Logger) *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		api:     api,
		cache:   cache,
		logger:  logger,
	}
}

// Acquire returns the session's entry, creating it from the document
// location on first sight. A cached record restores the profile and the
// profile-checked flag so the upstream lookup is not repeated after a
// restart.
func (r *Registry) Acquire(ctx context.Context, sid, path, rawQuery string) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[sid]; ok {
		return e
	}

	ctrl := NewController(path, rawQuery, r.api, r.logger)
	if r.cache != nil {
		if rec, ok := r.cache.Load(ctx, sid); ok && rec.ProfileChecked {
			ctrl.restoreRecord(rec)
		}
	}

	e := &Entry{
		Ctrl: ctrl,
		Feed: view.NewFeed(r.api),
	}
	r.entries[sid] = e
	return e
}

// Persist writes the session's recoverable state to the cache.
func (r *Registry) Persist(ctx context.Context, sid string, e *Entry) {
	if r.cache == nil || e == nil {
		return
	}
	st := e.Ctrl.Snapshot()
	rec := session.Record{
		Profile:        st.Profile,
		ProfileChecked: st.ProfileChecked,
	}
	if st.Session.User != nil {
		rec.Identity = *st.Session.User
	}
	r.cache.Save(ctx, sid, rec)
}

// Drop forgets a session entirely, memory and cache both.
func (r *Registry) Drop(ctx context.Context, sid string) {
	r.mu.Lock()
	delete(r.entries, sid)
	r.mu.Unlock()
	if r.cache != nil {
		r.cache.Drop(ctx, sid)
	}
}

// Len reports the number of live sessions, for the health endpoint.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
