package session

import "ai-jobmatch/internal/domain/profile"

// Record is the durable slice of one session's client state: who the
// session belongs to, the resolved profile if any, and whether the
// once-per-session profile check already ran. Everything else (history,
// chat transcript, feed cache) is deliberately ephemeral.
type Record struct {
	Identity       Identity         `json:"identity"`
	Profile        *profile.Profile `json:"profile,omitempty"`
	ProfileChecked bool             `json:"profile_checked"`
}
