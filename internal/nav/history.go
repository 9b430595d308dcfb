package nav

// Entry is one history position: the page that was pushed and the job id
// mirrored into its URL, empty when the push carried none.
type Entry struct {
	Page  Page
	JobID string
}

// History models the browser history stack for one session. The document
// always loads with one entry; Push appends behind the cursor and drops
// any forward entries, exactly like pushState.
type History struct {
	entries []Entry
	idx     int
}

func NewHistory(initial Entry) *History {
	return &History{entries: []Entry{initial}}
}

// Push records a new entry after the cursor, truncating the forward tail.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries[:h.idx+1], e)
	h.idx = len(h.entries) - 1
}

// Back moves the cursor one entry toward the start. ok is false at the
// oldest entry, where the cursor stays put.
func (h *History) Back() (Entry, bool) {
	if h.idx == 0 {
		return h.entries[h.idx], false
	}
	h.idx--
	return h.entries[h.idx], true
}

// Forward moves the cursor one entry toward the end. ok is false at the
// newest entry.
func (h *History) Forward() (Entry, bool) {
	if h.idx >= len(h.entries)-1 {
		return h.entries[h.idx], false
	}
	h.idx++
	return h.entries[h.idx], true
}

// Current returns the entry at the cursor.
func (h *History) Current() Entry {
	return h.entries[h.idx]
}

// Len reports the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }
