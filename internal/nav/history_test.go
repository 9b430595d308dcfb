package nav

import "testing"

func TestHistoryBackAtOldestEntry(t *testing.T) {
	h := NewHistory(Entry{Page: PageLanding})
	if _, ok := h.Back(); ok {
		t.Fatal("back at the oldest entry must report ok=false")
	}
	if h.Current().Page != PageLanding {
		t.Fatalf("cursor moved: %q", h.Current().Page)
	}
}

func TestHistoryBackForwardRoundTrip(t *testing.T) {
	h := NewHistory(Entry{Page: PageLanding})
	h.Push(Entry{Page: PageJobFeed})
	h.Push(Entry{Page: PageJobDetail, JobID: "7"})

	e, ok := h.Back()
	if !ok || e.Page != PageJobFeed {
		t.Fatalf("back = (%+v, %v), want jobs", e, ok)
	}
	e, ok = h.Forward()
	if !ok || e.Page != PageJobDetail || e.JobID != "7" {
		t.Fatalf("forward = (%+v, %v), want job-detail with job 7", e, ok)
	}
	if _, ok := h.Forward(); ok {
		t.Fatal("forward at the newest entry must report ok=false")
	}
}

func TestHistoryPushTruncatesForwardTail(t *testing.T) {
	h := NewHistory(Entry{Page: PageLanding})
	h.Push(Entry{Page: PageJobFeed})
	h.Push(Entry{Page: PageChat})

	if _, ok := h.Back(); !ok {
		t.Fatal("back failed")
	}
	h.Push(Entry{Page: PageAccount})

	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3 after truncation", h.Len())
	}
	if _, ok := h.Forward(); ok {
		t.Fatal("truncated tail must not be reachable")
	}
	e, ok := h.Back()
	if !ok || e.Page != PageJobFeed {
		t.Fatalf("back after truncation = (%+v, %v), want jobs", e, ok)
	}
}
