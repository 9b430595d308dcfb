// Package view holds the page-level logic behind each screen: the feed's
// client-side search and sort, the detail normalization, the chat
// assistant, and the profile setup and account flows. Everything here is
// per-session and in-memory; the upstream API stays the source of truth.
package view

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ai-jobmatch/internal/domain/job"
)

// JobSource is the slice of the upstream API the feed and detail views
// consume.
type JobSource interface {
	MatchedJobs(ctx context.Context, profileID string) ([]job.Job, error)
	JobDetail(ctx context.Context, jobID string) (job.Job, error)
}

// Feed sort orders. Match is the default; both sort descending.
const (
	SortMatch = "match"
	SortDate  = "date"
)

// LocationAll disables the location filter.
const LocationAll = "all"

// FeedQuery is the user's current search, filter and sort selection. All
// of it applies client-side to the already-fetched feed.
type FeedQuery struct {
	Search   string
	Location string
	Sort     string
}

// FilterJobs applies the query to a feed slice and returns a new slice.
// Search matches title or company, case-insensitively; tags are display
// only. The location filter is an exact match, with "all" or empty
// passing everything. Sorting is stable so equal keys keep server order.
func FilterJobs(jobs []job.Job, q FeedQuery) []job.Job {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if needle != "" && !matchesSearch(j, needle) {
			continue
		}
		if q.Location != "" && q.Location != LocationAll && j.Location != q.Location {
			continue
		}
		out = append(out, j)
	}

	switch q.Sort {
	case SortDate:
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].PostedTime().After(out[b].PostedTime())
		})
	default:
		sort.SliceStable(out, func(a, b int) bool {
			return out[a].MatchScore > out[b].MatchScore
		})
	}
	return out
}

func matchesSearch(j job.Job, needle string) bool {
	return strings.Contains(strings.ToLower(j.Title), needle) ||
		strings.Contains(strings.ToLower(j.Company), needle)
}

// Locations returns the distinct job locations in first-seen order, for
// the filter dropdown. The "all" sentinel is the caller's to prepend.
func Locations(jobs []job.Job) []string {
	seen := make(map[string]bool, len(jobs))
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if j.Location == "" || seen[j.Location] {
			continue
		}
		seen[j.Location] = true
		out = append(out, j.Location)
	}
	return out
}

// Feed caches one session's matched-jobs fetch. The feed loads once and
// then serves every query from memory; Refresh forces a refetch.
type Feed struct {
	mu     sync.Mutex
	source JobSource

	loaded bool
	jobs   []job.Job
}

func NewFeed(source JobSource) *Feed {
	return &Feed{source: source}
}

// Load returns the cached feed, fetching it on first use. A fetch error
// leaves the feed unloaded so the next call retries.
func (f *Feed) Load(ctx context.Context, profileID string) ([]job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loaded {
		return f.jobs, nil
	}

	jobs, err := f.source.MatchedJobs(ctx, profileID)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		jobs[i] = job.Normalize(jobs[i])
	}
	f.jobs = jobs
	f.loaded = true
	return f.jobs, nil
}

// Refresh drops the cache so the next Load refetches.
func (f *Feed) Refresh() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = false
	f.jobs = nil
}
