package view

import (
	"context"

	"ai-jobmatch/internal/domain/job"
)

// Detail is what the job detail page renders: the normalized job with its
// description cleaned for display, plus the precomputed score band.
type Detail struct {
	Job         job.Job       `json:"job"`
	Description string        `json:"description"`
	Band        job.ScoreBand `json:"band"`
}

// LoadDetail fetches one job and prepares it for rendering. The raw
// description stays on the Job; Description carries the cleaned text.
func LoadDetail(ctx context.Context, source JobSource, jobID string) (Detail, error) {
	j, err := source.JobDetail(ctx, jobID)
	if err != nil {
		return Detail{}, err
	}
	j = job.Normalize(j)
	return Detail{
		Job:         j,
		Description: job.CleanDescription(j.Description),
		Band:        job.Band(j.MatchScore),
	}, nil
}
