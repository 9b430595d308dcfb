package upstream

import (
	"context"
	"net/http"
	"net/url"

	"ai-jobmatch/internal/domain/job"
)

// MatchedJobs fetches the server-ranked feed for a profile. The ranking
// is entirely upstream; the slice comes back in server order.
func (c *Client) MatchedJobs(ctx context.Context, profileID string) ([]job.Job, error) {
	u := c.endpoint("/matched-jobs/" + url.PathEscape(profileID) + "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var jobs []job.Job
	if err := c.do(req, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// JobDetail fetches one job by id.
func (c *Client) JobDetail(ctx context.Context, jobID string) (job.Job, error) {
	u := c.endpoint("/jobs/" + url.PathEscape(jobID) + "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return job.Job{}, err
	}

	var j job.Job
	if err := c.do(req, &j); err != nil {
		return job.Job{}, err
	}
	return j, nil
}
