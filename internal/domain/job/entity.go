package job

import "time"

// Job is a server-owned matching result. The client never computes any of
// these fields; it only normalizes absent optional ones before rendering.
type Job struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Salary        string   `json:"salary"`
	Posted        string   `json:"posted"`
	Type          string   `json:"type"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"`
	MatchScore    int      `json:"match_score"`
	Skills        []string `json:"skills"`
	Benefits      []string `json:"benefits"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Explanation   string   `json:"explanation"`
}

// NoAnalysisPlaceholder stands in for a missing match explanation so the
// detail view never branches on absence.
const NoAnalysisPlaceholder = "No analysis available"

// Normalize fills the optional collections and the explanation so callers
// can render without nil checks.
func Normalize(j Job) Job {
	if j.Tags == nil {
		j.Tags = []string{}
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}
	if j.MatchedSkills == nil {
		j.MatchedSkills = []string{}
	}
	if j.MissingSkills == nil {
		j.MissingSkills = []string{}
	}
	if j.Explanation == "" {
		j.Explanation = NoAnalysisPlaceholder
	}
	if j.MatchScore < 0 {
		j.MatchScore = 0
	}
	return j
}

// PostedTime parses the posted date for sorting. Unparseable values sort
// last under a descending date sort.
func (j Job) PostedTime() time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, j.Posted); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ScoreBand buckets a match score the way the feed badges do.
type ScoreBand string

const (
	BandExcellent ScoreBand = "excellent"
	BandStrong    ScoreBand = "strong"
	BandFair      ScoreBand = "fair"
	BandLow       ScoreBand = "low"
)

func Band(score int) ScoreBand {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 80:
		return BandStrong
	case score >= 70:
		return BandFair
	default:
		return BandLow
	}
}
