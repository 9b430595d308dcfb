package dto

// JobSummaryResponse is one feed card.
type JobSummaryResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Salary     string   `json:"salary,omitempty"`
	Posted     string   `json:"posted,omitempty"`
	Type       string   `json:"type,omitempty"`
	Tags       []string `json:"tags"`
	MatchScore int      `json:"match_score"`
	Band       string   `json:"band"`
}

// JobFeedResponse is the filtered, sorted feed plus the distinct
// locations that feed the filter dropdown.
type JobFeedResponse struct {
	Jobs      []JobSummaryResponse `json:"jobs"`
	Total     int                  `json:"total"`
	Locations []string             `json:"locations"`
}
