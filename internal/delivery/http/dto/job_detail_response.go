package dto

// JobDetailResponse is the full job view: the cleaned description plus
// the server's match analysis.
type JobDetailResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Salary        string   `json:"salary,omitempty"`
	Posted        string   `json:"posted,omitempty"`
	Type          string   `json:"type,omitempty"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	Benefits      []string `json:"benefits"`
	MatchScore    int      `json:"match_score"`
	Band          string   `json:"band"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Explanation   string   `json:"explanation"`
}
