package dto

// ProfileResponse is the stored profile plus the derived completeness
// flag the setup and account pages branch on.
type ProfileResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	ResumeRef  string   `json:"resume,omitempty"`
	Complete   bool     `json:"complete"`
}

// ProfileOptionsResponse carries the fixed form catalogs.
type ProfileOptionsResponse struct {
	Roles            []string `json:"roles"`
	ExperienceBands  []string `json:"experience_bands"`
	ResumeExtensions []string `json:"resume_extensions"`
	MaxResumeBytes   int      `json:"max_resume_bytes"`
}
