package dto

// PageResponse is what every page path returns: the page that actually
// renders after the route guard, the loading gate, and the state the
// shell needs to draw chrome.
type PageResponse struct {
	Page          string          `json:"page"`
	Requested     string          `json:"requested"`
	Loading       bool            `json:"loading"`
	SelectedJobID string          `json:"selected_job_id,omitempty"`
	HasProfile    bool            `json:"has_profile"`
	Session       SessionResponse `json:"session"`
}
