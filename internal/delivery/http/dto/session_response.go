package dto

// UserResponse is the identity slice exposed to the page shell.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SessionResponse mirrors the three provider signals the shell renders
// from.
type SessionResponse struct {
	IsAuthenticated bool          `json:"is_authenticated"`
	IsLoading       bool          `json:"is_loading"`
	User            *UserResponse `json:"user,omitempty"`
}
