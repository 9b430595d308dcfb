package dto

import "time"

// ChatMessageResponse is one transcript entry.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatResponse is the whole conversation view: the transcript, whether a
// reply is in flight, and the canned prompts shown before the first user
// message.
type ChatResponse struct {
	Messages    []ChatMessageResponse `json:"messages"`
	Pending     bool                  `json:"pending"`
	Suggestions []string              `json:"suggestions,omitempty"`
}
