package chat

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the per-session conversation. The sequence is
// append-only and lives in memory only for the lifetime of the session.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorReply is what the assistant says when the upstream chat call fails.
const ErrorReply = "An error occurred while contacting the AI."

// EmptyReply is what the assistant says when upstream returns no text.
const EmptyReply = "Sorry, no response received."

// Greeting seeds a new conversation, personalized with the profile role.
func Greeting(role string) string {
	if role == "" {
		role = "developer"
	}
	return fmt.Sprintf("Hi! I'm your AI Career Assistant. I'm here to help you with career advice, skill development, interview preparation, and job search strategies.\n\nBased on your profile as a %s, I can provide personalized guidance. What would you like to discuss today?", role)
}

// Suggestions are the canned prompts shown before the first user message.
var Suggestions = []string{
	"What skills should I improve for Google SWE role?",
	"How can I transition from frontend to full-stack?",
	"What salary should I expect for my experience level?",
	"How do I prepare for technical interviews?",
	"What are the current trends in web development?",
}
