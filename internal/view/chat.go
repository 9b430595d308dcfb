package view

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ai-jobmatch/internal/domain/chat"
	"ai-jobmatch/internal/domain/profile"
)

// ChatSender is the upstream chat call: one message in, one reply out.
type ChatSender interface {
	SendChat(ctx context.Context, message string, prof *profile.Profile) (string, error)
}

// Assistant holds one session's conversation. It is strict
// request/response: while a reply is pending, further sends are refused
// so the transcript never interleaves.
type Assistant struct {
	sender ChatSender
	logger *log.Logger
	now    func() time.Time

	mu       sync.Mutex
	messages []chat.Message
	pending  bool
}

// NewAssistant seeds a conversation with the role-personalized greeting.
func NewAssistant(sender ChatSender, role string, logger *log.Logger) *Assistant {
	a := &Assistant{
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
	a.append(chat.RoleAssistant, chat.Greeting(role))
	return a
}

// Messages returns a copy of the transcript in append order.
func (a *Assistant) Messages() []chat.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]chat.Message, len(a.messages))
	copy(out, a.messages)
	return out
}

// Pending reports whether a reply is still in flight.
func (a *Assistant) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending
}

// Suggestions returns the canned prompts, shown only before the user has
// said anything.
func (a *Assistant) Suggestions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, m := range a.messages {
		if m.Role == chat.RoleUser {
			return nil
		}
	}
	return chat.Suggestions
}

// Send appends the user message, calls upstream, and appends exactly one
// assistant reply: the upstream text, the empty-reply stand-in, or the
// error stand-in. The transcript always grows by two entries. ok is false
// when the send was refused because a reply was already pending.
func (a *Assistant) Send(ctx context.Context, text string, prof *profile.Profile) (chat.Message, bool) {
	a.mu.Lock()
	if a.pending || text == "" {
		a.mu.Unlock()
		return chat.Message{}, false
	}
	a.pending = true
	a.append(chat.RoleUser, text)
	a.mu.Unlock()

	reply, err := a.sender.SendChat(ctx, text, prof)

	switch {
	case err != nil:
		if a.logger != nil {
			a.logger.Printf("[Chat] send failed: %v", err)
		}
		reply = chat.ErrorReply
	case reply == "":
		reply = chat.EmptyReply
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = false
	return a.append(chat.RoleAssistant, reply), true
}

// append requires a.mu held, except during construction.
func (a *Assistant) append(role chat.Role, content string) chat.Message {
	m := chat.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: a.now(),
	}
	a.messages = append(a.messages, m)
	return m
}
