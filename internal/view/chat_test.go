package view

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-jobmatch/internal/domain/chat"
	"ai-jobmatch/internal/domain/profile"
)

type mockChatSender struct {
	reply string
	err   error
	calls int
	last  string
}

func (m *mockChatSender) SendChat(_ context.Context, message string, _ *profile.Profile) (string, error) {
	m.calls++
	m.last = message
	return m.reply, m.err
}

func TestAssistantSeedsGreeting(t *testing.T) {
	a := NewAssistant(&mockChatSender{}, "backend-developer", nil)

	msgs := a.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want the greeting only", len(msgs))
	}
	if msgs[0].Role != chat.RoleAssistant {
		t.Fatalf("greeting role = %q", msgs[0].Role)
	}
	if !strings.Contains(msgs[0].Content, "backend-developer") {
		t.Fatalf("greeting not personalized: %q", msgs[0].Content)
	}
	if len(a.Suggestions()) == 0 {
		t.Fatal("suggestions must show before the first user message")
	}
}

func TestAssistantSendAppendsPair(t *testing.T) {
	sender := &mockChatSender{reply: "You could learn Go."}
	a := NewAssistant(sender, "", nil)

	reply, ok := a.Send(context.Background(), "What should I learn?", nil)
	if !ok {
		t.Fatal("send refused")
	}
	if reply.Content != "You could learn Go." {
		t.Fatalf("reply = %q", reply.Content)
	}
	if sender.last != "What should I learn?" {
		t.Fatalf("sent = %q", sender.last)
	}

	msgs := a.Messages()
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want greeting + pair", len(msgs))
	}
	if msgs[1].Role != chat.RoleUser || msgs[2].Role != chat.RoleAssistant {
		t.Fatalf("roles = %q, %q", msgs[1].Role, msgs[2].Role)
	}
	if a.Suggestions() != nil {
		t.Fatal("suggestions must disappear after the first user message")
	}
}

func TestAssistantErrorReply(t *testing.T) {
	a := NewAssistant(&mockChatSender{err: errors.New("down")}, "", nil)

	reply, ok := a.Send(context.Background(), "hello", nil)
	if !ok {
		t.Fatal("send refused")
	}
	if reply.Content != chat.ErrorReply {
		t.Fatalf("reply = %q, want the error stand-in", reply.Content)
	}
	if len(a.Messages()) != 3 {
		t.Fatalf("transcript = %d entries, failures still append the pair", len(a.Messages()))
	}
}

func TestAssistantEmptyReply(t *testing.T) {
	a := NewAssistant(&mockChatSender{reply: ""}, "", nil)

	reply, ok := a.Send(context.Background(), "hello", nil)
	if !ok {
		t.Fatal("send refused")
	}
	if reply.Content != chat.EmptyReply {
		t.Fatalf("reply = %q, want the empty stand-in", reply.Content)
	}
}

func TestAssistantRefusesEmptyMessage(t *testing.T) {
	sender := &mockChatSender{reply: "hi"}
	a := NewAssistant(sender, "", nil)

	if _, ok := a.Send(context.Background(), "", nil); ok {
		t.Fatal("empty message must be refused")
	}
	if sender.calls != 0 {
		t.Fatalf("upstream calls = %d, want 0", sender.calls)
	}
}
