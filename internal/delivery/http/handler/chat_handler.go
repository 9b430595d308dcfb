package handler

import (
	"log"
	"strings"

	"ai-jobmatch/internal/client"
	"ai-jobmatch/internal/delivery/http/dto"
	"ai-jobmatch/internal/delivery/http/middleware"
	"ai-jobmatch/internal/domain/profile"
	"ai-jobmatch/internal/pkg/response"
	"ai-jobmatch/internal/view"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	registry *client.Registry
	sender   view.ChatSender
	logger   *log.Logger
}

func NewChatHandler(registry *client.Registry, sender view.ChatSender, logger *log.Logger) *ChatHandler {
	return &ChatHandler{registry: registry, sender: sender, logger: logger}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Transcript)
	r.Post("/", h.Send)
}

func (h *ChatHandler) Transcript(c fiber.Ctx) error {
	a, _ := h.assistant(c)
	return response.Success(c, fiber.StatusOK, response.MessageOK, chatResponse(a))
}

type sendRequest struct {
	Message string `json:"message"`
}

// Send relays one user message. The conversation is strict
// request/response: a send while a reply is pending is refused with a
// conflict, and the composer stays disabled client-side for the same
// window.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	var req sendRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Message is required", nil, nil)
	}

	a, prof := h.assistant(c)
	if _, ok := a.Send(c.Context(), text, prof); !ok {
		return middleware.NewAppError(fiber.StatusConflict, "A reply is already pending", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, chatResponse(a))
}

func (h *ChatHandler) assistant(c fiber.Ctx) (*view.Assistant, *profile.Profile) {
	sid := middleware.SIDFromCtx(c)
	e := h.registry.Acquire(c.Context(), sid, c.Path(), "")
	e.SetSession(middleware.SessionFromCtx(c))

	st := e.Ctrl.Snapshot()
	role := ""
	if st.Profile != nil {
		role = st.Profile.Role
	}
	return e.Assistant(h.sender, role, h.logger), st.Profile
}

func chatResponse(a *view.Assistant) dto.ChatResponse {
	msgs := a.Messages()
	out := make([]dto.ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.ChatMessageResponse{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return dto.ChatResponse{
		Messages:    out,
		Pending:     a.Pending(),
		Suggestions: a.Suggestions(),
	}
}
