package handler

import (
	"ai-jobmatch/internal/client"
	"ai-jobmatch/internal/delivery/http/dto"
	"ai-jobmatch/internal/delivery/http/middleware"
	"ai-jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	registry *client.Registry
}

func NewSessionHandler(registry *client.Registry) *SessionHandler {
	return &SessionHandler{registry: registry}
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Current)
	r.Post("/logout", h.Logout)
}

// Current reports the resolved session as the shell sees it.
func (h *SessionHandler) Current(c fiber.Ctx) error {
	s := middleware.SessionFromCtx(c)
	out := dto.SessionResponse{
		IsAuthenticated: s.IsAuthenticated,
		IsLoading:       s.IsLoading,
	}
	if s.User != nil {
		out.User = &dto.UserResponse{ID: s.User.SubjectID, Email: s.User.Email, Name: s.User.Name}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// Logout forgets everything this service holds for the session. Token
// revocation itself is the identity provider's concern.
func (h *SessionHandler) Logout(c fiber.Ctx) error {
	sid := middleware.SIDFromCtx(c)
	h.registry.Drop(c.Context(), sid)
	c.ClearCookie(middleware.SIDCookie)
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
