package handler

import (
	"context"
	"time"

	"ai-jobmatch/internal/client"
	"ai-jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything with a health-checkable backing connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	registry *client.Registry
	cache    Pinger
	started  time.Time
}

func NewHealthHandler(registry *client.Registry, cache Pinger) *HealthHandler {
	return &HealthHandler{registry: registry, cache: cache, started: time.Now()}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Handle)
}

// Handle always answers 200; a down cache is reported, not fatal, since
// the service degrades to memory-only sessions.
func (h *HealthHandler) Handle(c fiber.Ctx) error {
	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.Ping(c.Context()); err != nil {
			cacheStatus = "unavailable"
		}
	}

	data := map[string]any{
		"uptime":   time.Since(h.started).Round(time.Second).String(),
		"sessions": h.registry.Len(),
		"cache":    cacheStatus,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
