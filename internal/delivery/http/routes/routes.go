package routes

import (
	"log"

	"ai-jobmatch/internal/client"
	"ai-jobmatch/internal/delivery/http/handler"
	"ai-jobmatch/internal/delivery/http/middleware"
	"ai-jobmatch/internal/pkg/jwt"
	"ai-jobmatch/internal/upstream"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything route construction needs from the container.
type Deps struct {
	Sessions *client.Registry
	Upstream *upstream.Client
	Cache    handler.Pinger
	JWT      jwt.Service
	Logger   *log.Logger
}

type Registry struct {
	authMw *middleware.AuthMiddleware

	pages   *handler.PageHandler
	jobs    *handler.JobsHandler
	profile *handler.ProfileHandler
	chat    *handler.ChatHandler
	session *handler.SessionHandler
	health  *handler.HealthHandler
}

func NewRegistry(d Deps) *Registry {
	return &Registry{
		authMw:  middleware.NewAuthMiddleware(d.JWT),
		pages:   handler.NewPageHandler(d.Sessions),
		jobs:    handler.NewJobsHandler(d.Sessions, d.Upstream),
		profile: handler.NewProfileHandler(d.Sessions, d.Upstream, d.Logger),
		chat:    handler.NewChatHandler(d.Sessions, d.Upstream, d.Logger),
		session: handler.NewSessionHandler(d.Sessions),
		health:  handler.NewHealthHandler(d.Sessions, d.Cache),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	// Page paths resolve for everyone; the route guard decides what an
	// anonymous session sees.
	pages := app.Group("", r.authMw.Resolve())
	r.pages.RegisterRoutes(pages)

	api := app.Group("/api/v1", r.authMw.Resolve())
	r.session.RegisterRoutes(api.Group("/session"))
	r.pages.RegisterNavRoutes(api.Group("/nav"))

	protected := api.Group("", r.authMw.RequireAuth())
	r.jobs.RegisterRoutes(protected.Group("/jobs"))
	r.profile.RegisterRoutes(protected.Group("/profile"))
	r.chat.RegisterRoutes(protected.Group("/chat"))
}
