package handler

import (
	"ai-jobmatch/internal/client"
	"ai-jobmatch/internal/delivery/http/dto"
	"ai-jobmatch/internal/delivery/http/middleware"
	"ai-jobmatch/internal/nav"
	"ai-jobmatch/internal/pkg/response"
	"ai-jobmatch/internal/session"

	"github.com/gofiber/fiber/v3"
)

// PageHandler serves the six page paths. A GET of a page path behaves
// like a document load or a history pop: the controller re-derives its
// state from the URL, the route guard runs, and the shell gets back the
// page that actually renders.
type PageHandler struct {
	registry *client.Registry
}

func NewPageHandler(registry *client.Registry) *PageHandler {
	return &PageHandler{registry: registry}
}

func (h *PageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	for _, p := range []nav.Page{
		nav.PageLanding,
		nav.PageProfileSetup,
		nav.PageJobFeed,
		nav.PageJobDetail,
		nav.PageChat,
		nav.PageAccount,
	} {
		r.Get(string(p), h.HandlePage)
	}
}

// RegisterNavRoutes adds the explicit navigation endpoints that model
// in-app navigation and the browser's back and forward buttons.
func (h *PageHandler) RegisterNavRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/goto", h.HandleGoto)
	r.Post("/back", h.HandleBack)
	r.Post("/forward", h.HandleForward)
}

func (h *PageHandler) HandlePage(c fiber.Ctx) error {
	e, ctrl := h.acquire(c)

	ctrl.Restore(c.Path(), string(c.Request().URI().QueryString()))
	e.SetSession(middleware.SessionFromCtx(c))
	ctrl.EnsureProfile(c.Context())
	h.registry.Persist(c.Context(), middleware.SIDFromCtx(c), e)

	return response.Success(c, fiber.StatusOK, response.MessageOK, pageResponse(ctrl))
}

type gotoRequest struct {
	Path  string `json:"path"`
	JobID string `json:"job_id"`
}

// HandleGoto is a pushState: it records a history entry and moves the
// controller, without validating the target. Unknown paths simply render
// as Landing.
func (h *PageHandler) HandleGoto(c fiber.Ctx) error {
	var req gotoRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	e, ctrl := h.acquire(c)
	e.SetSession(middleware.SessionFromCtx(c))
	ctrl.Navigate(nav.ParsePath(req.Path), req.JobID)
	ctrl.EnsureProfile(c.Context())

	return response.Success(c, fiber.StatusOK, response.MessageOK, pageResponse(ctrl))
}

func (h *PageHandler) HandleBack(c fiber.Ctx) error {
	e, ctrl := h.acquire(c)
	e.SetSession(middleware.SessionFromCtx(c))
	ctrl.Back()
	return response.Success(c, fiber.StatusOK, response.MessageOK, pageResponse(ctrl))
}

func (h *PageHandler) HandleForward(c fiber.Ctx) error {
	e, ctrl := h.acquire(c)
	e.SetSession(middleware.SessionFromCtx(c))
	ctrl.Forward()
	return response.Success(c, fiber.StatusOK, response.MessageOK, pageResponse(ctrl))
}

func (h *PageHandler) acquire(c fiber.Ctx) (*client.Entry, *client.Controller) {
	sid := middleware.SIDFromCtx(c)
	e := h.registry.Acquire(c.Context(), sid, c.Path(), string(c.Request().URI().QueryString()))
	return e, e.Ctrl
}

func pageResponse(ctrl *client.Controller) dto.PageResponse {
	st := ctrl.Snapshot()
	resolved := nav.ResolveRoute(st.Session, st.Page)
	return dto.PageResponse{
		Page:          string(resolved),
		Requested:     string(st.Page),
		Loading:       ctrl.Loading(),
		SelectedJobID: st.SelectedJobID,
		HasProfile:    st.Profile != nil,
		Session:       sessionResponse(st.Session),
	}
}

func sessionResponse(s session.Session) dto.SessionResponse {
	out := dto.SessionResponse{
		IsAuthenticated: s.IsAuthenticated,
		IsLoading:       s.IsLoading,
	}
	if s.User != nil {
		out.User = &dto.UserResponse{
			ID:    s.User.SubjectID,
			Email: s.User.Email,
			Name:  s.User.Name,
		}
	}
	return out
}
