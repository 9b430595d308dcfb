package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"

	"ai-jobmatch/internal/client"
	"ai-jobmatch/internal/delivery/http/dto"
	"ai-jobmatch/internal/delivery/http/middleware"
	"ai-jobmatch/internal/domain/profile"
	"ai-jobmatch/internal/nav"
	"ai-jobmatch/internal/pkg/response"
	"ai-jobmatch/internal/upstream"
	"ai-jobmatch/internal/view"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	registry *client.Registry
	api      view.ProfileAPI
	logger   *log.Logger
}

func NewProfileHandler(registry *client.Registry, api view.ProfileAPI, logger *log.Logger) *ProfileHandler {
	return &ProfileHandler{registry: registry, api: api, logger: logger}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Get("/options", h.Options)
	r.Post("/", h.Create)
	r.Patch("/", h.Update)
	r.Delete("/", h.Delete)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	_, st := h.state(c)
	if st.Profile == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponse(*st.Profile))
}

// Options serves the fixed form catalogs so the setup and account forms
// never hardcode them client-side.
func (h *ProfileHandler) Options(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileOptionsResponse{
		Roles:            profile.Roles,
		ExperienceBands:  profile.ExperienceBands,
		ResumeExtensions: profile.ResumeExtensions,
		MaxResumeBytes:   profile.MaxResumeBytes,
	})
}

// Create handles the setup form. The email always comes from the session
// identity, never from the form.
func (h *ProfileHandler) Create(c fiber.Ctx) error {
	e, st := h.state(c)

	form, err := h.parseForm(c)
	if err != nil {
		return err
	}
	form.ID = ""
	form.Email = st.Session.User.Email
	if form.Name == "" {
		form.Name = st.Session.User.Name
	}

	prof, err := view.SubmitProfile(c.Context(), h.api, form)
	if err != nil {
		return h.mapSubmitError(err)
	}

	e.Ctrl.SetProfile(prof)
	e.Ctrl.Navigate(nav.PageJobFeed, "")
	h.registry.Persist(c.Context(), middleware.SIDFromCtx(c), e)

	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponse(prof))
}

// Update handles the account form as a partial update. Changed skills
// invalidate the feed cache so scores refresh on the next feed load.
func (h *ProfileHandler) Update(c fiber.Ctx) error {
	e, st := h.state(c)
	if st.Profile == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, nil)
	}

	form, err := h.parseForm(c)
	if err != nil {
		return err
	}
	form.Email = st.Session.User.Email

	prof, err := view.UpdateAccount(c.Context(), h.api, st.Profile.ID, form)
	if err != nil {
		return h.mapSubmitError(err)
	}

	e.Ctrl.SetProfile(prof)
	e.Feed.Refresh()
	h.registry.Persist(c.Context(), middleware.SIDFromCtx(c), e)

	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponse(prof))
}

type deleteRequest struct {
	ConfirmFirst  bool   `json:"confirm_first"`
	ConfirmSecond bool   `json:"confirm_second"`
	Phrase        string `json:"phrase"`
}

// Delete permanently removes the account. The full confirmation sequence
// is required; anything less returns 400 with zero upstream calls.
func (h *ProfileHandler) Delete(c fiber.Ctx) error {
	e, st := h.state(c)
	if st.Profile == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, nil)
	}

	var req deleteRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := view.DeleteAccount(c.Context(), h.api, st.Profile.ID, view.DeleteRequest{
		ConfirmFirst:  req.ConfirmFirst,
		ConfirmSecond: req.ConfirmSecond,
		Phrase:        req.Phrase,
	})
	if err != nil {
		if errors.Is(err, view.ErrNotConfirmed) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Deletion not confirmed", nil, err)
		}
		return mapUpstreamError(err)
	}

	sid := middleware.SIDFromCtx(c)
	e.Ctrl.ClearProfile()
	h.registry.Drop(c.Context(), sid)
	if h.logger != nil {
		h.logger.Printf("[Account] profile %s deleted", st.Profile.ID)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) state(c fiber.Ctx) (*client.Entry, client.State) {
	sid := middleware.SIDFromCtx(c)
	e := h.registry.Acquire(c.Context(), sid, c.Path(), "")
	e.SetSession(middleware.SessionFromCtx(c))
	return e, e.Ctrl.Snapshot()
}

// parseForm reads the multipart profile form. Skills arrive as a JSON
// array field, with a comma-separated fallback. The resume, when present,
// is size-checked while reading so an oversized upload never buffers
// fully.
func (h *ProfileHandler) parseForm(c fiber.Ctx) (upstream.ProfileForm, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return upstream.ProfileForm{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	value := func(key string) string {
		if vs := mf.Value[key]; len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	form := upstream.ProfileForm{
		Name:       value("name"),
		Role:       value("role"),
		Experience: value("experience"),
		Skills:     parseSkills(value("skills")),
	}

	if fhs := mf.File["resume"]; len(fhs) > 0 {
		fh := fhs[0]
		f, err := fh.Open()
		if err != nil {
			return upstream.ProfileForm{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		defer f.Close()

		content, err := io.ReadAll(io.LimitReader(f, profile.MaxResumeBytes+1))
		if err != nil {
			return upstream.ProfileForm{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		if len(content) > profile.MaxResumeBytes {
			return upstream.ProfileForm{}, middleware.NewAppError(fiber.StatusBadRequest, "Resume too large", nil, nil)
		}
		form.Resume = &upstream.ResumeFile{Name: fh.Filename, Content: content}
	}

	return form, nil
}

func parseSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var skills []string
		if err := json.Unmarshal([]byte(raw), &skills); err == nil {
			return skills
		}
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		out = profile.AddSkill(out, p)
	}
	return out
}

func (h *ProfileHandler) mapSubmitError(err error) error {
	// Validation failures never reached the wire.
	if errors.Is(err, view.ErrInvalidForm) {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}
	return mapUpstreamError(err)
}

func profileResponse(p profile.Profile) dto.ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return dto.ProfileResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Role:       p.Role,
		Skills:     skills,
		Experience: p.Experience,
		ResumeRef:  p.ResumeRef,
		Complete:   p.Complete(),
	}
}
