package handler

import (
	"ai-jobmatch/internal/client"
	"ai-jobmatch/internal/delivery/http/dto"
	"ai-jobmatch/internal/delivery/http/middleware"
	"ai-jobmatch/internal/domain/job"
	"ai-jobmatch/internal/pkg/response"
	"ai-jobmatch/internal/view"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	registry *client.Registry
	jobs     view.JobSource
}

func NewJobsHandler(registry *client.Registry, jobs view.JobSource) *JobsHandler {
	return &JobsHandler{registry: registry, jobs: jobs}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Detail)
}

// List serves the session's feed with the search, location and sort
// query applied. The feed fetch happens once per session; every query
// after that filters in memory.
func (h *JobsHandler) List(c fiber.Ctx) error {
	sid := middleware.SIDFromCtx(c)
	e := h.registry.Acquire(c.Context(), sid, c.Path(), "")
	e.SetSession(middleware.SessionFromCtx(c))

	st := e.Ctrl.Snapshot()
	if st.Profile == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, nil)
	}

	all, err := e.Feed.Load(c.Context(), st.Profile.ID)
	if err != nil {
		return mapUpstreamError(err)
	}

	q := view.FeedQuery{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Sort:     c.Query("sort"),
	}
	filtered := view.FilterJobs(all, q)

	items := make([]dto.JobSummaryResponse, 0, len(filtered))
	for _, j := range filtered {
		items = append(items, dto.JobSummaryResponse{
			ID:         j.ID,
			Title:      j.Title,
			Company:    j.Company,
			Location:   j.Location,
			Salary:     j.Salary,
			Posted:     j.Posted,
			Type:       j.Type,
			Tags:       j.Tags,
			MatchScore: j.MatchScore,
			Band:       string(job.Band(j.MatchScore)),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobFeedResponse{
		Jobs:      items,
		Total:     len(items),
		Locations: view.Locations(all),
	})
}

// Detail serves one job, description cleaned for display.
func (h *JobsHandler) Detail(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	d, err := view.LoadDetail(c.Context(), h.jobs, id)
	if err != nil {
		return mapUpstreamError(err)
	}

	j := d.Job
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobDetailResponse{
		ID:            j.ID,
		Title:         j.Title,
		Company:       j.Company,
		Location:      j.Location,
		Salary:        j.Salary,
		Posted:        j.Posted,
		Type:          j.Type,
		Tags:          j.Tags,
		Description:   d.Description,
		Skills:        j.Skills,
		Benefits:      j.Benefits,
		MatchScore:    j.MatchScore,
		Band:          string(d.Band),
		MatchedSkills: j.MatchedSkills,
		MissingSkills: j.MissingSkills,
		Explanation:   j.Explanation,
	})
}
