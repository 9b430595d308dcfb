package handler

import (
	"errors"

	"ai-jobmatch/internal/delivery/http/middleware"
	"ai-jobmatch/internal/upstream"

	"github.com/gofiber/fiber/v3"
)

// mapUpstreamError converts upstream API failures into the envelope the
// client sees. A 404 passes through as not-found; anything else from the
// wire is a bad gateway, since the failure is the remote API's, not ours.
func mapUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, upstream.ErrProfileNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	}

	var se *upstream.StatusError
	if errors.As(err, &se) {
		if se.Status == fiber.StatusNotFound {
			return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
		}
		if se.Status >= 400 && se.Status < 500 {
			return middleware.NewAppError(se.Status, "Upstream rejected request", nil, err)
		}
	}

	return middleware.NewAppError(fiber.StatusBadGateway, "Upstream error", nil, err)
}
