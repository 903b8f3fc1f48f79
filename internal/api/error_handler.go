package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/petcare/pet-service/internal/api/handler"
	"github.com/petcare/pet-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors:
// a status, a message, and an optional field → reason map.
type errorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders uniqueness conflicts and validation failures with field-level
//     details instead of a generic message.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := resolveError(err, log, c)
		_ = c.JSON(resp.Status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) errorResponse {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorResponse{Status: he.Code, Message: fmt.Sprintf("%v", he.Message)}
	}

	// Validation failures carry per-field reasons.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return errorResponse{
			Status:  http.StatusBadRequest,
			Message: "validation failed",
			Details: ve.Fields,
		}
	}

	// Uniqueness violations surfaced at write time become field-level
	// conflicts, per the persistence-constraint-is-authoritative rule.
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return errorResponse{
			Status:  http.StatusConflict,
			Message: "field already taken",
			Details: map[string]string{conflict.Field: conflict.Value + " is already taken"},
		}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return errorResponse{Status: http.StatusNotFound, Message: "user not found"}
	case errors.Is(err, domain.ErrRoleNotFound):
		return errorResponse{Status: http.StatusNotFound, Message: "role not found"}
	case errors.Is(err, domain.ErrPetNotFound):
		return errorResponse{Status: http.StatusNotFound, Message: "pet not found"}
	case errors.Is(err, domain.ErrOfferingNotFound):
		return errorResponse{Status: http.StatusNotFound, Message: "service offering not found"}
	case errors.Is(err, domain.ErrBookingNotFound):
		return errorResponse{Status: http.StatusNotFound, Message: "booking not found"}
	case errors.Is(err, domain.ErrBillNotFound):
		return errorResponse{Status: http.StatusNotFound, Message: "bill not found"}
	case errors.Is(err, domain.ErrPetNotAvailable):
		return errorResponse{Status: http.StatusConflict, Message: "pet not available"}
	case errors.Is(err, domain.ErrOfferingInactive):
		return errorResponse{Status: http.StatusUnprocessableEntity, Message: "service offering inactive"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errorResponse{Status: http.StatusUnauthorized, Message: "invalid credentials"}
	case errors.Is(err, domain.ErrTokenRevoked):
		return errorResponse{Status: http.StatusUnauthorized, Message: "token revoked"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return errorResponse{Status: http.StatusInternalServerError, Message: "internal server error"}
}
