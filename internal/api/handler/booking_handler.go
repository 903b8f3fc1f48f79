package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/petcare/pet-service/internal/core/ports"
)

type createBookingRequest struct {
	OfferingID    string     `json:"offering_id"    validate:"required,uuid4"`
	BookedAt      *time.Time `json:"booked_at"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=cash card transfer"`
}

// BookingHandler handles HTTP requests for service bookings. The acting user
// is resolved from the token's email claim, never from the payload.
type BookingHandler struct {
	bookings ports.BookingService
	users    ports.UserService
}

func NewBookingHandler(bookings ports.BookingService, users ports.UserService) *BookingHandler {
	return &BookingHandler{bookings: bookings, users: users}
}

// Create books a service offering for the authenticated user.
//
// @Summary      Book a service offering
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking payload"
// @Success      201   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	user, err := h.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	input := ports.CreateBookingInput{
		UserID:        user.ID,
		OfferingID:    req.OfferingID,
		PaymentMethod: req.PaymentMethod,
	}
	if req.BookedAt != nil {
		input.BookedAt = *req.BookedAt
	}

	booking, err := h.bookings.Create(ctx, input)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "booking created", map[string]any{"booking": booking})
}

// ListOwn returns the authenticated user's bookings.
//
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListOwn(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	user, err := h.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "bookings fetched", map[string]any{"bookings": bookings})
}

// ListAll returns a page of all bookings.
//
// @Summary      List all bookings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  SuccessResponse
// @Router       /admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.bookings.ListAll(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "bookings fetched", map[string]any{
		"bookings": result.Items,
		"pagination": paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get returns a single booking. Non-admin callers only see their own.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  SuccessResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	email, roles, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	booking, err := h.bookings.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	if !isAdmin(roles) {
		user, err := h.users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if booking.UserID != user.ID {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}

	return respond(c, http.StatusOK, "booking fetched", map[string]any{"booking": booking})
}

// SetStatus confirms or cancels a booking.
//
// @Summary      Set booking status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Booking id"
// @Param        body  body      setStatusRequest  true  "Status payload"
// @Success      200   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Router       /admin/bookings/{id}/status [put]
func (h *BookingHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.bookings.SetStatus(c.Request().Context(), c.Param("id"), *req.Status)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "booking status updated", map[string]any{"booking": booking})
}

// Delete removes a booking.
//
// @Summary      Delete a booking
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  SuccessResponse
// @Failure      404  {object}  map[string]any
// @Router       /admin/bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.bookings.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "booking deleted", nil)
}
