package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/ports"
)

type createOfferingRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"max=512"`
	Price       int64  `json:"price"       validate:"required,gt=0"`
}

type updateOfferingRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=2,max=64"`
	Description *string `json:"description" validate:"omitempty,max=512"`
	Price       *int64  `json:"price"       validate:"omitempty,gt=0"`
}

// OfferingHandler handles HTTP requests for bookable service offerings.
type OfferingHandler struct {
	service ports.OfferingService
}

func NewOfferingHandler(service ports.OfferingService) *OfferingHandler {
	return &OfferingHandler{service: service}
}

// List returns all service offerings.
//
// @Summary      List service offerings
// @Tags         offerings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse
// @Router       /offerings [get]
func (h *OfferingHandler) List(c echo.Context) error {
	offerings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "offerings fetched", map[string]any{"offerings": offerings})
}

// Get returns a single offering by id.
//
// @Summary      Get a service offering
// @Tags         offerings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Offering id"
// @Success      200  {object}  SuccessResponse
// @Failure      404  {object}  map[string]any
// @Router       /offerings/{id} [get]
func (h *OfferingHandler) Get(c echo.Context) error {
	offering, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "offering fetched", map[string]any{"offering": offering})
}

// Create adds a new bookable offering.
//
// @Summary      Create a service offering
// @Tags         offerings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOfferingRequest  true  "Offering payload"
// @Success      201   {object}  SuccessResponse
// @Failure      409   {object}  map[string]any
// @Router       /offerings [post]
func (h *OfferingHandler) Create(c echo.Context) error {
	var req createOfferingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offering := &domain.Offering{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	saved, err := h.service.Create(c.Request().Context(), offering)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "offering created", map[string]any{"offering": saved})
}

// Update edits an offering.
//
// @Summary      Update a service offering
// @Tags         offerings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Offering id"
// @Param        body  body      updateOfferingRequest  true  "Fields to update"
// @Success      200   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Router       /offerings/{id} [put]
func (h *OfferingHandler) Update(c echo.Context) error {
	var req updateOfferingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offering, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateOfferingInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "offering updated", map[string]any{"offering": offering})
}

// SetStatus activates or deactivates an offering.
//
// @Summary      Set offering status
// @Tags         offerings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Offering id"
// @Param        body  body      setStatusRequest  true  "Status payload"
// @Success      200   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Router       /offerings/{id}/status [put]
func (h *OfferingHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offering, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), *req.Status)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "offering status updated", map[string]any{"offering": offering})
}

// Delete removes an offering.
//
// @Summary      Delete a service offering
// @Tags         offerings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Offering id"
// @Success      200  {object}  SuccessResponse
// @Failure      404  {object}  map[string]any
// @Router       /offerings/{id} [delete]
func (h *OfferingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "offering deleted", nil)
}
