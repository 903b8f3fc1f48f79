package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/ports"
)

// PetHandler handles HTTP requests for the pet catalog.
type PetHandler struct {
	service ports.PetService
}

func NewPetHandler(service ports.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// List returns a page of the pet catalog.
//
// @Summary      List pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  SuccessResponse
// @Router       /pets [get]
func (h *PetHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "pets fetched", map[string]any{
		"pets": result.Items,
		"pagination": paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get returns a single pet by id.
//
// @Summary      Get a pet
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pet id"
// @Success      200  {object}  SuccessResponse
// @Failure      404  {object}  map[string]any
// @Router       /pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	pet, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "pet fetched", map[string]any{"pet": pet})
}

// Create adds a pet to the catalog.
//
// @Summary      Create a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPetRequest  true  "Pet payload"
// @Success      201   {object}  SuccessResponse
// @Router       /pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pet := &domain.Pet{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	saved, err := h.service.Create(c.Request().Context(), pet)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "pet created", map[string]any{"pet": saved})
}

// Update edits the catalog fields of a pet.
//
// @Summary      Update a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Pet id"
// @Param        body  body      updatePetRequest  true  "Fields to update"
// @Success      200   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Router       /pets/{id} [put]
func (h *PetHandler) Update(c echo.Context) error {
	var req updatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pet, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePetInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "pet updated", map[string]any{"pet": pet})
}

// SetStatus flips a pet's availability flag.
//
// @Summary      Set pet availability
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Pet id"
// @Param        body  body      setStatusRequest  true  "Status payload"
// @Success      200   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Router       /pets/{id}/status [put]
func (h *PetHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pet, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), *req.Status)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "pet status updated", map[string]any{"pet": pet})
}

// ClearImage removes a pet's image URL.
//
// @Summary      Clear a pet's image
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pet id"
// @Success      200  {object}  SuccessResponse
// @Failure      404  {object}  map[string]any
// @Router       /pets/{id}/image [delete]
func (h *PetHandler) ClearImage(c echo.Context) error {
	pet, err := h.service.ClearImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "pet image cleared", map[string]any{"pet": pet})
}

// Delete removes a pet from the catalog.
//
// @Summary      Delete a pet
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Pet id"
// @Success      200  {object}  SuccessResponse
// @Failure      404  {object}  map[string]any
// @Router       /pets/{id} [delete]
func (h *PetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "pet deleted", nil)
}

// DeleteMany removes several pets at once.
//
// @Summary      Delete multiple pets
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deletePetsRequest  true  "Pet ids"
// @Success      200   {object}  SuccessResponse
// @Router       /pets [delete]
func (h *PetHandler) DeleteMany(c echo.Context) error {
	var req deletePetsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.DeleteMany(c.Request().Context(), req.IDs); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "pets deleted", map[string]any{"count": len(req.IDs)})
}
