package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petcare/pet-service/internal/core/ports"
)

type createBillRequest struct {
	PetID         string `json:"pet_id"         validate:"required,uuid4"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card transfer"`
}

// BillingHandler handles HTTP requests for billing records. The buyer is
// resolved from the token's email claim.
type BillingHandler struct {
	billing ports.BillingService
	users   ports.UserService
}

func NewBillingHandler(billing ports.BillingService, users ports.UserService) *BillingHandler {
	return &BillingHandler{billing: billing, users: users}
}

// Create records a pet purchase for the authenticated user.
//
// @Summary      Buy a pet
// @Tags         bills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBillRequest  true  "Purchase payload"
// @Success      201   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /bills [post]
func (h *BillingHandler) Create(c echo.Context) error {
	var req createBillRequest
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

	bill, err := h.billing.Create(ctx, ports.CreateBillInput{
		UserID:        user.ID,
		PetID:         req.PetID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "purchase recorded", map[string]any{"bill": bill})
}

// ListOwn returns the authenticated user's bills.
//
// @Summary      List own bills
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse
// @Router       /bills [get]
func (h *BillingHandler) ListOwn(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	user, err := h.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	bills, err := h.billing.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "bills fetched", map[string]any{"bills": bills})
}

// ListAll returns a page of all bills.
//
// @Summary      List all bills
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  SuccessResponse
// @Router       /admin/bills [get]
func (h *BillingHandler) ListAll(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.billing.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "bills fetched", map[string]any{
		"bills": result.Items,
		"pagination": paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get returns a single bill. Non-admin callers only see their own.
//
// @Summary      Get a bill
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Bill id"
// @Success      200  {object}  SuccessResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /bills/{id} [get]
func (h *BillingHandler) Get(c echo.Context) error {
	email, roles, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	bill, err := h.billing.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	if !isAdmin(roles) {
		user, err := h.users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if bill.UserID != user.ID {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}

	return respond(c, http.StatusOK, "bill fetched", map[string]any{"bill": bill})
}
