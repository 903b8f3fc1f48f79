package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/ports"
)

// AdminHandler is the boundary for the user directory: registration, role
// management, credential rotation, activation toggling, and deletion.
type AdminHandler struct {
	userService ports.UserService
	hasher      ports.PasswordHasher
}

func NewAdminHandler(userService ports.UserService, hasher ports.PasswordHasher) *AdminHandler {
	return &AdminHandler{userService: userService, hasher: hasher}
}

// ListUsers returns every user with their role sets.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SuccessResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "users fetched", map[string]any{"users": users})
}

// SaveUser registers a new user with an initial role.
//
// The existence checks below are advisory only: they produce a friendly
// field-level message on the common path, but the unique indexes remain the
// authoritative guard. A concurrent registration racing past both checks
// still surfaces as a 409 conflict from the write.
//
// @Summary      Register a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerUserRequest  true  "Registration payload"
// @Success      200   {object}  SuccessResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /admin/user/save [post]
func (h *AdminHandler) SaveUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if taken, err := h.userService.EmailExists(ctx, req.Email); err != nil {
		return err
	} else if taken {
		return domain.NewConflictError("email", req.Email)
	}

	if taken, err := h.userService.UsernameExists(ctx, req.Username); err != nil {
		return err
	} else if taken {
		return domain.NewConflictError("username", req.Username)
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Status:   true,
	}

	saved, err := h.userService.Register(ctx, user, req.Role)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "add user successful", map[string]any{"email": saved.Email})
}

// SaveRole creates a new role definition.
//
// @Summary      Create a role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role payload"
// @Success      200   {object}  SuccessResponse
// @Failure      409   {object}  map[string]any
// @Router       /admin/role/save [post]
func (h *AdminHandler) SaveRole(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := h.userService.CreateRole(c.Request().Context(), &domain.Role{Name: req.Name})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "add role successful", map[string]any{"role": role.Name})
}

// AddRoleToUser grants an existing role to an existing user.
//
// @Summary      Grant a role to a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleToUserRequest  true  "Grant payload"
// @Success      200   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Router       /admin/role/addtouser [post]
func (h *AdminHandler) AddRoleToUser(c echo.Context) error {
	var req roleToUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userService.GrantRole(c.Request().Context(), req.Email, req.RoleName); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "add role to user successful", map[string]any{
		"email": req.Email,
		"role":  req.RoleName,
	})
}

// ToggleActive flips a user's active flag.
//
// @Summary      Toggle a user's active flag
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  SuccessResponse
// @Failure      404       {object}  map[string]any
// @Router       /admin/user/{username}/active [put]
func (h *AdminHandler) ToggleActive(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.userService.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		return err
	}

	updated, err := h.userService.ToggleActive(ctx, user)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "user status updated", map[string]any{"user": updated})
}

// UpdatePassword rotates a user's credential.
//
// @Summary      Update a user's password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePasswordRequest  true  "Password payload"
// @Success      200   {object}  SuccessResponse
// @Failure      404   {object}  map[string]any
// @Router       /admin/user/password [put]
func (h *AdminHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	user, err := h.userService.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if _, err := h.userService.UpdatePassword(ctx, user, req.NewPassword); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "password updated", map[string]any{"email": req.Email})
}

// DeleteUser hard-deletes a user row by username.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  SuccessResponse
// @Failure      404       {object}  map[string]any
// @Router       /admin/user/{username} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	deleted, err := h.userService.DeleteByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "user deleted", map[string]any{"user": deleted})
}
