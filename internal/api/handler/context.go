package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petcare/pet-service/internal/core/domain"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: an empty email means the middleware
// did not run or the token carries no usable identity.
func ctxIdentity(c echo.Context) (email string, roles []string, err error) {
	email, _ = c.Get("email").(string)
	if email == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	roles, _ = c.Get("roles").([]string)
	return email, roles, nil
}

// isAdmin reports whether the claim set includes the admin role.
func isAdmin(roles []string) bool {
	for _, r := range roles {
		if r == domain.RoleAdmin {
			return true
		}
	}
	return false
}
