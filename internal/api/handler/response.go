package handler

import "github.com/labstack/echo/v4"

// SuccessResponse is the canonical success envelope for all API responses.
type SuccessResponse struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

// respond renders the success envelope with the given HTTP status.
func respond(c echo.Context, status int, message string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	return c.JSON(status, SuccessResponse{
		Status:  status,
		Message: message,
		Success: true,
		Data:    data,
	})
}
