package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/service"
)

// AuthHandler handles token endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenRequest represents a token issue request.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse represents a token issue response.
type TokenResponse struct {
	Token string `json:"token"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	Token string `json:"token"`
}

// LogoutResponse represents a logout response.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// IssueToken godoc
// @Summary Issue a short-lived access token for an authenticated email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	token, err := h.authService.IssueToken(c.Request().Context(), req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Logout godoc
// @Summary Revoke the presented token until its natural expiry
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest false "Token to revoke; falls back to the Authorization header"
// @Success 200 {object} LogoutResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	_ = c.Bind(&req)

	token := req.Token
	if token == "" {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token = strings.TrimPrefix(header, "Bearer ")
	}
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing token",
			Code:  "MISSING_TOKEN",
		})
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	}

	return c.JSON(http.StatusOK, LogoutResponse{Success: true})
}
