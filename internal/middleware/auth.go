package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/sharearahammed/mega-earning-server/internal/auth"
	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/service"
)

const currentUserKey = "current_user"

// TokenClaims extracts the typed claims echojwt stored on the context.
func TokenClaims(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}

// CurrentUser returns the user record resolved by Authenticated.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(currentUserKey).(*model.User)
	return user, ok
}

// Authenticated rejects blacklisted tokens and resolves the token's email to
// a stored user record, which it puts on the context for handlers and role
// gates. Runs after echojwt has already verified the signature and expiry.
func Authenticated(users service.UserService, tokens auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := TokenClaims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "invalid token",
					Code:  "INVALID_TOKEN",
				})
			}

			if tokens.IsTokenBlacklisted(c.Request().Context(), claims.ID) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "token revoked",
					Code:  "TOKEN_REVOKED",
				})
			}

			user, err := users.Get(c.Request().Context(), claims.Email)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "unknown user",
					Code:  "UNKNOWN_USER",
				})
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// RequireRole forbids access unless the resolved user holds one of the
// allowed roles. Must run after Authenticated.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHENTICATED",
				})
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "forbidden",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
