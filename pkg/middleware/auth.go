package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"mkulima/entities"
	"mkulima/pkg/user/repository"
)

// ContextUserKey is where RequireToken stores the authenticated user.
const ContextUserKey = "current_user"

// RequireToken verifies a Bearer HS256 token, loads its subject from the
// user store and puts the record in the request context. Failures are
// returned to the caller directly instead of mutating ambient state.
func RequireToken(secret string, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "Authorization token is missing",
				})
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "Invalid authorization header format",
				})
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				msg := "Invalid token. Please log in again."
				if err != nil && strings.Contains(err.Error(), "expired") {
					msg = "Token expired. Please log in again."
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   msg,
				})
			}

			sub, err := token.Claims.GetSubject()
			if err != nil || sub == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "Invalid token. Please log in again.",
				})
			}
			u, err := users.FindByID(sub)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "User not found",
				})
			}

			c.Set(ContextUserKey, u)
			return next(c)
		}
	}
}

// RequireAdmin composes on top of RequireToken and rejects non-admins.
func RequireAdmin(secret string, users repository.UserRepository) echo.MiddlewareFunc {
	withToken := RequireToken(secret, users)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return withToken(func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil || !u.IsAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"error":   "Admin privileges required",
				})
			}
			return next(c)
		})
	}
}

// CurrentUser returns the authenticated user, or nil outside RequireToken.
func CurrentUser(c echo.Context) *entities.User {
	u, _ := c.Get(ContextUserKey).(*entities.User)
	return u
}
