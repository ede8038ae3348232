package controllerImp

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"mkulima/pkg/auth/controller"
	"mkulima/pkg/middleware"
	"mkulima/pkg/user/repository"
)

type authCtrl struct {
	secret string
	users  repository.UserRepository
}

func New(secret string, users repository.UserRepository) controller.AuthController {
	return &authCtrl{secret: secret, users: users}
}

type tokenReq struct {
	UserID string `json:"user_id"`
}

// IssueToken is the development login: it signs a 24h token for any
// known user id. There is no credential check yet; the mobile client
// does not carry passwords.
func (h *authCtrl) IssueToken(c echo.Context) error {
	var req tokenReq
	if err := c.Bind(&req); err != nil || req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "user_id is required",
		})
	}
	u, err := h.users.FindByID(req.UserID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"error":   "User not found",
		})
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   u.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	})
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to sign token: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   signed,
		"user_id": u.ID,
	})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	u := middleware.CurrentUser(c)
	if u == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   "Authorization token is missing",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": u})
}
