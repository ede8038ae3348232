package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	IssueToken(c echo.Context) error
	WhoAmI(c echo.Context) error
}
