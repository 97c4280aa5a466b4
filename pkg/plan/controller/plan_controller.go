package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	GetActive(c echo.Context) error
	Generate(c echo.Context) error
	CreateOrAccept(c echo.Context) error
	Update(c echo.Context) error
}
