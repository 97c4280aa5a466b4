package router

import (
	"github.com/labstack/echo/v4"

	authctrl "vibetravel/pkg/auth/controller"
	"vibetravel/pkg/middleware"
	notectrl "vibetravel/pkg/note/controller"
	planctrl "vibetravel/pkg/plan/controller"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl authctrl.AuthController,
	noteCtrl notectrl.NoteController,
	planCtrl planctrl.PlanController,
	profileCtrl interface {
		Get(echo.Context) error
		Put(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.POST("/auth/dev-login", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("", middleware.Auth(jwtSecret))

	api.GET("/auth/whoami", authCtrl.WhoAmI)

	api.GET("/profile", profileCtrl.Get)
	api.PUT("/profile", profileCtrl.Put)

	api.POST("/notes", noteCtrl.Create)
	api.GET("/notes", noteCtrl.List)
	api.GET("/notes/:note_id", noteCtrl.Get)
	api.PUT("/notes/:note_id", noteCtrl.Update)
	api.DELETE("/notes/:note_id", noteCtrl.Delete)

	api.GET("/notes/:note_id/plan", planCtrl.GetActive)
	api.POST("/notes/:note_id/plan/generate", planCtrl.Generate)
	api.POST("/notes/:note_id/plan", planCtrl.CreateOrAccept)
	api.PUT("/notes/:note_id/plan", planCtrl.Update)

	return e
}
