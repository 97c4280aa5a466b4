package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vibetravel/pkg/apperr"
	"vibetravel/pkg/middleware"
	"vibetravel/pkg/plan/controller"
	"vibetravel/pkg/plan/service"
	"vibetravel/pkg/plan/types"
)

type planCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) controller.PlanController { return &planCtrl{svc: svc} }

func fail(c echo.Context, err error) error {
	ae := apperr.From(err)
	return c.JSON(ae.Status, ae)
}

func noteID(c echo.Context) uint {
	id, _ := strconv.Atoi(c.Param("note_id"))
	return uint(id)
}

func (h *planCtrl) GetActive(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	p, err := h.svc.GetActive(noteID(c), uid)
	if err != nil {
		return fail(c, err)
	}
	if p == nil {
		// No plan yet; the client seeds an empty draft from this.
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *planCtrl) Generate(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.svc.Generate(c.Request().Context(), noteID(c), uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *planCtrl) CreateOrAccept(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	var in types.CreateOrAcceptIn
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.CreateOrAccept(noteID(c), uid, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *planCtrl) Update(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	var in types.UpdateIn
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.Update(noteID(c), uid, in.PlanText)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
