package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"vibetravel/entities"
	"vibetravel/pkg/apperr"
	"vibetravel/pkg/middleware"
	"vibetravel/pkg/note/controller"
	"vibetravel/pkg/note/service"
)

type noteCtrl struct{ svc service.NoteService }

func New(svc service.NoteService) controller.NoteController { return &noteCtrl{svc: svc} }

type noteBody struct {
	Title          string `json:"title"`
	Place          string `json:"place"`
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
	NumberOfPeople int    `json:"number_of_people"`
	KeyIdeas       string `json:"key_ideas"`
}

func (b *noteBody) toInput() (service.NoteInput, error) {
	from, err := time.Parse("2006-01-02", b.DateFrom)
	if err != nil {
		return service.NoteInput{}, apperr.Validation("date_from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", b.DateTo)
	if err != nil {
		return service.NoteInput{}, apperr.Validation("date_to must be YYYY-MM-DD")
	}
	return service.NoteInput{
		Title:          b.Title,
		Place:          b.Place,
		DateFrom:       from,
		DateTo:         to,
		NumberOfPeople: b.NumberOfPeople,
		KeyIdeas:       b.KeyIdeas,
	}, nil
}

func fail(c echo.Context, err error) error {
	ae := apperr.From(err)
	return c.JSON(ae.Status, ae)
}

func (h *noteCtrl) Create(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	var body noteBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in, err := body.toInput()
	if err != nil {
		return fail(c, err)
	}
	n, err := h.svc.Create(uid, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *noteCtrl) Get(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	id, _ := strconv.Atoi(c.Param("note_id"))
	n, err := h.svc.Get(uint(id), uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

func (h *noteCtrl) List(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	ns, total, err := h.svc.List(uid, service.ListQuery{
		Search: c.QueryParam("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return fail(c, err)
	}
	if ns == nil {
		ns = []entities.Note{}
	}
	return c.JSON(http.StatusOK, map[string]any{"items": ns, "total": total})
}

func (h *noteCtrl) Update(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	id, _ := strconv.Atoi(c.Param("note_id"))
	var body noteBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in, err := body.toInput()
	if err != nil {
		return fail(c, err)
	}
	n, err := h.svc.Update(uint(id), uid, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

func (h *noteCtrl) Delete(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return fail(c, err)
	}
	id, _ := strconv.Atoi(c.Param("note_id"))
	if err := h.svc.Delete(uint(id), uid); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
