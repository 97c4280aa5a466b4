package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vibetravel/entities"
	"vibetravel/pkg/apperr"
	"vibetravel/pkg/middleware"
	"vibetravel/pkg/profile/repository"
)

type ProfileCtrl struct{ profiles repository.ProfileRepository }

func New(profiles repository.ProfileRepository) *ProfileCtrl {
	return &ProfileCtrl{profiles: profiles}
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	}
	p, err := h.profiles.FindByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if p == nil {
		p = &entities.UserProfile{UserID: uid}
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) Put(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	}
	var body struct {
		TravelStyle   *entities.TravelStyle `json:"travel_style"`
		PreferredPace *entities.TravelPace  `json:"preferred_pace"`
		Budget        *entities.Budget      `json:"budget"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validateEnums(body.TravelStyle, body.PreferredPace, body.Budget); err != nil {
		ae := apperr.From(err)
		return c.JSON(ae.Status, ae)
	}
	p := &entities.UserProfile{
		UserID:        uid,
		TravelStyle:   body.TravelStyle,
		PreferredPace: body.PreferredPace,
		Budget:        body.Budget,
	}
	if err := h.profiles.Upsert(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func validateEnums(style *entities.TravelStyle, pace *entities.TravelPace, budget *entities.Budget) error {
	if style != nil {
		switch *style {
		case entities.StyleRelax, entities.StyleAdventure, entities.StyleCulture, entities.StyleParty:
		default:
			return apperr.Validation("invalid travel_style %q", *style)
		}
	}
	if pace != nil {
		switch *pace {
		case entities.PaceCalm, entities.PaceModerate, entities.PaceIntense:
		default:
			return apperr.Validation("invalid preferred_pace %q", *pace)
		}
	}
	if budget != nil {
		switch *budget {
		case entities.BudgetLow, entities.BudgetMedium, entities.BudgetHigh:
		default:
			return apperr.Validation("invalid budget %q", *budget)
		}
	}
	return nil
}
