package controllerImp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"vibetravel/entities"
	"vibetravel/pkg/auth/controller"
	"vibetravel/pkg/middleware"
)

type authCtrl struct {
	db       *gorm.DB
	secret   string
	lifetime time.Duration
}

func New(db *gorm.DB, secret string, lifetime time.Duration) controller.AuthController {
	return &authCtrl{db: db, secret: secret, lifetime: lifetime}
}

// DevLogin upserts a user by email and sets a signed session cookie.
// Development stand-in for a real identity provider.
func (h *authCtrl) DevLogin(c echo.Context) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || !strings.Contains(email, "@") {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "valid email required"})
	}

	var u entities.User
	err := h.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = entities.User{ID: uuid.New(), Email: email}
		err = h.db.Create(&u).Error
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	tok, err := middleware.IssueToken(h.secret, u.ID, h.lifetime)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(h.lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]string{"user_id": u.ID.String(), "email": u.Email})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	}
	return c.JSON(http.StatusOK, map[string]string{"user_id": uid.String()})
}
