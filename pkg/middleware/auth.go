package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vibetravel/pkg/apperr"
)

const SessionCookie = "vibetravel_session"

// Auth reads the session JWT from the cookie (or Authorization bearer
// header) and puts the user id into the echo context. Requests without a
// valid token get 401.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				raw = ck.Value
			}
			if raw == "" {
				if h := c.Request().Header.Get("Authorization"); len(h) > 7 && h[:7] == "Bearer " {
					raw = h[7:]
				}
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session token"})
			}
			uid, err := ParseToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid session token"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// IssueToken signs a session token for the given user.
func IssueToken(secret string, uid uuid.UUID, lifetime time.Duration) (string, error) {
	claims := jwt.StandardClaims{
		Subject:   uid.String(),
		ExpiresAt: time.Now().Add(lifetime).Unix(),
		IssuedAt:  time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates a session token and returns the user id.
func ParseToken(secret, raw string) (uuid.UUID, error) {
	var claims jwt.StandardClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, apperr.Unauthorized("invalid session token")
	}
	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperr.Unauthorized("invalid session subject")
	}
	return uid, nil
}

// UserID pulls the authenticated user id set by Auth out of the context.
func UserID(c echo.Context) (uuid.UUID, error) {
	uid, ok := c.Get("uid").(uuid.UUID)
	if !ok {
		return uuid.Nil, apperr.Unauthorized("not authenticated")
	}
	return uid, nil
}
