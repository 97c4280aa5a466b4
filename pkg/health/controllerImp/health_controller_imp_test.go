package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHealthOK(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewHealthCtrl(db).Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "ok", body.Database)
	assert.NotEmpty(t, body.Time)
}

func TestHealthNoDatabase(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewHealthCtrl(nil).Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.NotEqual(t, "ok", body.Database)
}
