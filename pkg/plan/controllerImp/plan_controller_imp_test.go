package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vibetravel/database"
	"vibetravel/entities"
	"vibetravel/pkg/ai"
	"vibetravel/pkg/middleware"
	noteRepoImp "vibetravel/pkg/note/repositoryImp"
	planRepoImp "vibetravel/pkg/plan/repositoryImp"
	"vibetravel/pkg/plan/serviceImp"
	"vibetravel/pkg/plan/types"
	profileRepoImp "vibetravel/pkg/profile/repositoryImp"
)

type fixture struct {
	e     *echo.Echo
	db    *gorm.DB
	uid   uuid.UUID
	note  uint
	token string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	uid := uuid.New()
	require.NoError(t, db.Create(&entities.User{ID: uid, Email: "trav@example.com"}).Error)
	n := entities.Note{
		UserID: uid, Title: "Trip to Paris", Place: "Paris, France",
		DateFrom:       time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		DateTo:         time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
		NumberOfPeople: 2,
	}
	require.NoError(t, db.Create(&n).Error)

	svc := serviceImp.NewPlanService(ai.NewMock(), planRepoImp.New(db), noteRepoImp.New(db), profileRepoImp.New(db))
	ctrl := NewPlanCtrl(svc)

	const secret = "test-secret"
	e := echo.New()
	g := e.Group("", middleware.Auth(secret))
	g.GET("/notes/:note_id/plan", ctrl.GetActive)
	g.POST("/notes/:note_id/plan/generate", ctrl.Generate)
	g.POST("/notes/:note_id/plan", ctrl.CreateOrAccept)
	g.PUT("/notes/:note_id/plan", ctrl.Update)

	tok, err := middleware.IssueToken(secret, uid, time.Hour)
	require.NoError(t, err)

	return &fixture{e: e, db: db, uid: uid, note: n.ID, token: tok}
}

func (f *fixture) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: f.token})
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestPlanEndpoints_FullLifecycle(t *testing.T) {
	f := setup(t)
	path := "/notes/1/plan"

	// No plan yet: 204.
	rec := f.request(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Generate: 201 with a generation id.
	rec = f.request(t, http.MethodPost, path+"/generate", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var gen types.GenerateOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gen))
	assert.NotEqual(t, uuid.Nil, gen.GenerationID)
	assert.Equal(t, entities.StatusPendingAI, gen.Status)

	// Accept: 201 with the persisted plan.
	rec = f.request(t, http.MethodPost, path, `{"generation_id":"`+gen.GenerationID.String()+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var p entities.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, entities.ProvenanceAI, p.Provenance)
	assert.Equal(t, gen.PlanText, p.PlanText)

	// Second create: 409.
	rec = f.request(t, http.MethodPost, path, `{"plan_text":"another"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Update: 200, provenance becomes hybrid.
	rec = f.request(t, http.MethodPut, path, `{"plan_text":"revised plan"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, entities.ProvenanceHybrid, p.Provenance)
	assert.Equal(t, "revised plan", p.PlanText)

	// Get: 200 with the updated plan.
	rec = f.request(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "revised plan", p.PlanText)
}

func TestPlanEndpoints_UpdateWithoutPlan404(t *testing.T) {
	f := setup(t)
	rec := f.request(t, http.MethodPut, "/notes/1/plan", `{"plan_text":"text"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanEndpoints_CreateValidation422(t *testing.T) {
	f := setup(t)
	rec := f.request(t, http.MethodPost, "/notes/1/plan", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPlanEndpoints_UnknownNote404(t *testing.T) {
	f := setup(t)
	rec := f.request(t, http.MethodGet, "/notes/999/plan", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
