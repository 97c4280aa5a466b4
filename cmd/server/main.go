package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"vibetravel/config"
	"vibetravel/database"
	"vibetravel/router"

	// Auth
	authCtrlImp "vibetravel/pkg/auth/controllerImp"

	// Notes
	noteCtrlImp "vibetravel/pkg/note/controllerImp"
	noteRepoImp "vibetravel/pkg/note/repositoryImp"
	noteSvcImp "vibetravel/pkg/note/serviceImp"

	// Profile
	profileCtrlImp "vibetravel/pkg/profile/controllerImp"
	profileRepoImp "vibetravel/pkg/profile/repositoryImp"

	// Plans
	planCtrlImp "vibetravel/pkg/plan/controllerImp"
	planRepoImp "vibetravel/pkg/plan/repositoryImp"
	planSvcImp "vibetravel/pkg/plan/serviceImp"

	// LLM
	"vibetravel/pkg/ai"

	// Health
	healthCtrlImp "vibetravel/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + migrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) LLM (mock fallback when no endpoint is configured)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel,
			time.Duration(cfg.LLMTimeoutSec)*time.Second)
	} else {
		log.Printf("[ai] no LLM endpoint configured, using mock client")
		llm = ai.NewMock()
	}

	// 5) Repos
	noteRepo := noteRepoImp.New(db)
	planRepo := planRepoImp.New(db)
	profileRepo := profileRepoImp.New(db)

	// 6) Services
	noteSvc := noteSvcImp.New(noteRepo)
	planSvc := planSvcImp.NewPlanService(llm, planRepo, noteRepo, profileRepo)

	// 7) Controllers
	authCtrl := authCtrlImp.New(db, cfg.JWTSecret, time.Duration(cfg.JWTLifetimeSec)*time.Second)
	noteCtrl := noteCtrlImp.New(noteSvc)
	planCtrl := planCtrlImp.NewPlanCtrl(planSvc)
	profileCtrl := profileCtrlImp.New(profileRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(e, cfg.JWTSecret, authCtrl, noteCtrl, planCtrl, profileCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
