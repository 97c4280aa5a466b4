package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DBPath         string
	JWTSecret      string
	JWTLifetimeSec int
	LLMEndpoint    string
	LLMAPIKey      string
	LLMModel       string
	LLMTimeoutSec  int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] no .env file found: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Printf("[cfg] bad int for %s, using %d", k, def)
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		DBPath:         get("DB_PATH", "vibetravel.db"),
		JWTSecret:      get("JWT_SECRET", "dev-secret-change-me"),
		JWTLifetimeSec: getInt("JWT_LIFETIME_SECONDS", 60*60*24*7),
		LLMEndpoint:    get("LLM_ENDPOINT", ""),
		LLMAPIKey:      get("LLM_API_KEY", ""),
		LLMModel:       get("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeoutSec:  getInt("LLM_TIMEOUT_SECONDS", 25),
	}
	log.Printf("[cfg] port=%s db=%s model=%s", cfg.Port, cfg.DBPath, cfg.LLMModel)
	return cfg
}
