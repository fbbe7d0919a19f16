package main

import (
	"log"
	"os"
	"strings"
	"time"

	"akcayapi/internal/catalog"
	"akcayapi/internal/quote"
	"akcayapi/internal/recommend"
	"akcayapi/internal/router"
	"akcayapi/internal/wizard"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	// ───────────────────────── CATALOG ─────────────────────────
	store, err := catalog.NewDefault()
	if err != nil {
		log.Fatalf("❌ Catalog load failed: %v", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	recommendService := recommend.NewService(store)
	quoteEngine := quote.NewEngine(store)
	sessionStore := wizard.NewStore(store.Criteria())

	handlers := router.Handlers{
		Catalog:   catalog.NewHandler(store),
		Recommend: recommend.NewHandler(recommendService),
		Quote:     quote.NewHandler(quoteEngine),
		Wizard:    wizard.NewHandler(sessionStore, recommendService),
	}

	// ───────────────────────── HTTP ─────────────────────────
	corsMiddleware := cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	r := router.New(handlers, corsMiddleware)

	log.Printf("🚀 API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
