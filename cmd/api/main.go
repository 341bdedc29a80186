package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loan-guidance-api/internal/adapter/http"
	mw "loan-guidance-api/internal/adapter/middleware"
	"loan-guidance-api/internal/config"
	"loan-guidance-api/internal/infrastructure/cache"
	"loan-guidance-api/internal/usecase/analysis"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	uc := analysis.NewUsecase(cfg.AIEnabled)
	log.Printf("loan guidance system initialized, assistant key configured: %v", uc.AIEnabled())

	h := httpadp.NewHandler()
	ah := httpadp.NewAnalysisHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	// tighten origins in production via CORS_ALLOW_ORIGINS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	if cfg.RedisAddr != "" {
		rdb, err := cache.Open(context.Background(), cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		e.Use(mw.ResponseCache(rdb, time.Duration(cfg.CacheTTLSecs)*time.Second))
	}

	// routes
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.POST("/analyze", ah.Analyze)
	e.POST("/visualization", ah.Visualization)
	e.POST("/enhanced-visualization", ah.EnhancedVisualization)
	e.POST("/payment-schedule", ah.PaymentSchedule)
	e.POST("/recommendations", ah.Recommendations)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
