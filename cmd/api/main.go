package main

import (
	"context"
	"log"
	"log/slog"

	"newsmood/internal/app"
	"newsmood/internal/config"
	"newsmood/internal/handler"
	"newsmood/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	_, err = logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("error setting up logging: %v", err)
	}
	cfg.LogWarnings()

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error building app: %v", err)
	}
	defer a.Close()

	digestHandler := handler.NewDigestHandler(a.Digest)
	queryLogHandler := handler.NewQueryLogHandler(a.QueryLog)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))
	r.Use(handler.RequestID())

	handler.RegisterRoutes(r, digestHandler, queryLogHandler)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
