package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/feedbackportal/internal/config"
	"github.com/polkiloo/feedbackportal/internal/server/http/handlers"
	"github.com/polkiloo/feedbackportal/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PortalFacade, cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	corsHandler, err := middleware.CORS(cfg.AllowedOrigins)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(corsHandler)
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	feedbackHandler := handlers.NewFeedbackHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Check)

	api := engine.Group("/backend1")
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("", feedbackHandler.Submit)
	api.GET("/customer-feedback", feedbackHandler.List)

	return engine, nil
}
