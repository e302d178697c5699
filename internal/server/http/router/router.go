package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/iscore/internal/config"
	pkgAuth "github.com/polkiloo/iscore/internal/pkg/auth"
	"github.com/polkiloo/iscore/internal/server/http/handlers"
	"github.com/polkiloo/iscore/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(
	facade handlers.ViewFacade,
	health handlers.HealthChecker,
	verifier pkgAuth.KeyVerifier,
	cfg *config.Config,
	logger *slog.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	healthHandler := handlers.NewHealthHandler(health, logger)
	viewHandler := handlers.NewViewHandler(facade, cfg.Currency, logger)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	api.Use(middleware.APIKeyRequired(verifier))
	api.Use(middleware.LookupTimeout(cfg.LookupTimeout))
	api.GET("/views/:view", viewHandler.Show)

	return engine
}
