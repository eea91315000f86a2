package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/autopneuma/autopneuma-api/internal/config"
	"github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/middlewares"
	v1 "github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/routes/v1"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
	db     *gorm.DB
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, log zerolog.Logger, db *gorm.DB, routes *v1.Routes) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middlewares.Recovery(log))
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.LoggingMiddleware(log))
	engine.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))

	server := &HttpServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
		db:     db,
	}
	server.registerCoreRoutes()
	routes.Register(engine)

	return server
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *HttpServer) registerCoreRoutes() {
	s.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": s.cfg.ServiceName,
			"version": s.cfg.Version,
			"status":  "operational",
			"features": gin.H{
				"ai_moderation":       s.cfg.EnableModeration,
				"scripture_assistant": s.cfg.EnableScriptureAssistant,
				"community_ai_tools":  s.cfg.EnableCommunityTools,
			},
		})
	})

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	s.engine.GET("/readyz", func(c *gin.Context) {
		sqlDB, err := s.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if s.cfg.EnableMetrics {
		s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}
