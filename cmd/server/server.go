package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/autopneuma/autopneuma-api/internal/config"
	"github.com/autopneuma/autopneuma-api/internal/domain/moderation"
	"github.com/autopneuma/autopneuma-api/internal/domain/scripture"
	"github.com/autopneuma/autopneuma-api/internal/domain/tool"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/database"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/llmclient"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/logger"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/observability"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/repository/moderationrepo"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/repository/projectrepo"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/repository/toolrepo"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/toolclient"
	"github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver"
	v1 "github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/routes/v1"
)

// Application bundles the long-running pieces of the service.
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	completer := llmclient.NewClient(cfg.OpenAIAPIKey)

	moderationService := moderation.NewService(
		completer,
		moderationrepo.NewLogPostgresRepository(db),
		moderation.Config{
			Enabled:   cfg.EnableModeration,
			Model:     cfg.OpenAIModerationModel,
			Threshold: cfg.ModerationThreshold,
		},
		log,
	)

	scriptureAssistant := scripture.NewAssistant(
		completer,
		scripture.Config{
			Enabled:        cfg.EnableScriptureAssistant,
			Model:          cfg.OpenAIModel,
			DefaultVersion: cfg.DefaultBibleVersion,
		},
		log,
	)

	toolService := tool.NewService(
		toolrepo.NewPostgresRepository(db),
		toolrepo.NewExecutionPostgresRepository(db),
		projectrepo.NewPostgresRepository(db),
		toolclient.NewClient(cfg.ToolCallTimeout),
		log,
	)

	routes := v1.NewRoutes(cfg, moderationService, scriptureAssistant, toolService)
	httpServer := httpserver.New(cfg, log, db, routes)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
