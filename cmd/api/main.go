package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rafflewise/draw-engine/api/routes"
	"github.com/rafflewise/draw-engine/internal/config"
	"github.com/rafflewise/draw-engine/internal/events"
	"github.com/rafflewise/draw-engine/internal/handlers"
	"github.com/rafflewise/draw-engine/internal/metrics"
	"github.com/rafflewise/draw-engine/internal/models"
	mongorepo "github.com/rafflewise/draw-engine/internal/repositories/mongodb"
	"github.com/rafflewise/draw-engine/internal/services"
	"github.com/rafflewise/draw-engine/pkg/beacon"
	"github.com/rafflewise/draw-engine/pkg/jwt"
	"github.com/rafflewise/draw-engine/pkg/mongodb"
	"github.com/rafflewise/draw-engine/pkg/notify"
	"github.com/rafflewise/draw-engine/pkg/randpick"
)

func main() {
	// A .env file is optional; deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	if cfg.JWT.Secret == "" {
		slog.Error("JWT_SECRET is not configured")
		os.Exit(1)
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()
	db := mongoClient.Database(cfg.MongoDB.Database)

	// Shared infrastructure
	m := metrics.New()
	tokenService := jwt.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		natsPublisher, err := events.NewNATSPublisher(cfg.Events.NATSURL)
		if err != nil {
			slog.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		publisher = natsPublisher
	}
	defer publisher.Close()

	var notifier notify.Notifier
	if cfg.Notify.MockNotify {
		notifier = notify.NewMockNotifier("winner-webhook")
	} else {
		notifier = notify.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.APIKey)
	}

	pulseSource := beacon.NewClient(cfg.Beacon.BaseURL, cfg.Beacon.APIKey, cfg.Beacon.MockBeacon)

	// Initialize repositories
	drawRepo := mongorepo.NewDrawRepository(db)
	entryRepo := mongorepo.NewEntryRepository(db)
	winnerRepo := mongorepo.NewWinnerRepository(db)
	exclusionRepo := mongorepo.NewExclusionRepository(db)
	adminUserRepo := mongorepo.NewAdminUserRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)

	// Initialize services
	auditService := services.NewAuditService(auditRepo)
	pickService := services.NewPickService(randpick.NewCrypto(), cfg.Draw.QuickPickMaxBound, cfg.Draw.QuickPickMaxCount, m)
	drawService := services.NewDrawService(
		drawRepo,
		entryRepo,
		winnerRepo,
		exclusionRepo,
		pulseSource,
		notifier,
		auditService,
		publisher,
		m,
		models.EntropyMode(cfg.Draw.DefaultEntropyMode),
	)
	entryService := services.NewEntryService(entryRepo, exclusionRepo, auditService, publisher, m)
	authService := services.NewAuthService(adminUserRepo, tokenService)

	// Initialize handlers and the router
	h := routes.Handlers{
		Pick:  handlers.NewPickHandler(pickService),
		Draw:  handlers.NewDrawHandler(drawService),
		Entry: handlers.NewEntryHandler(entryService),
		Auth:  handlers.NewAuthHandler(authService),
		Audit: handlers.NewAuditHandler(auditService),
	}
	router := routes.SetupRouter(cfg, h, tokenService, m)

	// Periodic metrics reporting
	metricsCtx, stopMetrics := context.WithCancel(context.Background())
	defer stopMetrics()
	go m.LogPeriodically(metricsCtx, time.Duration(cfg.Metrics.LogIntervalSeconds)*time.Second, slog.Default())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Run the server in a goroutine so shutdown signals can be handled
	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}

// setupLogger installs a JSON slog handler at the configured level
func setupLogger(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}
