package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sorteio/api/internal/api"
	"github.com/sorteio/api/internal/config"
	"github.com/sorteio/api/internal/db"
	"github.com/sorteio/api/internal/draw"
	"github.com/sorteio/api/internal/prefs"
	"github.com/sorteio/api/internal/rng"
	"github.com/sorteio/api/internal/roster"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	setupLogging(cfg.Logging)
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "db_path", cfg.Database.Path, "log_level", cfg.Logging.Level)

	// Initialize database
	log.Debug("Initializing database connection", "path", cfg.Database.Path)
	conn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer conn.Close()

	// Run migrations
	if err := db.Migrate(conn); err != nil {
		log.Fatal("Failed to run database migrations", "error", err)
	}

	rosterManager := roster.NewManager(conn)
	prefsManager := prefs.NewManager(conn)

	drawService := draw.NewService(rosterManager, drawSource(cfg.Draw))
	log.Debug("Draw service initialized")

	// Initialize API handlers
	handler := api.NewHandler(drawService, prefsManager)
	rosterHandlers := roster.NewHandlers(rosterManager)
	router := api.SetupRoutes(handler, rosterHandlers, api.RouterOptions{
		AllowedOrigins:     cfg.Server.CORSAllowedOrigins,
		MaxConcurrentDraws: cfg.Draw.MaxConcurrent,
	})
	log.Debug("API routes configured")

	// Create HTTP server
	log.Debug("Creating HTTP server", "port", cfg.Server.Port, "read_timeout", cfg.Server.ReadTimeout, "write_timeout", cfg.Server.WriteTimeout, "idle_timeout", cfg.Server.IdleTimeout)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting sorteio API server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
		log.Debug("Server stopped listening")
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	// Create context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	} else {
		log.Debug("Server shutdown completed gracefully")
	}

	log.Info("Server exited")
}

// drawSource picks a fresh entropy-seeded generator per draw, or one shared
// seeded generator when DRAW_SEED is set.
func drawSource(cfg config.DrawConfig) rng.Factory {
	if cfg.Seed != 0 {
		log.Warn("Draws are reproducible from a fixed seed", "seed", cfg.Seed)
		return rng.Fixed(cfg.Seed)
	}
	return rng.Fresh()
}

func setupLogging(cfg config.LoggingConfig) {
	// Set log level
	switch cfg.Level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warn("Invalid log level, using info", "level", cfg.Level)
		log.SetLevel(log.InfoLevel)
	}

	// Configure output format
	switch {
	case cfg.Format == "pretty" || !cfg.Structured:
		log.SetReportCaller(true)
		log.SetReportTimestamp(true)
	case cfg.Format == "logfmt":
		log.SetFormatter(log.LogfmtFormatter)
		log.SetReportTimestamp(true)
	default:
		log.SetFormatter(log.JSONFormatter)
		log.SetReportTimestamp(true)
	}

	// Add service info context
	log.SetPrefix("[sorteio-api] ")
}
