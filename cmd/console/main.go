package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sorteio/api/cmd/console/models"
	"github.com/sorteio/api/internal/config"
	"github.com/sorteio/api/internal/db"
	"github.com/sorteio/api/internal/draw"
	"github.com/sorteio/api/internal/prefs"
	"github.com/sorteio/api/internal/rng"
	"github.com/sorteio/api/internal/roster"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.Database.Path, "Path to the SQLite database")
	startView := flag.String("view", "menu", "Starting view (menu, names, numbers, sequence, groups, elimination, roster)")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Setup logging
	switch *logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	// Logs would tear the alternate screen, so they go to a file or nowhere.
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	// Initialize database connection
	cfg.Database.Path = *dbPath
	conn, err := db.Open(cfg.Database)
	if err != nil {
		fmt.Println("fatal: failed to open database:", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		fmt.Println("fatal: failed to run migrations:", err)
		os.Exit(1)
	}

	rosterManager := roster.NewManager(conn)
	prefsManager := prefs.NewManager(conn)

	factory := rng.Fresh()
	if cfg.Draw.Seed != 0 {
		factory = rng.Fixed(cfg.Draw.Seed)
	}
	drawService := draw.NewService(rosterManager, factory)

	// Initialize the main app model
	app := models.NewApp(models.Deps{
		Roster:         rosterManager,
		Prefs:          prefsManager,
		Draws:          drawService,
		RevealInterval: cfg.Draw.RevealInterval,
	}, *startView)

	// Create and run the Bubble Tea program
	program := tea.NewProgram(app, tea.WithAltScreen())

	log.Info("Starting sorteio console", "db_path", *dbPath, "start_view", *startView)

	if _, err := program.Run(); err != nil {
		fmt.Println("fatal: error running console:", err)
		os.Exit(1)
	}
}
