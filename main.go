package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/formsight/reptrack/internal/api"
	"github.com/formsight/reptrack/internal/config"
	"github.com/formsight/reptrack/internal/db"
	"github.com/formsight/reptrack/internal/exercise"
	"github.com/formsight/reptrack/internal/version"
)

var (
	listen        = flag.String("listen", ":8080", "Listen address")
	dbFile        = flag.String("db", "workouts.db", "Path to the sqlite database")
	migrationsDir = flag.String("migrations", "migrations", "Path to the migrations directory")
	configPath    = flag.String("config", "", "Optional tuning config JSON file")
	devMode       = flag.Bool("dev", false, "Run in dev mode (mounts /debug routes)")
)

func main() {
	flag.Parse()

	log.Printf("reptrack %s", version.String())

	tuning := &config.TuningConfig{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		tuning = loaded
	}

	registry := exercise.NewRegistry()
	for id, ov := range tuning.Thresholds {
		if err := registry.OverrideThresholds(id, ov.Lower, ov.Upper); err != nil {
			log.Fatalf("failed to apply threshold override: %v", err)
		}
	}

	database, err := db.NewDB(*dbFile)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := database.MigrateUp(*migrationsDir); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	server := api.NewServer(registry, database, tuning.TrackerOptions())
	mux := server.ServeMux()
	if *devMode {
		database.AttachAdminRoutes(mux)
	}

	httpServer := &http.Server{
		Addr:    *listen,
		Handler: api.LoggingMiddleware(mux),
	}

	go func() {
		log.Printf("listening on %s", *listen)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Printf("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
