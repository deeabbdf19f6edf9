package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"seoplanner/internal/config"
	"seoplanner/internal/db"
	"seoplanner/internal/metrics"
	"seoplanner/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Seed sample keywords in development
	if cfg.IsDev() && cfg.SeedDev {
		if err := database.SeedDevData(ctx); err != nil {
			log.Printf("Warning: failed to seed dev data: %v", err)
		}
	}

	// Register the generation-event metrics collector
	metrics.Init(database)

	srv := server.New(cfg)
	srv.RegisterRoutes(database)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
