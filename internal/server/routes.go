package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seoplanner/internal/db"
	"seoplanner/internal/handlers"
	"seoplanner/internal/handlers/api"
	"seoplanner/internal/metrics"
	"seoplanner/internal/seo"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB) {
	// The seo service orchestrates the generators over the database; a fixed
	// RANDOM_SEED makes its output reproducible.
	svc := seo.NewService(database, seo.NewRand(s.Cfg.RandomSeed), metrics.RecordGeneration)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(database, s.Cfg)
	keywordHandler := api.NewKeywordHandler(database, svc)
	competitorHandler := api.NewCompetitorHandler(database, svc)
	outlineHandler := api.NewOutlineHandler(database, svc)
	suggestionHandler := api.NewSuggestionHandler(database, svc)
	healthHandler := api.NewHealthHandler(database)

	// Dashboard
	s.App.Get("/", dashboardHandler.Index)

	// Keyword routes
	s.App.Post("/api/keywords/research", keywordHandler.Research)
	s.App.Post("/api/keywords", keywordHandler.Create)
	s.App.Get("/api/keywords", keywordHandler.List)

	// Competitor routes
	s.App.Post("/api/competitors/analyze", competitorHandler.Analyze)
	s.App.Post("/api/competitors", competitorHandler.Create)
	s.App.Get("/api/competitors", competitorHandler.List)

	// Outline routes
	s.App.Post("/api/outlines/generate", outlineHandler.Generate)
	s.App.Post("/api/outlines", outlineHandler.Create)
	s.App.Get("/api/outlines", outlineHandler.List)
	s.App.Get("/api/outlines/:id", outlineHandler.Get)
	s.App.Put("/api/outlines/:id", outlineHandler.Update)

	// Suggestion routes
	s.App.Post("/api/suggestions", suggestionHandler.Create)
	s.App.Get("/api/outlines/:id/suggestions", suggestionHandler.ListByOutline)
	s.App.Post("/api/outlines/:id/suggestions/generate", suggestionHandler.Generate)
	s.App.Put("/api/suggestions/:id/implemented", suggestionHandler.SetImplemented)

	// Operational routes
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
