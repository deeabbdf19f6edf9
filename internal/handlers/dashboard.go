// Package handlers contains the HTML-facing handlers. The JSON API lives in
// the api subpackage.
package handlers

import (
	"github.com/gofiber/fiber/v3"

	"seoplanner/internal/config"
	"seoplanner/internal/db"
	"seoplanner/internal/models"
)

// DashboardHandler renders the overview page.
type DashboardHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(database *db.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{db: database, cfg: cfg}
}

// Index shows per-entity row counts.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	ctx := c.Context()
	var counts models.DashboardCounts
	var err error

	if counts.Keywords, err = h.db.CountKeywords(ctx); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if counts.Competitors, err = h.db.CountCompetitors(ctx); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if counts.Outlines, err = h.db.CountOutlines(ctx); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if counts.Suggestions, err = h.db.CountSuggestions(ctx); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}

	return c.Render("index", fiber.Map{
		"Title":       "Dashboard",
		"SiteTitle":   h.cfg.SiteTitle,
		"SiteTagline": h.cfg.SiteTagline,
		"Counts":      counts,
	})
}
