package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"seoplanner/internal/db"
	"seoplanner/internal/models"
	"seoplanner/internal/seo"
)

// SuggestionHandler handles optimization suggestion operations via JSON API.
type SuggestionHandler struct {
	db  *db.DB
	svc *seo.Service
}

// NewSuggestionHandler creates a new API suggestion handler.
func NewSuggestionHandler(database *db.DB, svc *seo.Service) *SuggestionHandler {
	return &SuggestionHandler{db: database, svc: svc}
}

// Create saves a suggestion supplied by the caller. The referenced outline
// must exist.
func (h *SuggestionHandler) Create(c fiber.Ctx) error {
	var sug models.OptimizationSuggestion
	if err := json.Unmarshal(c.Body(), &sug); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	sug.IsImplemented = false

	if err := h.svc.CreateSuggestion(c.Context(), &sug); err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, sug)
}

// ListByOutline returns all suggestions for an outline in creation order.
func (h *SuggestionHandler) ListByOutline(c fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid outline id")
	}

	suggestions, err := h.db.ListSuggestionsByOutline(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if suggestions == nil {
		suggestions = []models.OptimizationSuggestion{}
	}
	return jsonSuccess(c, suggestions)
}

// Generate runs the optimization rules against an outline and persists the
// resulting suggestion batch.
func (h *SuggestionHandler) Generate(c fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid outline id")
	}

	suggestions, err := h.svc.GenerateSuggestions(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, suggestions)
}

// SetImplemented toggles a suggestion's implemented flag. An unknown id
// yields null data rather than an error.
func (h *SuggestionHandler) SetImplemented(c fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid suggestion id")
	}

	var req models.SetImplementedRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sug, err := h.svc.SetSuggestionImplemented(c.Context(), id, req.IsImplemented)
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, sug)
}
