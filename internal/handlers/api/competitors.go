package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"seoplanner/internal/db"
	"seoplanner/internal/models"
	"seoplanner/internal/seo"
	"seoplanner/internal/validation"
)

// CompetitorHandler handles competitor analysis and CRUD operations via JSON API.
type CompetitorHandler struct {
	db  *db.DB
	svc *seo.Service
}

// NewCompetitorHandler creates a new API competitor handler.
func NewCompetitorHandler(database *db.DB, svc *seo.Service) *CompetitorHandler {
	return &CompetitorHandler{db: database, svc: svc}
}

// Analyze returns the stored competitor batch for a keyword, generating one
// on first request.
func (h *CompetitorHandler) Analyze(c fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	competitors, err := h.svc.AnalyzeCompetitors(c.Context(), req)
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, competitors)
}

// Create saves a competitor record supplied by the caller.
func (h *CompetitorHandler) Create(c fiber.Ctx) error {
	var comp models.Competitor
	if err := json.Unmarshal(c.Body(), &comp); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	comp.TargetKeyword = validation.NormalizeKeyword(comp.TargetKeyword)
	if comp.Domain == "" || comp.Title == "" || comp.URL == "" || comp.TargetKeyword == "" {
		return jsonError(c, fiber.StatusBadRequest, "domain, title, url, and target_keyword are required")
	}
	if comp.WordCount <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "word_count must be positive")
	}
	if comp.RankingPosition <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "ranking_position must be positive")
	}
	if comp.Backlinks < 0 {
		return jsonError(c, fiber.StatusBadRequest, "backlinks must not be negative")
	}
	for name, score := range map[string]float64{
		"domain_authority":      comp.DomainAuthority,
		"page_authority":        comp.PageAuthority,
		"content_quality_score": comp.ContentQualityScore,
	} {
		if score < 0 || score > 100 {
			return jsonError(c, fiber.StatusBadRequest, fmt.Sprintf("%s %v out of range [0,100]", name, score))
		}
	}

	if comp.AnalyzedAt.IsZero() {
		comp.AnalyzedAt = time.Now()
	}

	if err := h.db.CreateCompetitor(c.Context(), &comp); err != nil {
		if errors.Is(err, db.ErrDuplicateCompetitor) {
			return jsonError(c, fiber.StatusConflict,
				fmt.Sprintf("ranking position %d already exists for keyword %q", comp.RankingPosition, comp.TargetKeyword))
		}
		return serviceError(c, err)
	}
	return jsonSuccess(c, comp)
}

// List returns all competitors, most recently analyzed first.
func (h *CompetitorHandler) List(c fiber.Ctx) error {
	competitors, err := h.db.ListCompetitors(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	if competitors == nil {
		competitors = []models.Competitor{}
	}
	return jsonSuccess(c, competitors)
}
