package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"seoplanner/internal/db"
	"seoplanner/internal/models"
	"seoplanner/internal/seo"
	"seoplanner/internal/validation"
)

// KeywordHandler handles keyword research and CRUD operations via JSON API.
type KeywordHandler struct {
	db  *db.DB
	svc *seo.Service
}

// NewKeywordHandler creates a new API keyword handler.
func NewKeywordHandler(database *db.DB, svc *seo.Service) *KeywordHandler {
	return &KeywordHandler{db: database, svc: svc}
}

// Research expands a seed keyword into variants with synthesized metrics and
// persists the survivors.
func (h *KeywordHandler) Research(c fiber.Ctx) error {
	var req models.ResearchRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Language == "" {
		req.Language = "en"
	}

	keywords, err := h.svc.ResearchKeywords(c.Context(), req)
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, keywords)
}

// Create saves a keyword supplied by the caller.
func (h *KeywordHandler) Create(c fiber.Ctx) error {
	var body struct {
		Keyword      string  `json:"keyword"`
		SearchVolume int     `json:"search_volume"`
		Difficulty   float64 `json:"difficulty"`
		CPC          float64 `json:"cpc"`
		Competition  string  `json:"competition"`
		TrendData    *string `json:"trend_data"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	body.Keyword = validation.NormalizeKeyword(body.Keyword)
	if !validation.ValidateSeedKeyword(body.Keyword) {
		return jsonError(c, fiber.StatusBadRequest, fmt.Sprintf("invalid keyword %q", body.Keyword))
	}
	if body.SearchVolume < 0 {
		return jsonError(c, fiber.StatusBadRequest, "search_volume must not be negative")
	}
	if body.Difficulty < 0 || body.Difficulty > 100 {
		return jsonError(c, fiber.StatusBadRequest, fmt.Sprintf("difficulty %v out of range [0,100]", body.Difficulty))
	}
	if body.CPC < 0 {
		return jsonError(c, fiber.StatusBadRequest, "cpc must not be negative")
	}
	if body.Competition == "" {
		body.Competition = seo.CompetitionForDifficulty(body.Difficulty)
	} else if !validation.ValidCompetition(body.Competition) {
		return jsonError(c, fiber.StatusBadRequest, fmt.Sprintf("invalid competition %q: must be low, medium, or high", body.Competition))
	}

	kw := &models.Keyword{
		Keyword:      body.Keyword,
		SearchVolume: body.SearchVolume,
		Difficulty:   body.Difficulty,
		CPC:          body.CPC,
		Competition:  body.Competition,
		TrendData:    body.TrendData,
	}
	if err := h.db.CreateKeyword(c.Context(), kw); err != nil {
		if errors.Is(err, db.ErrDuplicateKeyword) {
			return jsonError(c, fiber.StatusConflict, fmt.Sprintf("keyword %q already exists", body.Keyword))
		}
		return serviceError(c, err)
	}
	return jsonSuccess(c, kw)
}

// List returns all keywords, newest first.
func (h *KeywordHandler) List(c fiber.Ctx) error {
	keywords, err := h.db.ListKeywords(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	if keywords == nil {
		keywords = []models.Keyword{}
	}
	return jsonSuccess(c, keywords)
}
