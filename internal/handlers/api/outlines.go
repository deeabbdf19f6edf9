package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"seoplanner/internal/db"
	"seoplanner/internal/models"
	"seoplanner/internal/seo"
	"seoplanner/internal/validation"
)

// OutlineHandler handles content outline operations via JSON API.
type OutlineHandler struct {
	db  *db.DB
	svc *seo.Service
}

// NewOutlineHandler creates a new API outline handler.
func NewOutlineHandler(database *db.DB, svc *seo.Service) *OutlineHandler {
	return &OutlineHandler{db: database, svc: svc}
}

// Create saves an outline supplied by the caller. Difficulty level and
// reading time are derived when omitted.
func (h *OutlineHandler) Create(c fiber.Ctx) error {
	var o models.ContentOutline
	if err := json.Unmarshal(c.Body(), &o); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	o.TargetKeyword = validation.NormalizeKeyword(o.TargetKeyword)
	if o.Title == "" || o.TargetKeyword == "" {
		return jsonError(c, fiber.StatusBadRequest, "title and target_keyword are required")
	}
	if !validation.ValidContentType(o.ContentType) {
		return jsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("invalid content_type %q: must be one of %s", o.ContentType, strings.Join(models.ContentTypes, ", ")))
	}
	if o.WordCountTarget <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "word_count_target must be positive")
	}
	if o.OutlineStructure == "" {
		return jsonError(c, fiber.StatusBadRequest, "outline_structure is required")
	}
	if o.DifficultyLevel == "" {
		o.DifficultyLevel = seo.DeriveDifficulty(o.ContentType, o.WordCountTarget)
	} else if !validation.ValidDifficultyLevel(o.DifficultyLevel) {
		return jsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("invalid difficulty_level %q: must be beginner, intermediate, or advanced", o.DifficultyLevel))
	}
	if o.EstimatedReadingTime <= 0 {
		o.EstimatedReadingTime = seo.EstimateReadingTime(o.WordCountTarget)
	}

	if err := h.db.CreateOutline(c.Context(), &o); err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, o)
}

// Update applies a partial update. Only supplied fields change; updated_at is
// refreshed regardless.
func (h *OutlineHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid outline id")
	}

	var update models.OutlineUpdate
	if err := json.Unmarshal(c.Body(), &update); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if update.ContentType != nil && !validation.ValidContentType(*update.ContentType) {
		return jsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("invalid content_type %q: must be one of %s", *update.ContentType, strings.Join(models.ContentTypes, ", ")))
	}
	if update.DifficultyLevel != nil && !validation.ValidDifficultyLevel(*update.DifficultyLevel) {
		return jsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("invalid difficulty_level %q: must be beginner, intermediate, or advanced", *update.DifficultyLevel))
	}
	if update.WordCountTarget != nil && *update.WordCountTarget <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "word_count_target must be positive")
	}
	if update.EstimatedReadingTime != nil && *update.EstimatedReadingTime <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "estimated_reading_time must be positive")
	}
	if update.TargetKeyword != nil {
		normalized := validation.NormalizeKeyword(*update.TargetKeyword)
		if normalized == "" {
			return jsonError(c, fiber.StatusBadRequest, "target_keyword must not be empty")
		}
		update.TargetKeyword = &normalized
	}

	outline, err := h.db.UpdateOutline(c.Context(), id, update)
	if err != nil {
		return serviceError(c, err)
	}
	if outline == nil {
		return jsonError(c, fiber.StatusNotFound, fmt.Sprintf("content outline %d not found", id))
	}
	return jsonSuccess(c, outline)
}

// List returns all outlines, newest first.
func (h *OutlineHandler) List(c fiber.Ctx) error {
	outlines, err := h.db.ListOutlines(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	if outlines == nil {
		outlines = []models.ContentOutline{}
	}
	return jsonSuccess(c, outlines)
}

// Get returns a single outline by id, or null data when the id is unknown.
func (h *OutlineHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid outline id")
	}

	outline, err := h.db.GetOutline(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, outline)
}

// Generate builds an outline from the content-type template and persists it.
func (h *OutlineHandler) Generate(c fiber.Ctx) error {
	var req models.GenerateOutlineRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	outline, err := h.svc.GenerateOutline(c.Context(), req.TargetKeyword, req.ContentType)
	if err != nil {
		return serviceError(c, err)
	}
	return jsonSuccess(c, outline)
}

// parseID parses a positive int64 route parameter.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
