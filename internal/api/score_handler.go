package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/nouss/hackaton-leaderboard/internal/errors"
	"github.com/nouss/hackaton-leaderboard/internal/logger"
	"github.com/nouss/hackaton-leaderboard/internal/models"
	"github.com/nouss/hackaton-leaderboard/internal/services"
	"github.com/nouss/hackaton-leaderboard/pkg/config"
)

const scoreEntityName = "score"

// ScoreHandler handles the REST surface for managing scores
type ScoreHandler struct {
	scoreService services.ScoreService
	cfg          *config.Config
	log          logger.Logger
}

// NewScoreHandler creates a new score handler with service injection
func NewScoreHandler(scoreService services.ScoreService, cfg *config.Config, log logger.Logger) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
		cfg:          cfg,
		log:          log,
	}
}

// CreateScore creates a new score. The request body must not carry an ID;
// the store assigns one.
func (h *ScoreHandler) CreateScore(c *gin.Context) {
	var score models.Score
	if err := c.ShouldBindJSON(&score); err != nil {
		respondError(c, h.log, apperrors.BadRequestAlert("Invalid request body", scoreEntityName, "malformed"))
		return
	}

	h.log.Debug("REST request to save Score", "name", score.Name)

	if !score.IsNew() {
		respondError(c, h.log, apperrors.BadRequestAlert("A new score cannot already have an ID", scoreEntityName, "idexists"))
		return
	}

	result, err := h.scoreService.Save(c.Request.Context(), &score)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/scores/%d", result.ID))
	setCreationAlert(c, scoreEntityName, strconv.FormatInt(result.ID, 10))
	c.JSON(http.StatusCreated, result)
}

// UpdateScore replaces an existing score. The request body must carry the
// ID of the score to replace.
func (h *ScoreHandler) UpdateScore(c *gin.Context) {
	var score models.Score
	if err := c.ShouldBindJSON(&score); err != nil {
		respondError(c, h.log, apperrors.BadRequestAlert("Invalid request body", scoreEntityName, "malformed"))
		return
	}

	h.log.Debug("REST request to update Score", "id", score.ID)

	if score.IsNew() {
		respondError(c, h.log, apperrors.BadRequestAlert("Invalid id", scoreEntityName, "idnull"))
		return
	}

	result, err := h.scoreService.Save(c.Request.Context(), &score)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	setUpdateAlert(c, scoreEntityName, strconv.FormatInt(result.ID, 10))
	c.JSON(http.StatusOK, result)
}

// GetAllScores returns one page of scores with pagination headers
func (h *ScoreHandler) GetAllScores(c *gin.Context) {
	h.log.Debug("REST request to get a page of Scores")

	pageable := parsePageable(c, h.cfg)

	page, err := h.scoreService.FindAll(c.Request.Context(), pageable)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	setPaginationHeaders(c, page, "/api/scores")
	c.JSON(http.StatusOK, page.Content)
}

// GetScore returns a single score by ID, or 404 with an empty body
func (h *ScoreHandler) GetScore(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, h.log, apperrors.BadRequestAlert("Invalid id", scoreEntityName, "idinvalid"))
		return
	}

	h.log.Debug("REST request to get Score", "id", id)

	score, err := h.scoreService.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, score)
}

// DeleteScore removes a score by ID. Deleting an unknown ID succeeds.
func (h *ScoreHandler) DeleteScore(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, h.log, apperrors.BadRequestAlert("Invalid id", scoreEntityName, "idinvalid"))
		return
	}

	h.log.Debug("REST request to delete Score", "id", id)

	if err := h.scoreService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	setDeletionAlert(c, scoreEntityName, strconv.FormatInt(id, 10))
	c.Status(http.StatusOK)
}
