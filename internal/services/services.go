package services

import (
	"context"

	"github.com/nouss/hackaton-leaderboard/internal/database"
	"github.com/nouss/hackaton-leaderboard/internal/logger"
	"github.com/nouss/hackaton-leaderboard/internal/models"
	"github.com/nouss/hackaton-leaderboard/internal/repository"
)

// Services contains all application services
type Services struct {
	Score ScoreService
}

// ScoreService defines the interface for score business logic
type ScoreService interface {
	// Save persists the score, assigning an identifier when it has none
	Save(ctx context.Context, score *models.Score) (*models.Score, error)
	// FindAll returns one page of scores
	FindAll(ctx context.Context, pageable repository.Pageable) (*repository.Page, error)
	// FindOne looks a score up by identifier; repository.ErrNotFound on miss
	FindOne(ctx context.Context, id int64) (*models.Score, error)
	// Delete removes a score by identifier, idempotently
	Delete(ctx context.Context, id int64) error
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *database.DB, log logger.Logger) *Services {
	repos := repository.NewRepositories(db.DB)

	return &Services{
		Score: newScoreService(repos, log),
	}
}

// NewScoreService creates a standalone score service
func NewScoreService(repos *repository.Repositories, log logger.Logger) ScoreService {
	return newScoreService(repos, log)
}
