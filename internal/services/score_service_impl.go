package services

import (
	"context"
	"fmt"

	"github.com/nouss/hackaton-leaderboard/internal/logger"
	"github.com/nouss/hackaton-leaderboard/internal/models"
	"github.com/nouss/hackaton-leaderboard/internal/repository"
)

// scoreService implements ScoreService
type scoreService struct {
	repos *repository.Repositories
	log   logger.Logger
}

func newScoreService(repos *repository.Repositories, log logger.Logger) ScoreService {
	return &scoreService{
		repos: repos,
		log:   log,
	}
}

// Save persists a score inside a transaction and returns the stored row
func (s *scoreService) Save(ctx context.Context, score *models.Score) (*models.Score, error) {
	s.log.Debug("Request to save Score", "id", score.ID, "name", score.Name)

	err := s.repos.Tx.WithTransaction(ctx, func(repos *repository.Repositories) error {
		return repos.Score.Save(ctx, score)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	return score, nil
}

// FindAll returns one page of scores
func (s *scoreService) FindAll(ctx context.Context, pageable repository.Pageable) (*repository.Page, error) {
	s.log.Debug("Request to get a page of Scores", "page", pageable.Page, "size", pageable.Size)

	page, err := s.repos.Score.FindAll(ctx, pageable)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return page, nil
}

// FindOne looks a score up by identifier
func (s *scoreService) FindOne(ctx context.Context, id int64) (*models.Score, error) {
	s.log.Debug("Request to get Score", "id", id)

	score, err := s.repos.Score.FindOne(ctx, id)
	if err != nil {
		// Keep repository.ErrNotFound visible to the caller
		return nil, err
	}

	return score, nil
}

// Delete removes a score by identifier
func (s *scoreService) Delete(ctx context.Context, id int64) error {
	s.log.Debug("Request to delete Score", "id", id)

	if err := s.repos.Score.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	return nil
}
