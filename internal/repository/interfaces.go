package repository

import (
	"context"

	"github.com/nouss/hackaton-leaderboard/internal/models"
	"github.com/uptrace/bun"
)

// ScoreRepository defines the interface for score data access
type ScoreRepository interface {
	// Save inserts the score when it has no identifier yet, otherwise
	// replaces the stored row. The assigned identifier is written back
	// into the model on insert.
	Save(ctx context.Context, score *models.Score) error
	FindAll(ctx context.Context, pageable Pageable) (*Page, error)
	FindOne(ctx context.Context, id int64) (*models.Score, error)
	// Delete removes the score. Deleting an id that does not exist is
	// not an error.
	Delete(ctx context.Context, id int64) error
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Score ScoreRepository
	Tx    TransactionManager
}

// Pageable describes the requested window of a list query
type Pageable struct {
	Page int
	Size int
	// Sort column and direction, already validated by the caller
	Sort      string
	Ascending bool
}

// Page is one window of a list query result
type Page struct {
	Content    []models.Score
	TotalCount int
	Number     int
	Size       int
}

// NewRepositories creates a new repository collection
func NewRepositories(db *bun.DB) *Repositories {
	return &Repositories{
		Score: NewScoreRepository(db),
		Tx:    NewTransactionManager(db),
	}
}
