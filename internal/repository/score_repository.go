package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nouss/hackaton-leaderboard/internal/models"
	"github.com/uptrace/bun"
)

// scoreRepository implements ScoreRepository with the bun ORM
type scoreRepository struct {
	db bun.IDB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db bun.IDB) ScoreRepository {
	return &scoreRepository{db: db}
}

// Save inserts or updates a score depending on identifier presence
func (r *scoreRepository) Save(ctx context.Context, score *models.Score) error {
	now := time.Now()

	if score.IsNew() {
		score.CreatedAt = now
		score.UpdatedAt = now

		if _, err := r.db.NewInsert().
			Model(score).
			Returning("id").
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create score: %w", err)
		}
		return nil
	}

	score.UpdatedAt = now

	res, err := r.db.NewUpdate().
		Model(score).
		Column("name", "points", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	// Refresh the model so the caller sees the stored row, created_at
	// included.
	if err := r.db.NewSelect().
		Model(score).
		WherePK().
		Scan(ctx); err != nil {
		return fmt.Errorf("failed to reload score: %w", err)
	}

	return nil
}

// FindAll returns one page of scores plus the total matching count
func (r *scoreRepository) FindAll(ctx context.Context, pageable Pageable) (*Page, error) {
	direction := "DESC"
	if pageable.Ascending {
		direction = "ASC"
	}

	scores := make([]models.Score, 0, pageable.Size)
	total, err := r.db.NewSelect().
		Model(&scores).
		OrderExpr("? ?", bun.Ident(pageable.Sort), bun.Safe(direction)).
		Limit(pageable.Size).
		Offset(pageable.Page * pageable.Size).
		ScanAndCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return &Page{
		Content:    scores,
		TotalCount: total,
		Number:     pageable.Page,
		Size:       pageable.Size,
	}, nil
}

// FindOne retrieves a score by ID
func (r *scoreRepository) FindOne(ctx context.Context, id int64) (*models.Score, error) {
	score := &models.Score{}
	err := r.db.NewSelect().
		Model(score).
		Where("s.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

// Delete removes a score by ID. Idempotent: a missing row is success.
func (r *scoreRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.NewDelete().
		Model((*models.Score)(nil)).
		Where("s.id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	return nil
}
