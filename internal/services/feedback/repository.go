package feedback

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, fb Feedback) error
}

type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

func (r *FeedbackRepository) Create(ctx context.Context, fb Feedback) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO feedback (name, ratings, comment, date, compound_score, result)
		 VALUES ($1, $2, $3, NOW(), $4, $5)`,
		fb.Name, fb.Ratings, fb.Comment, fb.CompoundScore, fb.Result,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}
