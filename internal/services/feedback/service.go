package feedback

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrInvalidRequest = errors.New("invalid request")

// Feedback is a customer review row. Result is the sentiment bucket
// derived from the star rating.
type Feedback struct {
	Name          string  `json:"name"`
	Ratings       int     `json:"ratings"`
	Comment       string  `json:"comment"`
	CompoundScore float64 `json:"compound_score"`
	Result        string  `json:"result"`
}

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, fb Feedback) error
}

type FeedbackService struct {
	repo FeedbackRepositoryInterface
	lg   *zap.Logger
}

func NewFeedbackService(repo FeedbackRepositoryInterface, lg *zap.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, lg: lg}
}

func (s *FeedbackService) Submit(ctx context.Context, fb Feedback) error {
	if fb.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if fb.Ratings < 1 || fb.Ratings > 5 {
		return fmt.Errorf("%w: ratings must be between 1 and 5", ErrInvalidRequest)
	}
	fb.Result = sentimentBucket(fb.Ratings)
	if err := s.repo.Create(ctx, fb); err != nil {
		return err
	}
	s.lg.Info("feedback stored", zap.String("name", fb.Name), zap.Int("ratings", fb.Ratings), zap.String("result", fb.Result))
	return nil
}

func sentimentBucket(ratings int) string {
	switch {
	case ratings >= 4:
		return "Positive"
	case ratings <= 2:
		return "Negative"
	default:
		return "Neutral"
	}
}
