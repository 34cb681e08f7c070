package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/feedbackportal/internal/domain/model"
	"github.com/polkiloo/feedbackportal/internal/domain/repository"
)

// FeedbackUseCase stamps and stores customer feedback.
type FeedbackUseCase struct {
	feedbacks repository.FeedbackRepository
	now       func() time.Time
}

// NewFeedbackUseCase constructs FeedbackUseCase using the UTC wall clock.
// Timestamps are truncated to microseconds, the precision of a TIMESTAMPTZ column,
// so a submitted record equals the one listed back from any store.
func NewFeedbackUseCase(feedbacks repository.FeedbackRepository) *FeedbackUseCase {
	return &FeedbackUseCase{
		feedbacks: feedbacks,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Submit overwrites any client timestamp with the server clock and persists feedback.
func (u *FeedbackUseCase) Submit(ctx context.Context, feedback model.Feedback) (*model.Feedback, error) {
	feedback.Timestamp = u.now()
	return u.feedbacks.Save(ctx, feedback)
}

// List returns a snapshot of all stored feedback in store order.
func (u *FeedbackUseCase) List(ctx context.Context) ([]model.Feedback, error) {
	return u.feedbacks.FindAll(ctx)
}
