package repository

import (
	"context"

	"github.com/polkiloo/feedbackportal/internal/domain/model"
)

// FeedbackRepository stores submitted feedback.
type FeedbackRepository interface {
	Save(ctx context.Context, feedback model.Feedback) (*model.Feedback, error)
	FindAll(ctx context.Context) ([]model.Feedback, error)
}
