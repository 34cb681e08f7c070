package handlers

import (
	"context"

	"github.com/polkiloo/feedbackportal/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Signup(ctx context.Context, user model.User) (string, error)
	Login(ctx context.Context, candidate model.User) (model.LoginResult, error)
}

// FeedbackFacade encapsulates feedback operations exposed via HTTP.
type FeedbackFacade interface {
	SubmitFeedback(ctx context.Context, feedback model.Feedback) (*model.Feedback, error)
	Feedback(ctx context.Context) ([]model.Feedback, error)
}

// HealthFacade reports record store availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// PortalFacade aggregates the full set of operations used across handlers.
type PortalFacade interface {
	AuthFacade
	FeedbackFacade
	HealthFacade
}
