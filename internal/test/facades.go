package test

import (
	"context"
	"time"

	"github.com/polkiloo/feedbackportal/internal/domain/model"
)

// StubSignupMessage is returned by AuthFacadeStub.Signup by default.
const StubSignupMessage = "signed up"

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	SignupFn func(context.Context, model.User) (string, error)
	LoginFn  func(context.Context, model.User) (model.LoginResult, error)
}

// Signup returns the confirmation message unless overridden.
func (s AuthFacadeStub) Signup(ctx context.Context, user model.User) (string, error) {
	if s.SignupFn != nil {
		return s.SignupFn(ctx, user)
	}
	return StubSignupMessage, nil
}

// Login echoes the candidate as not found unless overridden.
func (s AuthFacadeStub) Login(ctx context.Context, candidate model.User) (model.LoginResult, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, candidate)
	}
	return model.LoginResult{User: candidate, Outcome: model.LoginNotFound}, nil
}

// FeedbackFacadeStub provides controllable behaviour for feedback endpoints.
type FeedbackFacadeStub struct {
	SubmitFn func(context.Context, model.Feedback) (*model.Feedback, error)
	ListFn   func(context.Context) ([]model.Feedback, error)
}

// SubmitFeedback stamps and echoes feedback unless overridden.
func (s FeedbackFacadeStub) SubmitFeedback(ctx context.Context, feedback model.Feedback) (*model.Feedback, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, feedback)
	}
	feedback.ID = 1
	feedback.Timestamp = time.Unix(0, 0).UTC()
	return &feedback, nil
}

// Feedback returns preconfigured feedback.
func (s FeedbackFacadeStub) Feedback(ctx context.Context) ([]model.Feedback, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Feedback{{ID: 1, Rating: 5, Comment: "great", Service: "support", Timestamp: time.Unix(0, 0).UTC()}}, nil
}

// HealthFacadeStub reports configured health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// PortalFacadeStub aggregates facade dependencies for HTTP layer tests.
type PortalFacadeStub struct {
	AuthFacadeStub
	FeedbackFacadeStub
	HealthFacadeStub
}
