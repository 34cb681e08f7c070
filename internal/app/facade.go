package app

import (
	"context"

	"github.com/polkiloo/feedbackportal/internal/domain/model"
	"github.com/polkiloo/feedbackportal/internal/usecase"
)

// HealthChecker reports whether the record store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type PortalFacade struct {
	auth     *usecase.AuthUseCase
	feedback *usecase.FeedbackUseCase
	health   HealthChecker
}

func NewPortalFacade(auth *usecase.AuthUseCase, feedback *usecase.FeedbackUseCase, health HealthChecker) *PortalFacade {
	return &PortalFacade{auth: auth, feedback: feedback, health: health}
}

func (f *PortalFacade) Signup(ctx context.Context, user model.User) (string, error) {
	return f.auth.Signup(ctx, user)
}

func (f *PortalFacade) Login(ctx context.Context, candidate model.User) (model.LoginResult, error) {
	return f.auth.Authenticate(ctx, candidate)
}

func (f *PortalFacade) SubmitFeedback(ctx context.Context, feedback model.Feedback) (*model.Feedback, error) {
	return f.feedback.Submit(ctx, feedback)
}

// Feedback never returns a nil slice on success so the HTTP layer renders [].
func (f *PortalFacade) Feedback(ctx context.Context) ([]model.Feedback, error) {
	items, err := f.feedback.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Feedback{}
	}
	return items, nil
}

func (f *PortalFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
