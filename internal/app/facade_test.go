package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/domain/model"
	testhelpers "github.com/polkiloo/feedbackportal/internal/test"
	"github.com/polkiloo/feedbackportal/internal/usecase"
)

func newFacade() (*PortalFacade, *testhelpers.UserRepositoryStub, *testhelpers.FeedbackRepositoryStub, *testhelpers.HealthFacadeStub) {
	users := testhelpers.NewUserRepositoryStub()
	authUC := usecase.NewAuthUseCase(users, testhelpers.CodecStub{})

	feedbacks := &testhelpers.FeedbackRepositoryStub{}
	feedbackUC := usecase.NewFeedbackUseCase(feedbacks)

	health := &testhelpers.HealthFacadeStub{}
	return NewPortalFacade(authUC, feedbackUC, health), users, feedbacks, health
}

func TestPortalFacadeAuth(t *testing.T) {
	facade, users, _, _ := newFacade()
	ctx := context.Background()

	msg, err := facade.Signup(ctx, model.User{Email: "a@x.io", Password: "pw"})
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if msg != usecase.SignupConfirmation {
		t.Fatalf("unexpected confirmation %q", msg)
	}
	if users.Users[0].Password != "enc:pw" {
		t.Fatalf("expected encoded password, got %q", users.Users[0].Password)
	}

	result, err := facade.Login(ctx, model.User{Email: "a@x.io", Password: "pw"})
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if result.Outcome != model.LoginAuthenticated || result.User.ID != 1 {
		t.Fatalf("unexpected login result %+v", result)
	}

	result, err = facade.Login(ctx, model.User{Email: "a@x.io", Password: "bad"})
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if result.Outcome != model.LoginMismatch || result.User.Password != "bad" {
		t.Fatalf("expected echoed candidate, got %+v", result)
	}
}

func TestPortalFacadeFeedback(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()

	empty, err := facade.Feedback(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", empty)
	}

	saved, err := facade.SubmitFeedback(ctx, model.Feedback{Rating: 5, Comment: "great", Service: "support"})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if saved.ID == 0 || saved.Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", saved)
	}

	listed, err := facade.Feedback(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != saved.ID {
		t.Fatalf("unexpected list %+v", listed)
	}
}

func TestPortalFacadeFeedbackNilFromStore(t *testing.T) {
	facade, _, feedbacks, _ := newFacade()
	feedbacks.FindAllFn = func(context.Context) ([]model.Feedback, error) { return nil, nil }

	items, err := facade.Feedback(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil {
		t.Fatal("expected non-nil slice")
	}
}

func TestPortalFacadeErrors(t *testing.T) {
	facade, _, feedbacks, health := newFacade()
	feedbacks.Err = domainErrors.ErrStoreUnavailable
	health.Err = domainErrors.ErrStoreUnavailable

	if _, err := facade.Feedback(context.Background()); !errors.Is(err, domainErrors.ErrStoreUnavailable) {
		t.Fatalf("expected store error, got %v", err)
	}
	if err := facade.HealthCheck(context.Background()); !errors.Is(err, domainErrors.ErrStoreUnavailable) {
		t.Fatalf("expected health error, got %v", err)
	}
}
