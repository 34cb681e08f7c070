package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users []model.User
	Err   error
	mu    sync.Mutex
}

// NewUserRepositoryStub constructs an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{}
}

// Save appends user and assigns the next ID unless stub has explicit error.
func (s *UserRepositoryStub) Save(ctx context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	user.ID = int64(len(s.Users) + 1)
	s.Users = append(s.Users, user)
	return &user, nil
}

// FindByEmail returns the first user with email or not found.
func (s *UserRepositoryStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.Users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FeedbackRepositoryStub allows tests to customize behaviour.
type FeedbackRepositoryStub struct {
	SaveFn    func(context.Context, model.Feedback) (*model.Feedback, error)
	FindAllFn func(context.Context) ([]model.Feedback, error)
	Items     []model.Feedback
	Err       error
	mu        sync.Mutex
}

// Save records feedback or delegates to override.
func (s *FeedbackRepositoryStub) Save(ctx context.Context, feedback model.Feedback) (*model.Feedback, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, feedback)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	feedback.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, feedback)
	return &feedback, nil
}

// FindAll returns a copy of stored items.
func (s *FeedbackRepositoryStub) FindAll(ctx context.Context) ([]model.Feedback, error) {
	if s.FindAllFn != nil {
		return s.FindAllFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Feedback, len(s.Items))
	copy(out, s.Items)
	return out, nil
}
