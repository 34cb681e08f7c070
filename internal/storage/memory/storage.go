package memory

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/domain/model"
	"github.com/polkiloo/feedbackportal/internal/domain/repository"
)

// Storage keeps records in process memory. Data is lost on restart.
type Storage struct {
	mu        sync.RWMutex
	users     []model.User
	feedbacks []model.Feedback
}

type userRepository struct {
	storage *Storage
}

type feedbackRepository struct {
	storage *Storage
}

// New builds an empty in-memory store.
func New() *Storage {
	return &Storage{}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Feedbacks() repository.FeedbackRepository {
	return &feedbackRepository{storage: s}
}

// HealthCheck always succeeds.
func (s *Storage) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Storage) Close() {}

func (r *userRepository) Save(_ context.Context, user model.User) (*model.User, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	user.ID = int64(len(r.storage.users) + 1)
	r.storage.users = append(r.storage.users, user)
	return &user, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	for _, user := range r.storage.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *feedbackRepository) Save(_ context.Context, feedback model.Feedback) (*model.Feedback, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	feedback.ID = int64(len(r.storage.feedbacks) + 1)
	r.storage.feedbacks = append(r.storage.feedbacks, feedback)
	return &feedback, nil
}

func (r *feedbackRepository) FindAll(context.Context) ([]model.Feedback, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	result := make([]model.Feedback, len(r.storage.feedbacks))
	copy(result, r.storage.feedbacks)
	return result, nil
}

var _ repository.Factory = (*Storage)(nil)
