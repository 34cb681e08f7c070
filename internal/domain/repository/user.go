package repository

import (
	"context"

	"github.com/polkiloo/feedbackportal/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	// Save stores the user as-is and returns the record with its assigned ID.
	Save(ctx context.Context, user model.User) (*model.User, error)
	// FindByEmail returns the earliest user stored under email or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
