package repository

import "context"

// Factory describes a record store backend and access to its repositories.
type Factory interface {
	Users() UserRepository
	Feedbacks() FeedbackRepository
	HealthCheck(ctx context.Context) error
	Close()
}
