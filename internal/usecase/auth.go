package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/domain/model"
	"github.com/polkiloo/feedbackportal/internal/domain/repository"
	"github.com/polkiloo/feedbackportal/internal/pkg/secret"
)

// SignupConfirmation is returned by a successful signup.
// The legacy service answered "Inserted Suuessfully"; the misspelling is not kept.
const SignupConfirmation = "Inserted Successfully"

// AuthUseCase handles signup and credential checks.
type AuthUseCase struct {
	users repository.UserRepository
	codec secret.Codec
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, codec secret.Codec) *AuthUseCase {
	return &AuthUseCase{users: users, codec: codec}
}

// Signup stores the user with an encoded password. Duplicate emails are accepted.
func (u *AuthUseCase) Signup(ctx context.Context, user model.User) (string, error) {
	user.Password = u.codec.Encode(user.Password)
	if _, err := u.users.Save(ctx, user); err != nil {
		return "", err
	}
	return SignupConfirmation, nil
}

// Login returns the stored record when the candidate's password matches it,
// and the candidate itself in every other non-error case.
func (u *AuthUseCase) Login(ctx context.Context, candidate model.User) (model.User, error) {
	result, err := u.Authenticate(ctx, candidate)
	if err != nil {
		return model.User{}, err
	}
	return result.User, nil
}

// Authenticate is Login with an explicit outcome.
func (u *AuthUseCase) Authenticate(ctx context.Context, candidate model.User) (model.LoginResult, error) {
	stored, err := u.users.FindByEmail(ctx, candidate.Email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.LoginResult{User: candidate, Outcome: model.LoginNotFound}, nil
		}
		return model.LoginResult{}, err
	}

	plain, err := u.codec.Decode(stored.Password)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("user %d: %w: %w", stored.ID, domainErrors.ErrDecode, err)
	}

	if plain != candidate.Password {
		return model.LoginResult{User: candidate, Outcome: model.LoginMismatch}, nil
	}
	return model.LoginResult{User: *stored, Outcome: model.LoginAuthenticated}, nil
}
