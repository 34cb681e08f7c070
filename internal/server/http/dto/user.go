package dto

import "github.com/polkiloo/feedbackportal/internal/domain/model"

// AuthOutcomeHeader exposes the tagged login outcome next to the legacy body.
const AuthOutcomeHeader = "X-Auth-Outcome"

// User is the wire shape of signup/login requests and login responses.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToModel converts the payload into a domain user.
func (u User) ToModel() model.User {
	return model.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
	}
}

// UserFromModel builds the response payload for user.
func UserFromModel(user model.User) User {
	return User{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
		Role:     user.Role,
	}
}
