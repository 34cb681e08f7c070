package model

// LoginOutcome tags the result of a login attempt.
type LoginOutcome string

const (
	LoginAuthenticated LoginOutcome = "authenticated"
	LoginNotFound      LoginOutcome = "not_found"
	LoginMismatch      LoginOutcome = "mismatch"
)

// LoginResult carries the legacy login payload together with its outcome.
// User is the stored record when authenticated and the unchanged candidate otherwise.
type LoginResult struct {
	User    User
	Outcome LoginOutcome
}
