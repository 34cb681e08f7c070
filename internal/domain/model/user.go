package model

// User represents a portal account. Password always holds the encoded form once persisted.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     string
}
