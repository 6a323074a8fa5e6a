// internal/domain/user.go
package domain

import "time"

// User represents a registered user of the finance tracker.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	FullName       string    `db:"full_name" json:"full_name"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// NewUser creates a new User instance with the already-hashed password.
func NewUser(email, hashedPassword, fullName string) *User {
	return &User{
		Email:          email,
		HashedPassword: hashedPassword,
		FullName:       fullName,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
}
