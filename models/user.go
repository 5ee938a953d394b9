package models

import "time"

// User represents a journal author account used for authentication and
// post ownership.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name" validate:"required,min=1,max=100"`

	// Email is the unique login of the user.
	Email string `json:"email" validate:"required,email,max=254"`

	// Password is the plain-text password received on sign-up or sign-in.
	// It is never persisted and never written back to clients. bcrypt
	// accepts at most 72 bytes.
	Password string `json:"password,omitempty" validate:"required,min=8,max=72,maxbytes=72"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the sign-in payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to write to clients.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
