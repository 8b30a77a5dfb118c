package models

import "time"

// User is an editor account of the content-management admin.
// Its creation time takes part in the identity token derivation, so it must
// never change after the account is created.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique login used on the sign-in form.
	Login string `json:"login"`

	// Name is the display name shown in the editor header.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the editor password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// IsAdmin grants edit rights on every page.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the payload of the editor login form.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
