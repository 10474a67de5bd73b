// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// User represents an account entity used for authentication.
type User struct {
	// UserID is the internal unique identifier of the user. It is not exposed
	// via JSON and is used only at the persistence layer and inside tokens.
	UserID int64 `json:"-"`

	// Login is the unique login identifier used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user, shown in the client UI header.
	Name string `json:"name,omitempty"`

	// Password carries the plaintext password on register/login requests only.
	// It is hashed with argon2id before storage and never persisted as-is.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id digest. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table associated with User.
func (User) TableName() string {
	return "users"
}
