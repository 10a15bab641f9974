// Package entity defines the domain entities for the account feature.
package entity

import "time"

// User represents a registered account.
// PasswordHash is always the scrypt derivation of the raw password with this
// user's Salt; neither the raw password nor an unhashed credential is ever
// stored. Users are never updated in place: they are created by registration
// and removed only by administrative action.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Name is the display name. Listing orders by this column.
	Name string `gorm:"size:255;not null;index"`

	// Email is the login identifier. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// BirthDate is kept as an opaque string, exactly as submitted.
	BirthDate string `gorm:"size:64"`

	// PasswordHash is the hex-encoded scrypt hash of the password.
	PasswordHash string `gorm:"size:255;not null"`

	// Salt is the hex-encoded random salt generated at creation,
	// immutable thereafter.
	Salt string `gorm:"size:64;not null"`

	// Addresses are the user's address sub-records, removed with the user.
	Addresses []Address `gorm:"constraint:OnDelete:CASCADE"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
