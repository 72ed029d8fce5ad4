package models

import (
	"time"
)

// Profile represents a registered user's public profile
type Profile struct {
	// ID is the identity provider's user ID
	ID string `json:"id"`

	// Username is the unique display handle
	Username string `json:"username"`

	// AvatarURL is an optional avatar image
	AvatarURL *string `json:"avatar_url"`

	// Bio is an optional self description
	Bio *string `json:"bio"`

	// CreatedAt is when the profile was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the profile was last updated
	UpdatedAt time.Time `json:"updated_at"`
}
