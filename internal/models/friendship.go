package models

import (
	"time"
)

// FriendshipStatus represents the state of a friend request
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a request awaiting the addressee
	FriendshipStatusPending FriendshipStatus = "pending"

	// FriendshipStatusAccepted indicates an accepted request
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

// Friendship links a requesting user to a friend
type Friendship struct {
	// ID is the unique identifier for the friendship
	ID string `json:"id"`

	// UserID is the user who sent the request
	UserID string `json:"user_id"`

	// FriendID is the user who received the request
	FriendID string `json:"friend_id"`

	// Status is the current state of the request
	Status FriendshipStatus `json:"status"`

	// CreatedAt is when the request was sent
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the request last changed
	UpdatedAt time.Time `json:"updated_at"`

	// Friend is the profile on the other side; resolved, not persisted
	Friend *Profile `json:"-"`
}
