package models

import (
	"time"
)

// OwnershipStatus describes how a user relates to a game in their library
type OwnershipStatus string

const (
	// OwnershipStatusOwned indicates the user owns a copy
	OwnershipStatusOwned OwnershipStatus = "owned"

	// OwnershipStatusWishlist indicates the user wants the game
	OwnershipStatusWishlist OwnershipStatus = "wishlist"

	// OwnershipStatusPlayed indicates the user tracks a game they have played
	OwnershipStatusPlayed OwnershipStatus = "played"
)

// Valid reports whether s is a known status
func (s OwnershipStatus) Valid() bool {
	switch s {
	case OwnershipStatusOwned, OwnershipStatusWishlist, OwnershipStatusPlayed:
		return true
	}
	return false
}

// LibraryEntry links a user to a game they own or track
type LibraryEntry struct {
	// ID is the unique identifier for the entry
	ID string `json:"id"`

	// UserID is the owner of the library
	UserID string `json:"user_id"`

	// GameID is the game in the library
	GameID string `json:"game_id"`

	// OwnershipStatus is how the user relates to the game
	OwnershipStatus OwnershipStatus `json:"ownership_status"`

	// Notes are the user's private notes
	Notes string `json:"notes"`

	// AddedAt is when the game was added
	AddedAt time.Time `json:"added_at"`
}
