package models

import (
	"time"
)

// Game represents a board game in the catalog
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// Title is the display name of the game
	Title string `json:"title"`

	// Description is a free-text summary of the game
	Description string `json:"description"`

	// MinPlayers is the minimum number of players
	MinPlayers int `json:"min_players"`

	// MaxPlayers is the maximum number of players
	MaxPlayers int `json:"max_players"`

	// DurationMinutes is the typical length of a play
	DurationMinutes int `json:"duration_minutes"`

	// AgeMin is the minimum recommended player age
	AgeMin int `json:"age_min"`

	// Complexity is a 1-5 weight rating
	Complexity int `json:"complexity"`

	// ImageURL is an optional cover image
	ImageURL *string `json:"image_url"`

	// CreatorID is the user who created the game, if any
	CreatorID *string `json:"creator_id"`

	// IsPublic indicates the game is visible to every user
	IsPublic bool `json:"is_public"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCreatedBy reports whether userID authored the game
func (g *Game) IsCreatedBy(userID string) bool {
	return g.CreatorID != nil && userID != "" && *g.CreatorID == userID
}
