package community

import (
	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
)

// Config holds configuration for the community service
type Config struct {
	// Store persists profiles and friendships
	Store table.Store

	// Clock stamps updates
	Clock clock.Clock
}

// GetProfileInput contains parameters for loading a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput contains a profile
type GetProfileOutput struct {
	Profile *models.Profile
}

// UpdateProfileInput contains parameters for saving a profile
type UpdateProfileInput struct {
	UserID   string
	Username string

	// Bio and AvatarURL are cleared when empty
	Bio       string
	AvatarURL string
}

// UpdateProfileOutput contains the saved profile
type UpdateProfileOutput struct {
	Profile *models.Profile

	// Created indicates the profile did not exist before
	Created bool
}

// ListFriendsInput contains parameters for listing friends
type ListFriendsInput struct {
	UserID string
}

// ListFriendsOutput contains accepted friendships with the friend's profile
type ListFriendsOutput struct {
	Friendships []*models.Friendship
}

// ListPendingRequestsInput contains parameters for listing requests
type ListPendingRequestsInput struct {
	UserID string
}

// ListPendingRequestsOutput contains pending requests with the requester's profile
type ListPendingRequestsOutput struct {
	Friendships []*models.Friendship
}

// SendFriendRequestInput contains parameters for a friend request
type SendFriendRequestInput struct {
	UserID   string
	FriendID string
}

// SendFriendRequestOutput contains the created request
type SendFriendRequestOutput struct {
	Friendship *models.Friendship
}

// RespondFriendRequestInput contains parameters for answering a request
type RespondFriendRequestInput struct {
	// UserID is the acting user; must be the request's recipient
	UserID string

	FriendshipID string
}
