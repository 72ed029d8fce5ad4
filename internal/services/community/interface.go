package community

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/SamSam-01/Gamebrary/internal/services/community Service

import "context"

// Service defines the interface for profiles and friendships
type Service interface {
	// GetProfile returns a user's profile
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// UpdateProfile saves a user's profile, creating it on first use
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)

	// ListFriends returns accepted friendships the user requested
	ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error)

	// ListPendingRequests returns pending requests addressed to the user
	ListPendingRequests(ctx context.Context, input *ListPendingRequestsInput) (*ListPendingRequestsOutput, error)

	// SendFriendRequest creates a pending friendship
	SendFriendRequest(ctx context.Context, input *SendFriendRequestInput) (*SendFriendRequestOutput, error)

	// AcceptFriendRequest marks a pending request as accepted
	AcceptFriendRequest(ctx context.Context, input *RespondFriendRequestInput) error

	// RejectFriendRequest deletes a pending request
	RejectFriendRequest(ctx context.Context, input *RespondFriendRequestInput) error
}
