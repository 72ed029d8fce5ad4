package community

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/samber/lo"
)

// service implements the Service interface
type service struct {
	store table.Store
	clock clock.Clock
}

// New creates a new community service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		store: cfg.Store,
		clock: cfg.Clock,
	}, nil
}

// GetProfile returns a user's profile
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	profile, err := s.getProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: profile}, nil
}

// UpdateProfile saves a user's profile, creating it on first use
func (s *service) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	// Usernames are unique across profiles
	rows, err := s.store.Select(ctx, &table.Query{
		Table:   table.Profiles,
		Filters: []table.Filter{table.Eq("username", username)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if lo.SomeBy(rows, func(row table.Row) bool { return row.String("id") != input.UserID }) {
		return nil, ErrUsernameTaken
	}

	fields := table.Row{
		"username":   username,
		"bio":        optional(input.Bio),
		"avatar_url": optional(input.AvatarURL),
	}

	_, err = s.getProfile(ctx, input.UserID)
	switch {
	case errors.Is(err, ErrProfileNotFound):
		fields["id"] = input.UserID
		row, err := s.store.Insert(ctx, &table.InsertInput{Table: table.Profiles, Row: fields})
		if err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		var profile models.Profile
		if err := table.Decode(row, &profile); err != nil {
			return nil, err
		}
		return &UpdateProfileOutput{Profile: &profile, Created: true}, nil
	case err != nil:
		return nil, err
	}

	fields["updated_at"] = table.Timestamp(s.clock.Now())
	err = s.store.Update(ctx, &table.UpdateInput{
		Table:   table.Profiles,
		Filters: []table.Filter{table.Eq("id", input.UserID)},
		Patch:   fields,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	profile, err := s.getProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &UpdateProfileOutput{Profile: profile}, nil
}

// ListFriends returns accepted friendships the user requested, each with the
// friend's profile
func (s *service) ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error) {
	friendships, err := s.listFriendships(ctx, "user_id", input.UserID, models.FriendshipStatusAccepted)
	if err != nil {
		return nil, err
	}

	if err := s.attachProfiles(ctx, friendships, func(f *models.Friendship) string { return f.FriendID }); err != nil {
		return nil, err
	}
	return &ListFriendsOutput{Friendships: friendships}, nil
}

// ListPendingRequests returns pending requests addressed to the user, each
// with the requester's profile
func (s *service) ListPendingRequests(ctx context.Context, input *ListPendingRequestsInput) (*ListPendingRequestsOutput, error) {
	friendships, err := s.listFriendships(ctx, "friend_id", input.UserID, models.FriendshipStatusPending)
	if err != nil {
		return nil, err
	}

	if err := s.attachProfiles(ctx, friendships, func(f *models.Friendship) string { return f.UserID }); err != nil {
		return nil, err
	}
	return &ListPendingRequestsOutput{Friendships: friendships}, nil
}

// SendFriendRequest creates a pending friendship from the user to a friend
func (s *service) SendFriendRequest(ctx context.Context, input *SendFriendRequestInput) (*SendFriendRequestOutput, error) {
	if input.UserID == input.FriendID {
		return nil, ErrSelfRequest
	}

	friend, err := s.getProfile(ctx, input.FriendID)
	if err != nil {
		return nil, err
	}

	// A request in either direction blocks a new one
	for _, pair := range [][2]string{{input.UserID, input.FriendID}, {input.FriendID, input.UserID}} {
		_, err := s.store.SelectOne(ctx, &table.Query{
			Table:   table.Friendships,
			Filters: []table.Filter{table.Eq("user_id", pair[0]), table.Eq("friend_id", pair[1])},
		})
		if err == nil {
			return nil, ErrAlreadyRequested
		}
		if !errors.Is(err, table.ErrNotFound) {
			return nil, fmt.Errorf("failed to check friendships: %w", err)
		}
	}

	row, err := s.store.Insert(ctx, &table.InsertInput{
		Table: table.Friendships,
		Row: table.Row{
			"user_id":   input.UserID,
			"friend_id": input.FriendID,
			"status":    string(models.FriendshipStatusPending),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send friend request: %w", err)
	}

	var friendship models.Friendship
	if err := table.Decode(row, &friendship); err != nil {
		return nil, err
	}
	friendship.Friend = friend
	return &SendFriendRequestOutput{Friendship: &friendship}, nil
}

// AcceptFriendRequest marks a pending request as accepted
func (s *service) AcceptFriendRequest(ctx context.Context, input *RespondFriendRequestInput) error {
	friendship, err := s.pendingRequest(ctx, input)
	if err != nil {
		return err
	}

	err = s.store.Update(ctx, &table.UpdateInput{
		Table:   table.Friendships,
		Filters: []table.Filter{table.Eq("id", friendship.ID)},
		Patch: table.Row{
			"status":     string(models.FriendshipStatusAccepted),
			"updated_at": table.Timestamp(s.clock.Now()),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}
	return nil
}

// RejectFriendRequest deletes a pending request
func (s *service) RejectFriendRequest(ctx context.Context, input *RespondFriendRequestInput) error {
	friendship, err := s.pendingRequest(ctx, input)
	if err != nil {
		return err
	}

	err = s.store.Delete(ctx, &table.DeleteInput{
		Table:   table.Friendships,
		Filters: []table.Filter{table.Eq("id", friendship.ID)},
	})
	if err != nil {
		return fmt.Errorf("failed to reject friend request: %w", err)
	}
	return nil
}

func (s *service) pendingRequest(ctx context.Context, input *RespondFriendRequestInput) (*models.Friendship, error) {
	row, err := s.store.SelectOne(ctx, &table.Query{
		Table:   table.Friendships,
		Filters: []table.Filter{table.Eq("id", input.FriendshipID)},
	})
	if err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return nil, ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("failed to get friend request: %w", err)
	}

	var friendship models.Friendship
	if err := table.Decode(row, &friendship); err != nil {
		return nil, err
	}

	if friendship.FriendID != input.UserID {
		return nil, ErrNotAddressee
	}
	if friendship.Status != models.FriendshipStatusPending {
		return nil, ErrNotPending
	}
	return &friendship, nil
}

func (s *service) listFriendships(ctx context.Context, column, userID string, status models.FriendshipStatus) ([]*models.Friendship, error) {
	rows, err := s.store.Select(ctx, &table.Query{
		Table: table.Friendships,
		Filters: []table.Filter{
			table.Eq(column, userID),
			table.Eq("status", string(status)),
		},
		OrderBy: []table.Order{{Column: "created_at", Descending: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	return table.DecodeAll[models.Friendship](rows)
}

// attachProfiles sets Friend on each friendship to the profile picked by other
func (s *service) attachProfiles(ctx context.Context, friendships []*models.Friendship, other func(*models.Friendship) string) error {
	for _, friendship := range friendships {
		profile, err := s.getProfile(ctx, other(friendship))
		if err != nil {
			if errors.Is(err, ErrProfileNotFound) {
				continue
			}
			return err
		}
		friendship.Friend = profile
	}
	return nil
}

func (s *service) getProfile(ctx context.Context, userID string) (*models.Profile, error) {
	row, err := s.store.SelectOne(ctx, &table.Query{
		Table:   table.Profiles,
		Filters: []table.Filter{table.Eq("id", userID)},
	})
	if err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile models.Profile
	if err := table.Decode(row, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
