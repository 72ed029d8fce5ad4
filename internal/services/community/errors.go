package community

// CommunityError is a custom error type for profile and friendship errors
type CommunityError string

// Error implements the error interface
func (e CommunityError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrProfileNotFound    CommunityError = "profile not found"
	ErrUsernameRequired   CommunityError = "username is required"
	ErrUsernameTaken      CommunityError = "username is already taken"
	ErrSelfRequest        CommunityError = "cannot send a friend request to yourself"
	ErrAlreadyRequested   CommunityError = "friend request already exists"
	ErrFriendshipNotFound CommunityError = "friend request not found"
	ErrNotAddressee       CommunityError = "only the recipient can answer a friend request"
	ErrNotPending         CommunityError = "friend request is not pending"
	ErrNilConfig          CommunityError = "config cannot be nil"
	ErrNilStore           CommunityError = "table store cannot be nil"
	ErrNilClock           CommunityError = "clock cannot be nil"
)
