package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextProvider_CurrentUserID(t *testing.T) {
	provider := NewContextProvider()

	userID, err := provider.CurrentUserID(WithUserID(context.Background(), "  user-1 "))
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestContextProvider_NoUser(t *testing.T) {
	provider := NewContextProvider()

	_, err := provider.CurrentUserID(context.Background())
	assert.ErrorIs(t, err, ErrNoUser)

	_, err = provider.CurrentUserID(WithUserID(context.Background(), "   "))
	assert.ErrorIs(t, err, ErrNoUser)
}
