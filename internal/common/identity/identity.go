package identity

import (
	"context"
	"errors"
	"strings"
)

// ErrNoUser is returned when no authenticated user is attached to the context
var ErrNoUser = errors.New("no authenticated user")

type contextKey struct{}

// Provider exposes the acting user's opaque identifier
type Provider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// WithUserID returns a copy of ctx carrying the acting user
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, strings.TrimSpace(userID))
}

// UserID reads the acting user from ctx, if any
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(contextKey{}).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// ContextProvider resolves the acting user from values placed on the context
// by the surfaces (HTTP header middleware, Discord interaction user)
type ContextProvider struct{}

func NewContextProvider() *ContextProvider {
	return &ContextProvider{}
}

// CurrentUserID implements Provider
func (p *ContextProvider) CurrentUserID(ctx context.Context) (string, error) {
	userID, ok := UserID(ctx)
	if !ok {
		return "", ErrNoUser
	}
	return userID, nil
}
