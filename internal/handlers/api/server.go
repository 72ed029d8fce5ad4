// Package api serves Gamebrary over a JSON HTTP API.
package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/SamSam-01/Gamebrary/internal/common/identity"
	"github.com/SamSam-01/Gamebrary/internal/services/catalog"
	"github.com/SamSam-01/Gamebrary/internal/services/community"
	"github.com/SamSam-01/Gamebrary/internal/services/messaging"
	"github.com/SamSam-01/Gamebrary/internal/services/session"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UserHeader carries the acting user, set by the identity provider in front
// of the API
const UserHeader = "X-User-ID"

const defaultRequestTimeout = 60 * time.Second

// Config holds the configuration for the API server
type Config struct {
	TransferService  transfer.Service
	CatalogService   catalog.Service
	SessionService   session.Service
	CommunityService community.Service
	MessagingService messaging.Service

	// Identity resolves the acting user; reads the context when nil
	Identity identity.Provider

	// RequestTimeout bounds each request; 60s when zero
	RequestTimeout time.Duration
}

// Server handles HTTP requests
type Server struct {
	transfer  transfer.Service
	catalog   catalog.Service
	sessions  session.Service
	community community.Service
	messaging messaging.Service
	identity  identity.Provider
	timeout   time.Duration
}

// New creates a new API server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TransferService == nil {
		return nil, errors.New("transfer service cannot be nil")
	}

	if cfg.CatalogService == nil {
		return nil, errors.New("catalog service cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.CommunityService == nil {
		return nil, errors.New("community service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	provider := cfg.Identity
	if provider == nil {
		provider = identity.NewContextProvider()
	}

	return &Server{
		transfer:  cfg.TransferService,
		catalog:   cfg.CatalogService,
		sessions:  cfg.SessionService,
		community: cfg.CommunityService,
		messaging: cfg.MessagingService,
		identity:  provider,
		timeout:   timeout,
	}, nil
}

// Routes sets up the HTTP routes with their middleware
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))
	r.Use(identify)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", s.handleListGames)
		r.Get("/games/{id}", s.handleGetGame)
		r.Get("/games/{id}/export", s.handleExportGame)
		r.Get("/games/{id}/rules", s.handleGetRules)
		r.Get("/sessions/{id}", s.handleGetSession)

		// Everything below acts on behalf of a user
		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)

			r.Post("/imports/json", s.handleImportJSON)
			r.Post("/imports/csv", s.handleImportCSV)

			r.Post("/games", s.handleAddGame)
			r.Put("/games/{id}/rules", s.handleUpdateRules)

			r.Get("/sessions", s.handleListSessions)
			r.Post("/sessions", s.handleCreateSession)
			r.Put("/sessions/{id}/scores", s.handleSaveScores)
			r.Post("/sessions/{id}/end", s.handleEndSession)

			r.Get("/library", s.handleGetLibrary)
			r.Post("/library", s.handleAddToLibrary)
			r.Delete("/library/{gameID}", s.handleRemoveFromLibrary)

			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)
			r.Get("/friends", s.handleListFriends)
			r.Get("/friends/requests", s.handleListFriendRequests)
			r.Post("/friends/requests", s.handleSendFriendRequest)
			r.Post("/friends/requests/{id}/accept", s.handleAcceptFriendRequest)
			r.Post("/friends/requests/{id}/reject", s.handleRejectFriendRequest)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// identify puts the user named by UserHeader on the request context
func identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := strings.TrimSpace(r.Header.Get(UserHeader)); userID != "" {
			r = r.WithContext(identity.WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// requireUser rejects requests with no acting user
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.identity.CurrentUserID(r.Context()); err != nil {
			writeMessage(w, http.StatusUnauthorized, UserHeader+" header is required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// userID returns the acting user; empty for anonymous requests
func (s *Server) userID(r *http.Request) string {
	id, _ := s.identity.CurrentUserID(r.Context())
	return id
}
