package api

import (
	"context"
	"net/http"

	"github.com/SamSam-01/Gamebrary/internal/services/community"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	out, err := s.community.GetProfile(r.Context(), &community.GetProfileInput{UserID: s.userID(r)})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := s.community.UpdateProfile(r.Context(), &community.UpdateProfileInput{
		UserID:    s.userID(r),
		Username:  req.Username,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, out.Profile)
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	out, err := s.community.ListFriends(r.Context(), &community.ListFriendsInput{UserID: s.userID(r)})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FriendshipsResponse{Friendships: newFriendships(out.Friendships)})
}

func (s *Server) handleListFriendRequests(w http.ResponseWriter, r *http.Request) {
	out, err := s.community.ListPendingRequests(r.Context(), &community.ListPendingRequestsInput{UserID: s.userID(r)})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FriendshipsResponse{Friendships: newFriendships(out.Friendships)})
}

func (s *Server) handleSendFriendRequest(w http.ResponseWriter, r *http.Request) {
	var req FriendRequestRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := s.community.SendFriendRequest(r.Context(), &community.SendFriendRequestInput{
		UserID:   s.userID(r),
		FriendID: req.FriendID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, FriendshipResponse{Friendship: out.Friendship, Friend: out.Friendship.Friend})
}

func (s *Server) handleAcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	s.respondFriendRequest(w, r, s.community.AcceptFriendRequest)
}

func (s *Server) handleRejectFriendRequest(w http.ResponseWriter, r *http.Request) {
	s.respondFriendRequest(w, r, s.community.RejectFriendRequest)
}

func (s *Server) respondFriendRequest(w http.ResponseWriter, r *http.Request, answer func(context.Context, *community.RespondFriendRequestInput) error) {
	err := answer(r.Context(), &community.RespondFriendRequestInput{
		UserID:       s.userID(r),
		FriendshipID: chi.URLParam(r, "id"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
