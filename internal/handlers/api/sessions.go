package api

import (
	"net/http"

	"github.com/SamSam-01/Gamebrary/internal/services/session"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// handleCreateSession starts a session hosted by the acting user
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := s.sessions.CreateSession(r.Context(), &session.CreateSessionInput{
		GameID:          req.GameID,
		HostID:          s.userID(r),
		ScoringSystemID: req.ScoringSystemID,
		Notes:           req.Notes,
		Players: lo.Map(lo.Compact(req.Players), func(p *PlayerRequest, _ int) *session.PlayerInput {
			return &session.PlayerInput{UserID: p.UserID, GuestName: p.GuestName, TeamName: p.TeamName}
		}),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, SessionResponse{Session: out.Session, Participants: out.Participants})
}

// handleGetSession returns a session with its standings
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	out, err := s.sessions.GetSession(r.Context(), &session.GetSessionInput{SessionID: chi.URLParam(r, "id")})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{
		Session:      out.Session,
		GameTitle:    out.GameTitle,
		Participants: out.Participants,
		Standings:    out.Standings,
	})
}

// handleListSessions lists the sessions the acting user hosted
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.sessions.ListSessions(r.Context(), &session.ListSessionsInput{HostID: s.userID(r), Limit: limit})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SessionsResponse{Sessions: out.Sessions})
}

// handleSaveScores records scores and ranks the participants
func (s *Server) handleSaveScores(w http.ResponseWriter, r *http.Request) {
	var req SaveScoresRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := s.sessions.SaveScores(r.Context(), &session.SaveScoresInput{
		SessionID: chi.URLParam(r, "id"),
		UserID:    s.userID(r),
		Scores:    req.Scores,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{Session: out.Session, Participants: out.Participants})
}

// handleEndSession ends a session
func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	out, err := s.sessions.EndSession(r.Context(), &session.EndSessionInput{
		SessionID: chi.URLParam(r, "id"),
		UserID:    s.userID(r),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, EndSessionResponse{Session: out.Session, AlreadyEnded: out.AlreadyEnded})
}
