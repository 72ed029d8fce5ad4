package api

import (
	"net/http"

	"github.com/SamSam-01/Gamebrary/internal/services/catalog"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetLibrary(w http.ResponseWriter, r *http.Request) {
	out, err := s.catalog.GetLibrary(r.Context(), &catalog.GetLibraryInput{UserID: s.userID(r)})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LibraryResponse{Items: newLibraryItems(out.Items)})
}

func (s *Server) handleAddToLibrary(w http.ResponseWriter, r *http.Request) {
	var req AddToLibraryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := s.catalog.AddToLibrary(r.Context(), &catalog.AddToLibraryInput{
		UserID: s.userID(r),
		GameID: req.GameID,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Entry)
}

func (s *Server) handleRemoveFromLibrary(w http.ResponseWriter, r *http.Request) {
	err := s.catalog.RemoveFromLibrary(r.Context(), &catalog.RemoveFromLibraryInput{
		UserID: s.userID(r),
		GameID: chi.URLParam(r, "gameID"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
