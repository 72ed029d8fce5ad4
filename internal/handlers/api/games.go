package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/SamSam-01/Gamebrary/internal/interchange"
	"github.com/SamSam-01/Gamebrary/internal/services/catalog"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// handleImportJSON imports one game from an interchange JSON body
func (s *Server) handleImportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.transfer.ImportFromJSON(r.Context(), &transfer.ImportFromJSONInput{
		Data:     string(data),
		UserID:   s.userID(r),
		IsPublic: queryBool(r, "public"),
	})

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, newImportResponse(result))
}

// handleImportCSV imports every game of a CSV body
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	output := s.transfer.ImportCSV(r.Context(), &transfer.ImportCSVInput{
		Text:     string(data),
		UserID:   s.userID(r),
		IsPublic: queryBool(r, "public"),
	})

	resp := CSVImportResponse{
		Attempted: output.Attempted,
		Succeeded: output.Succeeded,
		Summary:   output.Summary(),
		Error:     output.Error,
		Rows: lo.Map(output.Rows, func(row *transfer.RowResult, _ int) RowResponse {
			return RowResponse{Row: row.Row, Title: row.Title, ImportResponse: newImportResponse(row.Result)}
		}),
	}

	status := http.StatusOK
	if output.Error != "" {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, resp)
}

// handleExportGame returns a game as an interchange JSON download
func (s *Server) handleExportGame(w http.ResponseWriter, r *http.Request) {
	out, ok := s.transfer.ExportGame(r.Context(), &transfer.ExportGameInput{GameID: chi.URLParam(r, "id")})
	if !ok {
		writeMessage(w, http.StatusNotFound, "Game could not be exported.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", interchange.FileName(out.Title)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(out.JSON)); err != nil {
		s.logWriteFailure(r, err)
	}
}

// handleListGames lists public games, newest first
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.catalog.ListPublicGames(r.Context(), &catalog.ListPublicGamesInput{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GamesResponse{Games: out.Games})
}

// handleGetGame returns one game
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	out, err := s.catalog.GetGame(r.Context(), &catalog.GetGameInput{GameID: chi.URLParam(r, "id")})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Game)
}

// handleAddGame adds a game by hand to the user's library
func (s *Server) handleAddGame(w http.ResponseWriter, r *http.Request) {
	var req AddGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := s.catalog.AddGame(r.Context(), &catalog.AddGameInput{
		UserID:          s.userID(r),
		Title:           req.Title,
		Description:     req.Description,
		MinPlayers:      req.MinPlayers,
		MaxPlayers:      req.MaxPlayers,
		DurationMinutes: req.DurationMinutes,
		AgeMin:          req.AgeMin,
		Complexity:      req.Complexity,
		IsPublic:        req.IsPublic,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ImportResponse{Success: true, GameID: out.GameID})
}

// handleGetRules returns a game's rules
func (s *Server) handleGetRules(w http.ResponseWriter, r *http.Request) {
	out, err := s.catalog.GetRules(r.Context(), &catalog.GetRulesInput{
		GameID: chi.URLParam(r, "id"),
		UserID: s.userID(r),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := RulesResponse{GameID: out.Game.ID, Sections: out.Sections, CanEdit: out.CanEdit}
	if out.Rules != nil {
		resp.Version = out.Rules.Version
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleUpdateRules replaces a game's rule sections
func (s *Server) handleUpdateRules(w http.ResponseWriter, r *http.Request) {
	var req UpdateRulesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	gameID := chi.URLParam(r, "id")
	out, err := s.catalog.UpdateRules(r.Context(), &catalog.UpdateRulesInput{
		GameID:   gameID,
		UserID:   s.userID(r),
		Sections: req.Sections,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RulesResponse{GameID: gameID, Version: out.Rules.Version, Sections: req.Sections, CanEdit: true})
}

func queryBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return v, nil
}
