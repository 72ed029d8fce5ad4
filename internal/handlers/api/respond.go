package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/SamSam-01/Gamebrary/internal/services/messaging"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps request bodies, imports included
const maxBodyBytes = 1 << 20

var errBodyTooLarge = errors.New("request body is too large")

// errorResponse is the body of every failed request
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with proper headers
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeMessage writes an error body with the given status
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeError maps a service error onto 400, 404 or 500
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	out, merr := s.messaging.GetErrorMessage(r.Context(), &messaging.GetErrorMessageInput{Err: err})
	if merr != nil {
		log.Printf("[%s] Failed to build error message: %v", middleware.GetReqID(r.Context()), merr)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch out.Kind {
	case messaging.ErrorKindValidation:
		status = http.StatusBadRequest
	case messaging.ErrorKindNotFound:
		status = http.StatusNotFound
	default:
		log.Printf("[%s] %s %s failed: %v", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, err)
	}

	writeMessage(w, status, out.Message)
}

// readBody reads the whole request body up to maxBodyBytes
func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) > maxBodyBytes {
		return nil, errBodyTooLarge
	}
	return data, nil
}

// decodeBody decodes a JSON request body into v, writing a 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return false
	}
	return true
}

func (s *Server) logWriteFailure(r *http.Request, err error) {
	log.Printf("[%s] Failed to write response: %v", middleware.GetReqID(r.Context()), err)
}
