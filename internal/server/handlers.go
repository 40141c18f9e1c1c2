package server

import (
	"encoding/json"
	"net/http"
	"time"

	"payment-intent-parser/internal/common/errors"
	"payment-intent-parser/internal/models"
)

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use POST")
		return
	}

	var req models.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_REQUEST_BODY", "Body must be JSON with an input field")
		return
	}

	ctx := r.Context()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, req.Input); err == nil && cached != nil {
			s.writeParseResponse(w, cached)
			return
		}
	}

	intent, err := s.parser.Parse(ctx, req.Input)
	if err != nil {
		stdErr := errors.AsStandard(err)
		s.writeError(w, stdErr.HTTPStatus(), string(stdErr.Code), stdErr.Message)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, req.Input, intent); err != nil {
			s.log.WithError(err).Warn("failed to cache parse result", nil)
		}
	}

	s.writeParseResponse(w, intent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   s.version,
	})
}

func (s *Server) writeParseResponse(w http.ResponseWriter, intent models.Intent) {
	s.writeJSON(w, http.StatusOK, models.ParseResponse{
		Success:  true,
		Intent:   intent,
		RawInput: intent.GetRawInput(),
		ParsedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, models.ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.WithError(err).Error("failed to encode response", nil)
	}
}
