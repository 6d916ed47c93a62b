package server

import (
	"encoding/json"
	"net/http"
)

// HealthStatus represents the server health check response.
type HealthStatus struct {
	Status  string `json:"status"`
	Lexicon string `json:"lexicon,omitempty"`
	Entries int    `json:"entries"`
}

// handleHealth returns a health check response for load balancers and monitoring.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	lx := s.Lexicon()
	status := HealthStatus{
		Status:  "ok",
		Lexicon: lx.Name(),
		Entries: lx.Len(),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		s.logger.Error("Failed to encode health status", "err", err)
	}
}
