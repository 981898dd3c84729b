// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package bridge

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		getLog().Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// Healthz handles GET /healthz
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	attached := s.sender != nil
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"attached": attached,
		"clients":  s.clients.Len(),
	})
}

// GetNavigation handles GET /api/v1/navigation
func (s *Server) GetNavigation(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshots.Latest()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "navigation not started"})
		return
	}
	writeJSON(w, http.StatusOK, ViewOf(snap))
}
