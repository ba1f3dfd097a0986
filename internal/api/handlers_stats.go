package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleExtractStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"extraction":  s.stats.Snapshot(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}
