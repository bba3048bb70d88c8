package ttcalerts

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status       string `json:"status"`
	WeekendStart string `json:"season_weekend_start"`
	CachedInputs int    `json:"cached_inputs"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:       "ok",
		WeekendStart: s.parser.Season().WeekendStart.Format("2006-01-02"),
		CachedInputs: s.cache.Len(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
