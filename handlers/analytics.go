package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pveldman/tasklane/analytics"
	"github.com/pveldman/tasklane/middleware"
)

// GetAnalytics handles GET /analytics: recomputes the snapshot from the
// caller's live task collection on every request.
func (h *Handlers) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	tasks, err := h.Tasks.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Get analytics error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	snapshot := analytics.Compute(tasks, time.Now())
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"analytics": snapshot})
}
