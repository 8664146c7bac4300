package leaderboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/faithrecall/game-server/internal/logging"
	httperrors "github.com/faithrecall/game-server/pkg/http/errors"
	ws "github.com/faithrecall/game-server/pkg/http/ws"
)

// HTTPHandler exposes REST endpoints for the shared leaderboard.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a leaderboard HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "leaderboard_http").Logger(),
	}
}

// HandleGet responds with the current top standings.
// Route: GET /v1/leaderboard?limit=100
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	top, err := h.svc.Top(r.Context(), limit)
	if err != nil {
		logger := h.reqLogger(r)
		logger.Error().Err(err).Msg("leaderboard fetch failed")
		httperrors.RespondError(w, http.StatusInternalServerError,
			httperrors.ErrCodeLeaderboardFetchFailed, "Could not load the leaderboard")
		return
	}

	// An empty list is a valid response, distinct from a fetch failure.
	if top == nil {
		top = []ws.LeaderboardEntry{}
	}

	writeJSON(w, map[string]any{
		"top":         top,
		"retrievedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleDelete wipes the leaderboard. Requires admin auth (enforced by
// middleware) plus an explicit confirm flag in the body.
// Route: DELETE /v1/leaderboard
func (h *HTTPHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid request body")
		return
	}
	if !body.Confirm {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeConfirmRequired, "Deletion must be explicitly confirmed")
		return
	}

	deleted, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		logger := h.reqLogger(r)
		logger.Error().Err(err).Msg("leaderboard delete failed")
		httperrors.RespondError(w, http.StatusInternalServerError,
			httperrors.ErrCodeDeleteFailed, "Could not delete leaderboard entries")
		return
	}

	writeJSON(w, map[string]any{"deleted": deleted})
}

// reqLogger prefers the request-scoped logger, falling back to the component
// logger when the middleware is not installed.
func (h *HTTPHandler) reqLogger(r *http.Request) zerolog.Logger {
	if logger := logging.FromContext(r.Context()); logger.GetLevel() != zerolog.Disabled {
		return logger
	}
	return h.logger
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
