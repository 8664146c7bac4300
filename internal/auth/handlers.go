package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/faithrecall/game-server/pkg/http/errors"
)

// Handlers exposes the admin login endpoint.
type Handlers struct {
	svc    *AdminService
	logger zerolog.Logger
}

// NewHandlers constructs auth HTTP handlers.
func NewHandlers(svc *AdminService, logger zerolog.Logger) *Handlers {
	return &Handlers{
		svc:    svc,
		logger: logger.With().Str("component", "auth_http").Logger(),
	}
}

// HandleLogin exchanges the operator passcode for a short-lived token.
// Route: POST /v1/admin/login
func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Passcode string `json:"passcode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid request body")
		return
	}
	if body.Passcode == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "Passcode is required", "passcode")
		return
	}

	token, err := h.svc.Login(body.Passcode)
	if err != nil {
		if errors.Is(err, ErrBadPasscode) {
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeLoginFailed, "Incorrect passcode")
			return
		}
		h.logger.Error().Err(err).Msg("admin login failed")
		httperrors.RespondInternalError(w, "Could not complete login")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
