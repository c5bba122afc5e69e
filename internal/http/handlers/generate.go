package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/toygarage/server/internal/domain"
	"github.com/toygarage/server/internal/generation"
	"github.com/toygarage/server/internal/middleware"
)

type generateRequest struct {
	Image          string `json:"image"`
	PromptOverride string `json:"promptOverride"`
	Message        string `json:"message"`
}

type generateResponse struct {
	Generation domain.Generation `json:"generation"`
	Notice     string            `json:"notice,omitempty"`
}

// Generate runs one full registration: validation and quota failures come
// back as 400/429, while a provider failure still answers 201 with an
// error-status record carrying a placeholder image.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	userID := middleware.IdentityFromContext(r.Context())

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, msgInvalidPayload(locale))
		return
	}

	gen, err := a.Registrar.Register(r.Context(), generation.Request{
		UserID:         userID,
		Image:          req.Image,
		PromptOverride: req.PromptOverride,
		Message:        req.Message,
		Locale:         locale,
		RequestID:      middleware.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		var rateErr *domain.RateLimitError
		switch {
		case errors.Is(err, domain.ErrMissingImage):
			a.error(w, http.StatusBadRequest, msgMissingImage(locale))
		case errors.As(err, &rateErr):
			a.error(w, http.StatusTooManyRequests, rateErr.Reason)
		default:
			a.Logger.Error().Err(err).Msg("generate: registration failed")
			a.error(w, http.StatusInternalServerError, msgInternal(locale))
		}
		return
	}

	a.json(w, http.StatusCreated, generateResponse{
		Generation: gen,
		Notice:     a.Store.Settings().NoticeMessage,
	})
}
