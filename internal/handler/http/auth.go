package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := decodeJSON[models.User](w, r, "*Handler.register")
	if !ok {
		return
	}

	registered, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	logger.FromRequest(r).Debug().Int64("owner_id", registered.ID).Msg("user registered")
	h.writeToken(w, r, registered)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := decodeJSON[models.User](w, r, "*Handler.login")
	if !ok {
		return
	}

	found, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	log.Debug().Int64("owner_id", found.ID).Msg("user logged in")
	h.writeToken(w, r, found)
}

// writeToken issues a session token for user in the Authorization header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "*Handler.writeToken")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
