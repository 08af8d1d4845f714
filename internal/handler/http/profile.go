package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/MKhiriev/vedicas-garden/models"
)

// getProfile answers 204 No Content when the owner never saved a profile.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r, "*Handler.getProfile")
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.Get(r.Context(), owner)
	if errors.Is(err, store.ErrProfileNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(w, r, err, "*Handler.getProfile")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r, "*Handler.putProfile")
	if !ok {
		return
	}

	profile, ok := decodeJSON[models.Profile](w, r, "*Handler.putProfile")
	if !ok {
		return
	}

	result, err := h.services.ProfileService.Put(r.Context(), owner, profile)
	if err != nil {
		writeError(w, r, err, "*Handler.putProfile")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
