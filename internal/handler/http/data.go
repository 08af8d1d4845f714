package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/MKhiriev/vedicas-garden/models"
)

func (h *Handler) listSeeds(w http.ResponseWriter, r *http.Request) {
	listDocuments(w, r, "*Handler.listSeeds", h.services.SeedService.List)
}

func (h *Handler) putSeed(w http.ResponseWriter, r *http.Request) {
	putDocument(w, r, "*Handler.putSeed", h.services.SeedService.Put)
}

func (h *Handler) deleteSeed(w http.ResponseWriter, r *http.Request) {
	deleteDocument(w, r, "*Handler.deleteSeed", h.services.SeedService.Delete)
}

func (h *Handler) listWisdom(w http.ResponseWriter, r *http.Request) {
	listDocuments(w, r, "*Handler.listWisdom", h.services.WisdomService.List)
}

func (h *Handler) putWisdom(w http.ResponseWriter, r *http.Request) {
	putDocument(w, r, "*Handler.putWisdom", h.services.WisdomService.Put)
}

func (h *Handler) deleteWisdom(w http.ResponseWriter, r *http.Request) {
	deleteDocument(w, r, "*Handler.deleteWisdom", h.services.WisdomService.Delete)
}

// listMessages filters by the optional guru_id query parameter.
func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	guruID := r.URL.Query().Get("guru_id")
	listDocuments(w, r, "*Handler.listMessages", func(ctx context.Context, owner int64) ([]models.Message, error) {
		return h.services.MessageService.List(ctx, owner, guruID)
	})
}

func (h *Handler) addMessage(w http.ResponseWriter, r *http.Request) {
	putDocument(w, r, "*Handler.addMessage", h.services.MessageService.Add)
}

func (h *Handler) clearMessages(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r, "*Handler.clearMessages")
	if !ok {
		return
	}

	deleted, err := h.services.MessageService.Clear(r.Context(), owner)
	if err != nil {
		writeError(w, r, err, "*Handler.clearMessages")
		return
	}

	utils.WriteJSON(w, models.ClearResult{Deleted: deleted}, http.StatusOK)
}

func (h *Handler) listCheckins(w http.ResponseWriter, r *http.Request) {
	listDocuments(w, r, "*Handler.listCheckins", h.services.CheckinService.List)
}

func (h *Handler) putCheckin(w http.ResponseWriter, r *http.Request) {
	putDocument(w, r, "*Handler.putCheckin", h.services.CheckinService.Put)
}

// listDocuments answers the owner's items as a JSON array, never null.
func listDocuments[T any](w http.ResponseWriter, r *http.Request, fn string, list func(context.Context, int64) ([]T, error)) {
	owner, ok := ownerID(w, r, fn)
	if !ok {
		return
	}

	items, err := list(r.Context(), owner)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}
	if items == nil {
		items = []T{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func putDocument[T any](w http.ResponseWriter, r *http.Request, fn string, put func(context.Context, int64, T) (models.UpsertResult, error)) {
	owner, ok := ownerID(w, r, fn)
	if !ok {
		return
	}

	item, ok := decodeJSON[T](w, r, fn)
	if !ok {
		return
	}

	result, err := put(r.Context(), owner, item)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	status := http.StatusOK
	if result.Inserted {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, result, status)
}

// deleteDocument answers 204 whether or not the row existed.
func deleteDocument(w http.ResponseWriter, r *http.Request, fn string, del func(context.Context, int64, string) error) {
	owner, ok := ownerID(w, r, fn)
	if !ok {
		return
	}

	if err := del(r.Context(), owner, chi.URLParam(r, "clientSideID")); err != nil {
		writeError(w, r, err, fn)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
