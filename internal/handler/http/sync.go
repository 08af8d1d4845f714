package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/MKhiriev/vedicas-garden/models"
)

func (h *Handler) syncSeeds(w http.ResponseWriter, r *http.Request) {
	syncDocuments(w, r, "*Handler.syncSeeds",
		func(b models.SeedsSyncRequest) []models.Seed { return b.Seeds },
		h.services.SeedService.Sync)
}

func (h *Handler) syncWisdom(w http.ResponseWriter, r *http.Request) {
	syncDocuments(w, r, "*Handler.syncWisdom",
		func(b models.WisdomSyncRequest) []models.WisdomNote { return b.Notes },
		h.services.WisdomService.Sync)
}

func (h *Handler) syncMessages(w http.ResponseWriter, r *http.Request) {
	syncDocuments(w, r, "*Handler.syncMessages",
		func(b models.MessagesSyncRequest) []models.Message { return b.Messages },
		h.services.MessageService.Sync)
}

func (h *Handler) syncCheckins(w http.ResponseWriter, r *http.Request) {
	syncDocuments(w, r, "*Handler.syncCheckins",
		func(b models.CheckinsSyncRequest) []models.Checkin { return b.Checkins },
		h.services.CheckinService.Sync)
}

// syncDocuments decodes a batch request body B, extracts its items and
// upserts them in one call.
func syncDocuments[B, T any](
	w http.ResponseWriter,
	r *http.Request,
	fn string,
	items func(B) []T,
	sync func(context.Context, int64, []T) (models.SyncResult, error),
) {
	log := logger.FromRequest(r)

	owner, ok := ownerID(w, r, fn)
	if !ok {
		return
	}

	body, ok := decodeJSON[B](w, r, fn)
	if !ok {
		return
	}

	result, err := sync(r.Context(), owner, items(body))
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	log.Debug().Str("func", fn).Int64("owner_id", owner).
		Int("synced", result.Synced).Int("inserted", result.Inserted).Int("patched", result.Patched).
		Msg("batch synced")
	utils.WriteJSON(w, result, http.StatusOK)
}
