package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/vedicas-garden/internal/app"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/service"
)

// maxBodyBytes caps every JSON request body. The client splits pushes into
// batches well below it.
const maxBodyBytes = 4 << 20

// Handler serves the owner-scoped document API. Every route reads the owner
// id placed into the request context by the auth middleware.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// decodeJSON reads the request body into a T. It answers 413 when the body
// exceeds maxBodyBytes and 400 for any other decoding failure, reporting
// false in both cases.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, fn string) (T, bool) {
	var v T
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&v)
	if err == nil {
		return v, true
	}

	log := logger.FromRequest(r)
	if tooLarge := (*http.MaxBytesError)(nil); errors.As(err, &tooLarge) {
		log.Warn().Str("func", fn).Int64("limit", tooLarge.Limit).Msg("request body too large")
		http.Error(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
		return v, false
	}

	log.Err(err).Str("func", fn).Msg("invalid JSON was passed")
	http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	return v, false
}
