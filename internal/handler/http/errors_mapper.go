package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vedicas-garden/internal/app"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorStatusMap is matched top to bottom; the first errors.Is hit wins.
var errorStatusMap = []errorResponse{
	{service.ErrEmptyBatch, http.StatusBadRequest, app.MsgEmptyBatch},
	{service.ErrEmptyClientID, http.StatusBadRequest, app.MsgEmptyClientID},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrProfileNotFound, http.StatusNotFound, app.MsgProfileNotFound},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgVersionIsNotSpecified},
	{store.ErrTransient, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the status and message mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status, message := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	http.Error(w, message, status)
}
