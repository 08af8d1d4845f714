// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/app"
	"github.com/MKhiriev/vedicas-garden/internal/store"
)

// mapAdapterError translates an adapter transport error into a service
// error. Everything without a specific meaning becomes ErrRemoteFailure
// with the cause kept in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			return ErrWrongPassword
		}
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrRemoteFailure, err)
}

// extractBody returns the part after the first ": " of an adapter error,
// which is the response body.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return msg
}
