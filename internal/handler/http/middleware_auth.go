package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/vedicas-garden/internal/app"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
)

// auth rejects requests without a valid bearer token with 401 and stores
// the token's owner id in the request context under [utils.OwnerIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.OwnerIDCtxKey, token.OwnerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// ownerID returns the authenticated owner or answers 400 when the auth
// middleware did not run.
func ownerID(w http.ResponseWriter, r *http.Request, fn string) (int64, bool) {
	id, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("func", fn).Msg("no owner id in context")
		http.Error(w, app.MsgNoOwnerIDProvided, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
