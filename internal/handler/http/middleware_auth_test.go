package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/vedicas-garden/internal/app"
	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/stretchr/testify/assert"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{header: "Bearer abc.def", wantToken: "abc.def"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer ", wantErr: ErrEmptyToken},
		{header: "", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	var seenOwner int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenOwner, _ = utils.GetOwnerIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		header     string
		parseFn    func(context.Context, string) (models.Token, error)
		wantStatus int
		wantOwner  int64
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			parseFn: func(_ context.Context, s string) (models.Token, error) {
				assert.Equal(t, "good", s)
				return models.Token{OwnerID: 42}, nil
			},
			wantStatus: http.StatusTeapot,
			wantOwner:  42,
		},
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{
			name:   "expired token",
			header: "Bearer old",
			parseFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, errors.Join(service.ErrTokenIsExpiredOrInvalid, errors.New("exp"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenOwner = 0
			h := newTestHandler(&service.Services{AuthService: &stubAuthService{parseTokenFn: tt.parseFn}})

			req := withNopLogger(httptest.NewRequest(http.MethodGet, "/api/seeds", nil))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOwner, seenOwner)
		})
	}
}

func TestAuthMiddleware_InvalidTokenBody(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &stubAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}})

	req := withNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()
	h.auth(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, app.MsgTokenIsExpiredOrInvalid+"\n", rec.Body.String())
}

func TestOwnerID_MissingContext(t *testing.T) {
	rec := httptest.NewRecorder()
	req := withNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

	_, ok := ownerID(rec, req, "test")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoOwnerIDProvided+"\n", rec.Body.String())
}
